package i18n

var messages = map[Lang]map[string]string{
	KO: {
		"nav.about":    "About",
		"nav.resume":   "Resume",
		"nav.projects": "Projects",
		"nav.contact":  "Contact",
		"nav.skip":     "본문으로 건너뛰기",
		"nav.print":    "Print",

		"theme.dark":  "다크 모드",
		"theme.light": "라이트 모드",
		"lang.switch": "Switch to EN",

		"hero.title":        "Crafting Crystal Clear Web Experiences",
		"hero.cta.projects": "View Projects",
		"hero.cta.resume":   "Resume",

		"about.title":       "About Me",
		"about.description": "사용자 경험(UX)과 기술적 성능 사이의 균형을 찾는 것을 즐깁니다. 단순히 기능이 동작하는 것을 넘어, 사용자가 \"기분 좋게\" 사용할 수 있는 인터페이스를 구현하는 데 집중합니다. 최신 웹 표준을 준수하며, 유지보수 가능한 깨끗한 코드를 작성하기 위해 노력합니다.",
		"about.techstack":   "Tech Stack",

		"resume.title":       "Resume",
		"resume.subtitle":    "프로젝트 중심으로 정리한 이력 요약입니다.",
		"resume.experience":  "Experience",
		"resume.education":   "Education",
		"resume.skills":      "Skill Proficiency",
		"resume.proficiency": "숙련도",
		"resume.direction":   "개발자로서의 방향",
		"resume.contact":     "Contact",
		"resume.location":    "Location",
		"resume.export":      "PDF로 저장",
		"resume.capture":     "전체 페이지 PDF",

		"projects.title":       "프로젝트 타임라인",
		"projects.subtitle":    "학기 팀프로젝트와 개인 프로젝트를 시간 순으로 정리했습니다. 각각의 README 스타일 상세 내용을 모달로 확인할 수 있습니다.",
		"projects.filter":      "Filter by Technology",
		"projects.all":         "All",
		"projects.viewdetails": "View Details",
		"projects.highlights":  "주요 포인트",
		"projects.techstack":   "Tech Stack",
		"projects.role":        "Role & Contribution",
		"projects.close":       "닫기",
		"projects.notfound":    "프로젝트를 찾을 수 없습니다.",

		"contact.title":    "Get In Touch",
		"contact.subtitle": "새로운 기회와 협업에 언제나 열려있습니다. 프로젝트 제안이나 기술적인 논의 등 어떤 주제로든 편하게 연락주세요.",
		"contact.email":    "Email",
		"contact.phone":    "Phone",
		"contact.github":   "GitHub",
		"contact.download": "Download PDF",
		"contact.print":    "Print Resume",
		"contact.name":     "이름",
		"contact.message":  "메시지",
		"contact.send":     "보내기",
		"contact.sending":  "전송 중...",
		"contact.success":  "메시지가 전송되었습니다. 곧 답장 드리겠습니다!",
		"contact.error":    "전송 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		"contact.invalid":  "입력값을 확인해주세요.",

		"newsletter.title":   "뉴스레터 구독",
		"newsletter.button":  "구독하기",
		"newsletter.success": "구독해주셔서 감사합니다!",
		"newsletter.error":   "구독 중 오류가 발생했습니다.",

		"github.title":     "GitHub 통계",
		"github.loading":   "데이터를 불러오는 중...",
		"github.error":     "GitHub 데이터를 불러올 수 없습니다.",
		"github.repos":     "저장소",
		"github.followers": "팔로워",
		"github.commits":   "커밋",
		"github.languages": "주요 언어",
		"github.recent":    "최근 활동",
		"github.profile":   "GitHub 프로필 보기",
		"github.updated":   "Updated",
		"github.empty":     "최근 공개 활동이 없습니다.",

		"pdf.error":         "PDF 생성 중 오류가 발생했습니다. 브라우저 인쇄 기능을 이용해주세요.",
		"error.title":       "문제가 발생했습니다",
		"error.description": "예상치 못한 오류가 발생했습니다. 페이지를 새로고침해주세요.",
		"error.reload":      "새로고침",
		"footer.rights":     "All rights reserved.",
	},
	EN: {
		"nav.about":    "About",
		"nav.resume":   "Resume",
		"nav.projects": "Projects",
		"nav.contact":  "Contact",
		"nav.skip":     "Skip to main content",
		"nav.print":    "Print",

		"theme.dark":  "Dark Mode",
		"theme.light": "Light Mode",
		"lang.switch": "한국어 보기",

		"hero.title":        "Crafting Crystal Clear Web Experiences",
		"hero.cta.projects": "View Projects",
		"hero.cta.resume":   "Resume",

		"about.title":       "About Me",
		"about.description": "I enjoy finding balance between user experience (UX) and technical performance. Beyond making features work, I focus on implementing interfaces that users genuinely enjoy using. I adhere to modern web standards and strive to write maintainable, clean code.",
		"about.techstack":   "Tech Stack",

		"resume.title":       "Resume",
		"resume.subtitle":    "A resume-style summary of my project-based experience.",
		"resume.experience":  "Experience",
		"resume.education":   "Education",
		"resume.skills":      "Skill Proficiency",
		"resume.proficiency": "Proficiency",
		"resume.direction":   "How I work as a developer",
		"resume.contact":     "Contact",
		"resume.location":    "Location",
		"resume.export":      "Export as PDF",
		"resume.capture":     "Full-page PDF",

		"projects.title":       "Project Timeline",
		"projects.subtitle":    "A chronological list of team and personal projects. You can view README-style details for each project in a modal.",
		"projects.filter":      "Filter by Technology",
		"projects.all":         "All",
		"projects.viewdetails": "View Details",
		"projects.highlights":  "Highlights",
		"projects.techstack":   "Tech Stack",
		"projects.role":        "Role & Contribution",
		"projects.close":       "Close",
		"projects.notfound":    "Project not found.",

		"contact.title":    "Get In Touch",
		"contact.subtitle": "I'm always open to new opportunities and collaborations. Feel free to reach out about project proposals or technical discussions.",
		"contact.email":    "Email",
		"contact.phone":    "Phone",
		"contact.github":   "GitHub",
		"contact.download": "Download PDF",
		"contact.print":    "Print Resume",
		"contact.name":     "Name",
		"contact.message":  "Message",
		"contact.send":     "Send",
		"contact.sending":  "Sending...",
		"contact.success":  "Your message has been sent. I'll get back to you soon!",
		"contact.error":    "Something went wrong. Please try again later.",
		"contact.invalid":  "Please check your input.",

		"newsletter.title":   "Subscribe to the newsletter",
		"newsletter.button":  "Subscribe",
		"newsletter.success": "Thanks for subscribing!",
		"newsletter.error":   "Subscription failed.",

		"github.title":     "GitHub Stats",
		"github.loading":   "Loading...",
		"github.error":     "Unable to load GitHub data",
		"github.repos":     "Repos",
		"github.followers": "Followers",
		"github.commits":   "Commits",
		"github.languages": "Top Languages",
		"github.recent":    "Recent Activity",
		"github.profile":   "View GitHub Profile",
		"github.updated":   "Updated",
		"github.empty":     "No recent public activity.",

		"pdf.error":         "PDF generation failed. Please use browser print function.",
		"error.title":       "Something went wrong",
		"error.description": "An unexpected error occurred. Please reload the page.",
		"error.reload":      "Reload",
		"footer.rights":     "All rights reserved.",
	},
}
