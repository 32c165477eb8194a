package main

import "github.com/go5rae/portfolio/internal/i18n"

var privacyPolicy = map[i18n.Lang][]string{
	i18n.KO: {
		`이 사이트는 방문 통계를 위해 IP 주소를 그대로 저장하지 않습니다.
		IP 주소는 서버가 시작될 때마다 새로 만들어지는 값과 함께 해시되어 저장되며, 원래 주소로 되돌릴 수 없습니다.`,
		`브라우저가 Do Not Track 신호를 보내면 방문 기록을 남기지 않습니다.`,
		`테마 설정을 기억하기 위해 무작위 방문자 ID 쿠키를 사용합니다. 이 ID는 다른 정보와 연결되지 않습니다.`,
		`문의 양식과 뉴스레터 양식은 데모용으로, 입력한 내용은 저장되거나 전송되지 않습니다.`,
		`방문 기록은 12개월이 지나면 자동으로 삭제됩니다.`,
	},
	i18n.EN: {
		`This site never stores raw IP addresses for visitor statistics.
		Each address is hashed together with a value regenerated on every server start and cannot be reversed.`,
		`If your browser sends a Do Not Track signal, no visit is recorded.`,
		`A random visitor id cookie is used to remember your theme choice. It is not linked to anything else.`,
		`The contact and newsletter forms are demonstrations; nothing you enter is stored or sent.`,
		`Visit records are deleted automatically after 12 months.`,
	},
}

// PrivacyPolicy returns the policy paragraphs for lang.
func PrivacyPolicy(lang i18n.Lang) []string {
	if p, ok := privacyPolicy[lang]; ok {
		return p
	}
	return privacyPolicy[i18n.Default]
}
