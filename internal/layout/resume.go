package layout

import (
	"fmt"
	"strings"

	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/i18n"
)

const footerNote = "This PDF was generated from the online portfolio."

// resumeHeadings are the section titles of the exported resume.
var resumeHeadings = map[i18n.Lang]map[string]string{
	i18n.EN: {
		"profile":    "Profile",
		"experience": "Experience & Activities",
		"skills":     "Key Skills & Tech Stack",
		"education":  "Education",
	},
	i18n.KO: {
		"profile":    "프로필",
		"experience": "경력 및 활동",
		"skills":     "핵심 기술 스택",
		"education":  "학력",
	},
}

// WriteResume lays out the profile, experience, skills and education of site.
func WriteResume(p *Paginator, site *content.Site, lang i18n.Lang) {
	prof := site.Profile
	h := resumeHeadings[lang]

	name := prof.NameEn
	if lang == i18n.KO || name == "" {
		name = prof.Name
	}
	p.Place(Block{Kind: Title, Text: name})
	headline := prof.Headline
	if headline == "" {
		headline = prof.Role.In(lang)
	}
	p.Place(Block{Kind: Subtitle, Text: headline})
	p.Place(Block{Kind: LabelValue, Items: []string{prof.Email, prof.Phone, prof.GitHub}})
	p.Gap(2)

	p.Place(Block{Kind: Heading, Text: h["profile"]})
	p.Place(Block{Kind: Paragraph, Text: prof.Summary.In(lang)})

	if len(site.Experiences) > 0 {
		p.Place(Block{Kind: Heading, Text: h["experience"]})
		for _, exp := range site.Experiences {
			p.Place(Block{Kind: Caption, Text: fmt.Sprintf("%s · %s (%s)", exp.Role.In(lang), exp.Company.In(lang), exp.Period)})
			if d := exp.Description.In(lang); d != "" {
				p.Place(Block{Kind: Paragraph, Text: d})
			}
			if items := exp.Achievements.In(lang); len(items) > 0 {
				p.Place(Block{Kind: Bullets, Items: items})
			}
			p.Gap(1)
		}
	}

	p.Place(Block{Kind: Heading, Text: h["skills"]})
	for _, g := range site.Skills {
		p.Place(Block{Kind: Caption, Text: g.Category.In(lang)})
		p.Place(Block{Kind: Paragraph, Text: strings.Join(g.Items, ", "), Indent: 2})
	}

	if len(prof.Education) > 0 {
		p.Place(Block{Kind: Heading, Text: h["education"]})
		for _, edu := range prof.Education {
			p.Place(Block{Kind: Caption, Text: fmt.Sprintf("%s (%s)", edu.School, edu.Period.In(lang))})
			p.Place(Block{Kind: Paragraph, Text: edu.Degree.In(lang)})
		}
	}

	p.Place(Block{Kind: Footer, Text: footerNote})
}

// RenderResume produces the resume PDF for lang. Without a Unicode font the
// document falls back to English so no glyph is lost.
func RenderResume(site *content.Site, lang i18n.Lang, fontPath string) ([]byte, error) {
	doc, err := NewPDF(fontPath)
	if err != nil {
		return nil, err
	}
	if !doc.Unicode() {
		lang = i18n.EN
	}
	WriteResume(New(doc, DefaultConfig), site, lang)
	return doc.Bytes()
}

// ResumeFileName names the resume export after the profile and display language.
func ResumeFileName(prof content.Profile, lang i18n.Lang) string {
	if lang == i18n.KO {
		return "이력서_" + prof.Name + ".pdf"
	}
	return strings.ReplaceAll(prof.NameEn, " ", "") + "_Resume.pdf"
}

// PortfolioFileName names the full-page export.
func PortfolioFileName(prof content.Profile, lang i18n.Lang) string {
	if lang == i18n.KO {
		return "포트폴리오_" + prof.Name + ".pdf"
	}
	return strings.ReplaceAll(prof.NameEn, " ", "_") + "_Portfolio.pdf"
}
