// Package content loads the static portfolio data: profile, projects,
// experience and skills. The data is parsed once at startup and never mutated.
package content

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go5rae/portfolio/internal/i18n"
)

//go:embed data.yaml
var embedded []byte

// chartMax is the upper bound of the skill proficiency scale.
const chartMax = 100

// Text is a localized pair.
type Text struct {
	Ko string `yaml:"ko"`
	En string `yaml:"en"`
}

// In returns the string for lang.
func (t Text) In(lang i18n.Lang) string {
	if lang == i18n.EN {
		return t.En
	}
	return t.Ko
}

func (t Text) complete() bool { return t.Ko != "" && t.En != "" }

// TextList is a localized list of strings.
type TextList struct {
	Ko []string `yaml:"ko"`
	En []string `yaml:"en"`
}

// In returns the list for lang.
func (t TextList) In(lang i18n.Lang) []string {
	if lang == i18n.EN {
		return t.En
	}
	return t.Ko
}

// ReadmeSection is one labeled block of a project README.
type ReadmeSection struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Readme holds the README sections per language.
type Readme struct {
	Ko []ReadmeSection `yaml:"ko"`
	En []ReadmeSection `yaml:"en"`
}

// In returns the sections for lang.
func (r Readme) In(lang i18n.Lang) []ReadmeSection {
	if lang == i18n.EN {
		return r.En
	}
	return r.Ko
}

type Education struct {
	School  string `yaml:"school"`
	Period  Text   `yaml:"period"`
	Degree  Text   `yaml:"degree"`
	Details Text   `yaml:"details"`
}

type Profile struct {
	Name      string      `yaml:"name"`
	NameEn    string      `yaml:"name_en"`
	Headline  string      `yaml:"headline"`
	Role      Text        `yaml:"role"`
	Summary   Text        `yaml:"summary"`
	Email     string      `yaml:"email"`
	Phone     string      `yaml:"phone"`
	Location  string      `yaml:"location"`
	GitHub    string      `yaml:"github"`
	Education []Education `yaml:"education"`
}

type Experience struct {
	ID           string   `yaml:"id"`
	Company      Text     `yaml:"company"`
	Period       string   `yaml:"period"`
	Role         Text     `yaml:"role"`
	Description  Text     `yaml:"description"`
	Achievements TextList `yaml:"achievements"`
	Tech         []string `yaml:"tech"`
}

type SkillGroup struct {
	Category Text     `yaml:"category"`
	Items    []string `yaml:"items"`
}

// SkillLevel is one axis of the proficiency chart.
type SkillLevel struct {
	Label string `yaml:"label"`
	Level int    `yaml:"level"`
}

// Project is one entry of the project timeline. Higher Order is more recent.
type Project struct {
	ID            string   `yaml:"id"`
	Order         int      `yaml:"order"`
	Name          string   `yaml:"name"`
	Period        string   `yaml:"period"`
	Type          string   `yaml:"type"`
	RepoURL       string   `yaml:"repo_url"`
	DeploymentURL string   `yaml:"deployment_url"`
	Role          Text     `yaml:"role"`
	Summary       Text     `yaml:"summary"`
	Highlights    TextList `yaml:"highlights"`
	TechStack     []string `yaml:"tech_stack"`
	Readme        Readme   `yaml:"readme"`
}

// HasTech reports whether the project lists tech (case-insensitive).
func (p Project) HasTech(tech string) bool {
	for _, t := range p.TechStack {
		if strings.EqualFold(t, tech) {
			return true
		}
	}
	return false
}

type document struct {
	Profile     Profile      `yaml:"profile"`
	Experiences []Experience `yaml:"experiences"`
	Skills      []SkillGroup `yaml:"skills"`
	SkillLevels []SkillLevel `yaml:"skill_levels"`
	Projects    []Project    `yaml:"projects"`
}

// Site is the validated, read-only portfolio data.
type Site struct {
	Profile     Profile
	Experiences []Experience
	Skills      []SkillGroup
	SkillLevels []SkillLevel

	projects []Project
	byID     map[string]int
}

// Load parses the embedded data document.
func Load() (*Site, error) {
	return Parse(embedded)
}

// Parse decodes and validates a YAML data document.
func Parse(data []byte) (*Site, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	projects := append([]Project(nil), doc.Projects...)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order > projects[j].Order
	})
	byID := make(map[string]int, len(projects))
	for i, p := range projects {
		byID[p.ID] = i
	}

	return &Site{
		Profile:     doc.Profile,
		Experiences: doc.Experiences,
		Skills:      doc.Skills,
		SkillLevels: doc.SkillLevels,
		projects:    projects,
		byID:        byID,
	}, nil
}

func (d *document) validate() error {
	if d.Profile.Name == "" {
		return fmt.Errorf("content error: profile name is empty")
	}
	if !d.Profile.Role.complete() || !d.Profile.Summary.complete() {
		return fmt.Errorf("content error: profile role and summary need every language")
	}

	ids := make(map[string]bool, len(d.Projects))
	orders := make(map[int]string, len(d.Projects))
	for _, p := range d.Projects {
		if p.ID == "" {
			return fmt.Errorf("content error: project %q has no id", p.Name)
		}
		if ids[p.ID] {
			return fmt.Errorf("content error: duplicate project id %q", p.ID)
		}
		ids[p.ID] = true
		if other, ok := orders[p.Order]; ok {
			return fmt.Errorf("content error: projects %q and %q share order %d", other, p.ID, p.Order)
		}
		orders[p.Order] = p.ID
		if !p.Role.complete() || !p.Summary.complete() {
			return fmt.Errorf("content error: project %q needs role and summary in every language", p.ID)
		}
	}

	for _, s := range d.SkillLevels {
		if s.Level < 0 || s.Level > chartMax {
			return fmt.Errorf("content error: skill %q level %d out of range", s.Label, s.Level)
		}
	}
	return nil
}

// Projects returns every project, most recent first.
func (s *Site) Projects() []Project {
	return append([]Project(nil), s.projects...)
}

// Project looks up a project by id.
func (s *Site) Project(id string) (Project, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Project{}, false
	}
	return s.projects[i], true
}

// FilterByTech returns the projects using tech, most recent first.
// An empty tech returns every project.
func (s *Site) FilterByTech(tech string) []Project {
	if tech == "" {
		return s.Projects()
	}
	var out []Project
	for _, p := range s.projects {
		if p.HasTech(tech) {
			out = append(out, p)
		}
	}
	return out
}

// Techs lists the distinct technologies across projects in first-seen order.
func (s *Site) Techs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.projects {
		for _, t := range p.TechStack {
			k := strings.ToLower(t)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, t)
		}
	}
	return out
}

// Bar is one rendered row of the proficiency chart.
type Bar struct {
	Label   string
	Level   int
	Percent float64
}

// SkillBars converts skill levels into bar widths relative to the chart maximum.
func (s *Site) SkillBars() []Bar {
	bars := make([]Bar, 0, len(s.SkillLevels))
	for _, l := range s.SkillLevels {
		bars = append(bars, Bar{
			Label:   l.Label,
			Level:   l.Level,
			Percent: float64(l.Level) * 100 / chartMax,
		})
	}
	return bars
}
