package github

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go5rae/portfolio/internal/i18n"
)

// Language is one entry of the top-language chart.
type Language struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// Percent is the share rounded to a whole number.
func (l Language) Percent() int { return int(math.Round(l.Share)) }

// Activity is a recently updated repository.
type Activity struct {
	Repo    string    `json:"repo"`
	Action  string    `json:"action"`
	Updated time.Time `json:"updated"`
	// Label overrides the formatted date.
	Label string `json:"label,omitempty"`
}

// Date formats the update date for lang.
func (a Activity) Date(lang i18n.Lang) string {
	if a.Label != "" {
		return a.Label
	}
	return FormatDate(a.Updated, lang)
}

// FormatDate renders t as a short numeric date in the conventions of lang.
func FormatDate(t time.Time, lang i18n.Lang) string {
	if lang == i18n.EN {
		return t.Format("1/2/2006")
	}
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

// Stats is the rendered stats card.
type Stats struct {
	// Commits is only known for the fallback set; live data leaves it zero.
	Commits   int        `json:"commits,omitempty"`
	Repos     int        `json:"repos"`
	Followers int        `json:"followers"`
	Languages []Language `json:"languages"`
	Recent    []Activity `json:"recent"`
	Fallback  bool       `json:"fallback"`
}

// HasCommits reports whether a commit total can be shown.
func (s *Stats) HasCommits() bool { return s.Commits > 0 }

// Fallback is the placeholder set shown whenever the API cannot be used.
func Fallback() *Stats {
	return &Stats{
		Commits:   1250,
		Repos:     18,
		Followers: 45,
		Languages: shares(map[string]int{
			"TypeScript": 8,
			"React":      6,
			"JavaScript": 4,
			"Python":     2,
		}),
		Recent: []Activity{
			{Repo: "portfolio-website", Action: "Updated", Label: "2024.11.30"},
			{Repo: "ai-ddos-detection", Action: "Updated", Label: "2024.11.28"},
			{Repo: "ecopath", Action: "Updated", Label: "2024.11.25"},
		},
		Fallback: true,
	}
}

// FeedStatus is the state of the activity feed.
type FeedStatus string

const (
	FeedReady FeedStatus = "ready"
	FeedEmpty FeedStatus = "empty"
	FeedError FeedStatus = "error"
)

// Event is one public event.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// Label is "Push · owner/repo" style text.
func (e Event) Label() string {
	repo := e.Repo
	if repo == "" {
		repo = "repository"
	}
	return strings.TrimSuffix(e.Type, "Event") + " · " + repo
}

// Feed is the result of an events fetch.
type Feed struct {
	Status FeedStatus `json:"status"`
	Events []Event    `json:"events,omitempty"`
	Err    error      `json:"-"`
}
