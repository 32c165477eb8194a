// Package github fetches public profile stats for the portfolio owner.
// Every failure degrades to a fixed placeholder set.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the public REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTTL is how long a successful result is reused.
	DefaultTTL = 10 * time.Minute
	// FailureTTL is how long the fallback is served before retrying.
	FailureTTL = time.Minute
	// FetchTimeout bounds one shared refresh.
	FetchTimeout = 15 * time.Second

	userAgent   = "portfolio-stats/1.0"
	repoWindow  = 20
	topLangs    = 5
	recentRepos = 5
	eventCount  = 5
)

// Error describes a failed API call.
type Error struct {
	Path       string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("github error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Client talks to the GitHub REST API without authentication.
type Client struct {
	BaseURL string
	User    string
	HTTP    *http.Client
	TTL     time.Duration

	now   func() time.Time
	group singleflight.Group

	mu     sync.Mutex
	stats  cached[*Stats]
	events cached[Feed]
}

type cached[T any] struct {
	value   T
	err     error
	expires time.Time
	ok      bool
}

// NewClient returns a client for user against baseURL.
func NewClient(baseURL, user string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		User:    user,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		TTL:     DefaultTTL,
		now:     time.Now,
	}
}

type apiUser struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
}

type apiRepo struct {
	Name      string    `json:"name"`
	Language  *string   `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

type apiEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Repo *struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Path: path, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Path: path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Path: path, StatusCode: resp.StatusCode, Message: "HTTP " + resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &Error{Path: path, StatusCode: resp.StatusCode, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// fetchContext detaches a shared refresh from the request that started it,
// so one caller going away does not fail the others.
func (c *Client) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), FetchTimeout)
}

// Stats returns the profile stats. On any failure it returns the fallback
// set together with the error; callers show the fallback with a notice.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	c.mu.Lock()
	if c.stats.ok && c.now().Before(c.stats.expires) {
		s, err := c.stats.value, c.stats.err
		c.mu.Unlock()
		return s, err
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do("stats", func() (any, error) {
		fctx, cancel := c.fetchContext(ctx)
		defer cancel()
		s, err := c.fetchStats(fctx)
		ttl := c.TTL
		if err != nil {
			s, ttl = Fallback(), FailureTTL
		}
		if !errors.Is(err, context.Canceled) {
			c.mu.Lock()
			c.stats = cached[*Stats]{value: s, err: err, expires: c.now().Add(ttl), ok: true}
			c.mu.Unlock()
		}
		return cached[*Stats]{value: s, err: err}, nil
	})
	r := v.(cached[*Stats])
	return r.value, r.err
}

func (c *Client) fetchStats(ctx context.Context) (*Stats, error) {
	var (
		user  apiUser
		repos []apiRepo
	)
	base := "/users/" + url.PathEscape(c.User)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(gctx, base, nil, &user) })
	g.Go(func() error {
		q := url.Values{"per_page": {"100"}, "sort": {"updated"}}
		return c.get(gctx, base+"/repos", q, &repos)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summarize(user, repos), nil
}

func summarize(user apiUser, repos []apiRepo) *Stats {
	counts := map[string]int{}
	for i, r := range repos {
		if i == repoWindow {
			break
		}
		if r.Language != nil && *r.Language != "" {
			counts[*r.Language]++
		}
	}

	recent := make([]Activity, 0, recentRepos)
	for i, r := range repos {
		if i == recentRepos {
			break
		}
		recent = append(recent, Activity{Repo: r.Name, Action: "Updated", Updated: r.UpdatedAt})
	}

	return &Stats{
		Repos:     user.PublicRepos,
		Followers: user.Followers,
		Languages: shares(counts),
		Recent:    recent,
	}
}

// shares ranks languages by count and keeps the top five. Percentages are
// taken over every counted repo.
func shares(counts map[string]int) []Language {
	total := 0
	langs := make([]Language, 0, len(counts))
	for name, n := range counts {
		total += n
		langs = append(langs, Language{Name: name, Count: n})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Name < langs[j].Name
	})
	if len(langs) > topLangs {
		langs = langs[:topLangs]
	}
	for i := range langs {
		langs[i].Share = float64(langs[i].Count) / float64(total) * 100
	}
	return langs
}

// Events returns the latest public events. A non-2xx response or an empty
// list yields FeedEmpty; a transport or decode failure yields FeedError.
func (c *Client) Events(ctx context.Context) Feed {
	c.mu.Lock()
	if c.events.ok && c.now().Before(c.events.expires) {
		f := c.events.value
		c.mu.Unlock()
		return f
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do("events", func() (any, error) {
		fctx, cancel := c.fetchContext(ctx)
		defer cancel()
		f := c.fetchEvents(fctx)
		ttl := c.TTL
		if f.Status != FeedReady {
			ttl = FailureTTL
		}
		if !errors.Is(f.Err, context.Canceled) {
			c.mu.Lock()
			c.events = cached[Feed]{value: f, expires: c.now().Add(ttl), ok: true}
			c.mu.Unlock()
		}
		return f, nil
	})
	return v.(Feed)
}

func (c *Client) fetchEvents(ctx context.Context) Feed {
	var raw []apiEvent
	path := "/users/" + url.PathEscape(c.User) + "/events"
	err := c.get(ctx, path, url.Values{"per_page": {fmt.Sprint(eventCount)}}, &raw)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode != 0 && apiErr.Cause == nil {
			return Feed{Status: FeedEmpty}
		}
		return Feed{Status: FeedError, Err: err}
	}
	if len(raw) == 0 {
		return Feed{Status: FeedEmpty}
	}
	events := make([]Event, 0, len(raw))
	for _, e := range raw {
		ev := Event{ID: e.ID, Type: e.Type, CreatedAt: e.CreatedAt}
		if e.Repo != nil {
			ev.Repo = e.Repo.Name
		}
		events = append(events, ev)
	}
	return Feed{Status: FeedReady, Events: events}
}
