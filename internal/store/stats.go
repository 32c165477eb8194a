package store

import (
	"context"
	"fmt"
	"time"
)

// ExportCount is the number of documents generated per kind and language.
type ExportCount struct {
	Kind  string `json:"kind"`
	Lang  string `json:"lang"`
	Count int64  `json:"count"`
}

// SectionCount is how often page views reached a section.
type SectionCount struct {
	Section string `json:"section"`
	Count   int64  `json:"count"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	ThemePrefs       int64          `json:"theme_prefs"`
	Exports          []ExportCount  `json:"exports"`
	Sections         []SectionCount `json:"sections"`
	RecentVisitors   []Visit        `json:"recent_visitors"`
}

// Stats aggregates visitor and export metrics relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.AddDate(0, 0, -7).Unix()}},
		{&stats.ThemePrefs, `SELECT COUNT(*) FROM preferences WHERE key = 'portfolio-theme'`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("failed to load stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, lang, COUNT(*) FROM exports
		GROUP BY kind, lang
		ORDER BY kind, lang`)
	if err != nil {
		return nil, fmt.Errorf("failed to load export stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e ExportCount
		if err := rows.Scan(&e.Kind, &e.Lang, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan export stats: %w", err)
		}
		stats.Exports = append(stats.Exports, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	srows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(*) FROM section_views
		GROUP BY section
		ORDER BY COUNT(*) DESC, section`)
	if err != nil {
		return nil, fmt.Errorf("failed to load section stats: %w", err)
	}
	defer srows.Close()
	for srows.Next() {
		var sc SectionCount
		if err := srows.Scan(&sc.Section, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan section stats: %w", err)
		}
		stats.Sections = append(stats.Sections, sc)
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}

	stats.RecentVisitors, err = s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
