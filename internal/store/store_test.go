package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "portfolio.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestPref_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)

	_, ok, err := s.Pref(ctx, "v1", "portfolio-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetPref(ctx, "v1", "portfolio-theme", "dark"))
	require.NoError(t, s.SetPref(ctx, "v1", "portfolio-theme", "light"))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Pref(ctx, "v1", "portfolio-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", got)

	_, ok, err = reopened.Pref(ctx, "v2", "portfolio-theme")
	require.NoError(t, err)
	assert.False(t, ok, "preferences are per visitor")
}

func TestVisits_RecordAndCleanup(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	now := time.Now()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/projects", Timestamp: now.Add(-time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "bbb", Path: "/"}))

	visits, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, "bbb", visits[0].HashedIP, "newest first")

	n, err := s.CleanupVisits(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visits, err = s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, visits, 2)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	now := time.Now()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/", Timestamp: now}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/", Timestamp: now}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "bbb", Path: "/", Timestamp: now.AddDate(0, 0, -30)}))
	require.NoError(t, s.SetPref(ctx, "v1", "portfolio-theme", "dark"))
	require.NoError(t, s.RecordExport(ctx, "resume", "ko"))
	require.NoError(t, s.RecordExport(ctx, "resume", "ko"))
	require.NoError(t, s.RecordExport(ctx, "portfolio", "en"))
	require.NoError(t, s.RecordSectionView(ctx, "resume"))
	require.NoError(t, s.RecordSectionView(ctx, "about"))
	require.NoError(t, s.RecordSectionView(ctx, "resume"))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	assert.Equal(t, int64(1), stats.ThemePrefs)
	assert.Equal(t, []ExportCount{
		{Kind: "portfolio", Lang: "en", Count: 1},
		{Kind: "resume", Lang: "ko", Count: 2},
	}, stats.Exports)
	assert.Equal(t, []SectionCount{
		{Section: "resume", Count: 2},
		{Section: "about", Count: 1},
	}, stats.Sections)
	assert.Len(t, stats.RecentVisitors, 3)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Ping(context.Background()))
}
