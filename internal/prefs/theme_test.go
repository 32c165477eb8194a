package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go5rae/portfolio/internal/store"
)

type brokenKV struct{}

func (brokenKV) Pref(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("disk gone")
}

func (brokenKV) SetPref(context.Context, string, string, string) error {
	return errors.New("disk gone")
}

func TestResolve_Precedence(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "p.db"))
	require.NoError(t, err)
	defer s.Close()
	themes := NewThemes(s)

	got, err := themes.Resolve(ctx, "v1", "")
	require.NoError(t, err)
	assert.Equal(t, Light, got, "default")

	got, err = themes.Resolve(ctx, "v1", "dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, got, "hint")

	require.NoError(t, themes.Set(ctx, "v1", Light))
	got, err = themes.Resolve(ctx, "v1", "dark")
	require.NoError(t, err)
	assert.Equal(t, Light, got, "stored value wins over hint")
}

func TestToggle_PersistsAcrossFreshStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "p.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	next, err := NewThemes(s).Toggle(ctx, "v1", "")
	require.NoError(t, err)
	assert.Equal(t, Dark, next)
	require.NoError(t, s.Close())

	fresh, err := store.Open(path)
	require.NoError(t, err)
	defer fresh.Close()
	got, err := NewThemes(fresh).Resolve(ctx, "v1", "light")
	require.NoError(t, err)
	assert.Equal(t, Dark, got)

	next, err = NewThemes(fresh).Toggle(ctx, "v1", "")
	require.NoError(t, err)
	assert.Equal(t, Light, next)
}

func TestResolve_StorageErrorFallsBack(t *testing.T) {
	got, err := NewThemes(brokenKV{}).Resolve(context.Background(), "v1", "dark")
	require.Error(t, err)
	assert.Equal(t, Dark, got)

	_, err = NewThemes(brokenKV{}).Toggle(context.Background(), "v1", "")
	require.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, Dark, th)

	_, ok = ParseTheme("no-preference")
	assert.False(t, ok)

	assert.Equal(t, Light, Light.Toggle().Toggle())
}
