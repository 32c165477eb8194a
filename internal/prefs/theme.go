// Package prefs resolves and persists the visitor's theme.
package prefs

import (
	"context"
	"fmt"
	"strings"
)

// Key is the storage key holding the theme name.
const Key = "portfolio-theme"

// Theme is the color scheme applied to the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts only the two known names.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// KV is durable per-visitor storage.
type KV interface {
	Pref(ctx context.Context, visitor, key string) (string, bool, error)
	SetPref(ctx context.Context, visitor, key, value string) error
}

// Themes reads and writes theme preferences.
type Themes struct {
	kv KV
}

// NewThemes returns a Themes over kv.
func NewThemes(kv KV) *Themes {
	return &Themes{kv: kv}
}

// Resolve returns the stored theme for visitor, else the client's color
// scheme hint, else light. Storage errors fall through to the hint.
func (t *Themes) Resolve(ctx context.Context, visitor, hint string) (Theme, error) {
	if visitor != "" {
		v, ok, err := t.kv.Pref(ctx, visitor, Key)
		if err != nil {
			if th, ok := ParseTheme(hint); ok {
				return th, err
			}
			return Light, err
		}
		if ok {
			if th, ok := ParseTheme(v); ok {
				return th, nil
			}
		}
	}
	if th, ok := ParseTheme(hint); ok {
		return th, nil
	}
	return Light, nil
}

// Set persists theme for visitor.
func (t *Themes) Set(ctx context.Context, visitor string, theme Theme) error {
	if _, ok := ParseTheme(string(theme)); !ok {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return t.kv.SetPref(ctx, visitor, Key, string(theme))
}

// Toggle flips the visitor's current theme and persists the result.
func (t *Themes) Toggle(ctx context.Context, visitor, hint string) (Theme, error) {
	cur, err := t.Resolve(ctx, visitor, hint)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := t.Set(ctx, visitor, next); err != nil {
		return cur, err
	}
	return next, nil
}
