// Package i18n holds the localized UI strings of the site.
package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// Lang is a supported display language.
type Lang string

const (
	KO Lang = "ko"
	EN Lang = "en"
)

// Default is used when no language is requested.
const Default = KO

// Supported lists every language the table must cover.
var Supported = []Lang{KO, EN}

// Parse maps a query value to a Lang. Unknown values fall back to Default.
func Parse(s string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN
	case KO:
		return KO
	}
	return Default
}

// Valid reports whether s names a supported language.
func Valid(s string) bool {
	for _, l := range Supported {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == KO {
		return EN
	}
	return KO
}

func (l Lang) String() string { return string(l) }

// Locale returns the BCP 47 tag used for the html lang attribute.
func (l Lang) Locale() string {
	if l == EN {
		return "en-US"
	}
	return "ko-KR"
}

type entry struct {
	lang Lang
	key  string
}

// Table is a lookup keyed by (language, key).
type Table struct {
	entries map[entry]string
	keys    map[string]struct{}
}

// NewTable builds a table from per-language maps.
func NewTable(src map[Lang]map[string]string) *Table {
	t := &Table{
		entries: make(map[entry]string),
		keys:    make(map[string]struct{}),
	}
	for lang, m := range src {
		for k, v := range m {
			t.entries[entry{lang, k}] = v
			t.keys[k] = struct{}{}
		}
	}
	return t
}

// T looks up key for lang, then for Default, then returns the key itself.
func (t *Table) T(lang Lang, key string) string {
	if v, ok := t.entries[entry{lang, key}]; ok {
		return v
	}
	if v, ok := t.entries[entry{Default, key}]; ok {
		return v
	}
	return key
}

// Missing lists "lang:key" pairs absent from the table, sorted.
func (t *Table) Missing() []string {
	var out []string
	for k := range t.keys {
		for _, l := range Supported {
			if _, ok := t.entries[entry{l, k}]; !ok {
				out = append(out, fmt.Sprintf("%s:%s", l, k))
			}
		}
	}
	sort.Strings(out)
	return out
}

// Messages is the site's string table.
var Messages = NewTable(messages)

// T looks up key in Messages.
func T(lang Lang, key string) string {
	return Messages.T(lang, key)
}
