// Package section decides which named page region is currently active
// from viewport visibility reports.
package section

import (
	"slices"
	"sync"
)

// ID names an anchorable region of the page.
type ID string

const (
	About    ID = "about"
	Resume   ID = "resume"
	Projects ID = "projects"
	Contact  ID = "contact"
)

// All is the fixed region set in page order.
var All = []ID{About, Resume, Projects, Contact}

// Parse returns the region named s.
func Parse(s string) (ID, bool) {
	for _, id := range All {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Rect is an axis-aligned box in CSS pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

func (r Rect) intersect(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Options describes the observer: the ratio threshold and the fractional
// insets of the viewport used as the intersection root.
type Options struct {
	Threshold   float64
	InsetTop    float64
	InsetBottom float64
}

// NavOptions biases the active region toward the top of the viewport.
var NavOptions = Options{Threshold: 0.35, InsetTop: 0.20, InsetBottom: 0.55}

// Root returns the viewport shrunk by the insets.
func (o Options) Root(viewport Rect) Rect {
	top := viewport.H * o.InsetTop
	bottom := viewport.H * o.InsetBottom
	return Rect{X: viewport.X, Y: viewport.Y + top, W: viewport.W, H: viewport.H - top - bottom}
}

// Ratio is the visible fraction of region inside the inset viewport.
func (o Options) Ratio(region, viewport Rect) float64 {
	a := region.area()
	if a == 0 {
		return 0
	}
	return region.intersect(o.Root(viewport)).area() / a
}

// Entry is one visibility report for a region.
type Entry struct {
	ID    ID      `json:"id"`
	Ratio float64 `json:"ratio"`
}

// Measure turns region geometry into entries, in the order given.
func (o Options) Measure(viewport Rect, regions map[ID]Rect, order []ID) []Entry {
	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		r, ok := regions[id]
		if !ok {
			continue
		}
		entries = append(entries, Entry{ID: id, Ratio: o.Ratio(r, viewport)})
	}
	return entries
}

// Select picks the entry with the highest ratio at or above the threshold.
// Equal ratios go to the earlier entry.
func (o Options) Select(entries []Entry) (ID, bool) {
	var (
		best  ID
		ratio float64
		found bool
	)
	for _, e := range entries {
		if e.Ratio < o.Threshold {
			continue
		}
		if !found || e.Ratio > ratio {
			best, ratio, found = e.ID, e.Ratio, true
		}
	}
	return best, found
}

// Tracker holds the active region and publishes changes to subscribers.
type Tracker struct {
	opts Options

	mu     sync.Mutex
	active ID
	subs   []func(ID)
}

// NewTracker returns a tracker with no active region.
func NewTracker(opts Options) *Tracker {
	return &Tracker{opts: opts}
}

// Active returns the current region, or "" before anything qualified.
func (t *Tracker) Active() ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Subscribe registers fn to receive every new active region.
func (t *Tracker) Subscribe(fn func(ID)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}

// Observe applies one batch of visibility reports and returns the active
// region and whether this batch changed it. Without a qualifying entry the
// previous region is kept.
func (t *Tracker) Observe(entries []Entry) (ID, bool) {
	next, ok := t.opts.Select(entries)

	t.mu.Lock()
	if !ok || next == t.active {
		cur := t.active
		t.mu.Unlock()
		return cur, false
	}
	t.active = next
	subs := slices.Clone(t.subs)
	t.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next, true
}

// ObserveGeometry measures regions against the viewport in page order and
// applies the result like Observe.
func (t *Tracker) ObserveGeometry(viewport Rect, regions map[ID]Rect) (ID, bool) {
	return t.Observe(t.opts.Measure(viewport, regions, All))
}
