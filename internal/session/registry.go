// Package session keeps per-page-view runtime state in memory. Every full
// page load opens a new view, so a reload or a second tab starts clean.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go5rae/portfolio/internal/form"
	"github.com/go5rae/portfolio/internal/section"
)

// State is what the server remembers about one open page view.
type State struct {
	Tracker    *section.Tracker
	Contact    *form.Machine
	Newsletter *form.Machine

	lastSeen time.Time
}

// Options configures newly created states.
type Options struct {
	SubmitDelay time.Duration
	ClearDelay  time.Duration
	Deliver     form.Deliver
	IdleTimeout time.Duration
	// OnActive is called with the view id whenever a view's active region changes.
	OnActive func(view string, id section.ID)
}

// Registry maps view ids to their state.
type Registry struct {
	opts Options
	now  func() time.Time

	mu     sync.Mutex
	states map[string]*State
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 30 * time.Minute
	}
	return &Registry{opts: opts, now: time.Now, states: map[string]*State{}}
}

// Open starts a new page view and returns its id.
func (r *Registry) Open() (string, *State) {
	id := uuid.NewString()
	return id, r.Get(id)
}

// Get returns the state for view, creating it on first use.
func (r *Registry) Get(view string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[view]
	if !ok {
		st = &State{
			Tracker:    section.NewTracker(section.NavOptions),
			Contact:    r.machine("contact"),
			Newsletter: r.machine("newsletter"),
		}
		if fn := r.opts.OnActive; fn != nil {
			st.Tracker.Subscribe(func(id section.ID) { fn(view, id) })
		}
		r.states[view] = st
	}
	st.lastSeen = r.now()
	return st
}

func (r *Registry) machine(name string) *form.Machine {
	return form.New(form.Options{
		Name:        name,
		SubmitDelay: r.opts.SubmitDelay,
		ClearDelay:  r.opts.ClearDelay,
		Deliver:     r.opts.Deliver,
	})
}

// Len returns the number of live states.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep drops states idle for longer than the timeout. States with a
// submission in flight are kept.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.opts.IdleTimeout)
	n := 0
	for id, st := range r.states {
		if st.lastSeen.After(cutoff) {
			continue
		}
		if st.Contact.Status() == form.Loading || st.Newsletter.Status() == form.Loading {
			continue
		}
		delete(r.states, id)
		n++
	}
	return n
}

// Run sweeps every interval until stop is closed.
func (r *Registry) Run(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("Session sweep: removed %d idle page views", n)
			}
		}
	}
}
