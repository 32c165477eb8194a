// Package form runs the submit state machine behind the contact and
// newsletter forms. Delivery is simulated.
package form

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Status is the visible state of a form.
type Status string

const (
	Idle    Status = "idle"
	Loading Status = "loading"
	Success Status = "success"
	Error   Status = "error"
)

// Default timings.
const (
	SubmitDelay = time.Second
	ClearDelay  = 3 * time.Second
)

// ErrBusy is returned when a submission is already in flight.
var ErrBusy = errors.New("form: submission in progress")

// Fields holds the form inputs by name.
type Fields map[string]string

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Deliver hands a submission to its destination.
type Deliver func(ctx context.Context, name string, fields Fields) error

// Simulated accepts every submission.
func Simulated(_ context.Context, name string, fields Fields) error {
	log.Printf("Simulated %s submission with %d fields", name, len(fields))
	return nil
}

// Options configures a Machine. Zero durations use the defaults.
type Options struct {
	Name        string
	SubmitDelay time.Duration
	ClearDelay  time.Duration
	Deliver     Deliver
}

// Snapshot is a consistent view of a Machine.
type Snapshot struct {
	Status Status
	Fields Fields
}

// Machine moves idle -> loading -> success|error -> idle.
type Machine struct {
	opts Options

	mu     sync.Mutex
	status Status
	fields Fields
	gen    uint64
	clear  *time.Timer
}

// New returns an idle machine.
func New(opts Options) *Machine {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = SubmitDelay
	}
	if opts.ClearDelay <= 0 {
		opts.ClearDelay = ClearDelay
	}
	if opts.Deliver == nil {
		opts.Deliver = Simulated
	}
	return &Machine{opts: opts, status: Idle, fields: Fields{}}
}

// Status returns the current state.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Snapshot returns the state together with a copy of the fields.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{Status: m.status, Fields: m.fields.clone()}
}

// Submit records fields, enters loading and delivers after the submit
// delay. It returns immediately; the outcome is observed through Status.
func (m *Machine) Submit(fields Fields) error {
	m.mu.Lock()
	if m.status == Loading {
		m.mu.Unlock()
		return ErrBusy
	}
	if m.clear != nil {
		m.clear.Stop()
		m.clear = nil
	}
	m.gen++
	gen := m.gen
	m.status = Loading
	m.fields = fields.clone()
	m.mu.Unlock()

	time.AfterFunc(m.opts.SubmitDelay, func() { m.finish(gen) })
	return nil
}

func (m *Machine) finish(gen uint64) {
	m.mu.Lock()
	fields := m.fields.clone()
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := m.opts.Deliver(ctx, m.opts.Name, fields)
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	if err != nil {
		log.Printf("Error delivering %s submission: %v", m.opts.Name, err)
		m.status = Error
	} else {
		m.status = Success
		m.fields = Fields{}
	}
	m.clear = time.AfterFunc(m.opts.ClearDelay, func() { m.reset(gen) })
}

func (m *Machine) reset(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	m.status = Idle
	m.clear = nil
}
