package profiler

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ExecuteType describes how a database command was executed.
type ExecuteType string

const (
	ExecuteNone     ExecuteType = "None"
	ExecuteNonQuery ExecuteType = "NonQuery"
	ExecuteScalar   ExecuteType = "Scalar"
	ExecuteReader   ExecuteType = "Reader"
)

// CategorySQL is the custom timing category used for database commands.
const CategorySQL = "sql"

// Profiler is a single profiling session, usually one per HTTP request.
//
// A Profiler is safe for concurrent use. Timings started from different
// goroutines are appended under the profiler's lock.
type Profiler struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Started              time.Time `json:"started"`
	DurationMilliseconds float64   `json:"durationMilliseconds"`
	MachineName          string    `json:"machineName"`
	User                 string    `json:"user,omitempty"`
	Root                 *Timing   `json:"root"`

	mu      sync.Mutex
	now     func() time.Time
	storage Storage
	stopped bool
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithStorage sets the storage a profiler is saved to when stopped.
func WithStorage(s Storage) Option {
	return func(p *Profiler) {
		p.storage = s
	}
}

// WithUser records the user a profile belongs to.
func WithUser(user string) Option {
	return func(p *Profiler) {
		p.User = user
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		p.now = now
	}
}

// New creates a running profiler without attaching it to a context.
// Most callers want Start.
func New(name string, opts ...Option) *Profiler {
	p := &Profiler{
		ID:   uuid.New(),
		Name: name,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.MachineName, _ = os.Hostname()
	p.Started = p.now().UTC()
	p.Root = &Timing{
		ID:       uuid.New(),
		Name:     name,
		profiler: p,
		started:  p.Started,
	}
	return p
}

// Start creates a profiler and returns a context carrying it.
// Timings recorded against the returned context are attached to its root.
//
// Example:
//
//	ctx, prof := profiler.Start(ctx, "GET /users", profiler.WithStorage(store))
//	defer prof.Stop(ctx)
func Start(ctx context.Context, name string, opts ...Option) (context.Context, *Profiler) {
	p := New(name, opts...)
	return withTiming(ctx, p.Root), p
}

// Stop finishes the session and saves it when a storage is configured.
// Calling Stop more than once is a no-op.
func (p *Profiler) Stop(ctx context.Context) error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.Root.stopLocked()
	p.DurationMilliseconds = p.Root.durationOrZero()
	storage := p.storage
	p.mu.Unlock()

	if storage == nil {
		return nil
	}
	return storage.Save(ctx, p)
}

// Stopped reports whether Stop has been called.
func (p *Profiler) Stopped() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

// CustomTimings returns every custom timing of the given category,
// collected depth-first across the timing tree.
func (p *Profiler) CustomTimings(category string) []*CustomTiming {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*CustomTiming
	var walk func(t *Timing)
	walk = func(t *Timing) {
		out = append(out, t.CustomTimings[category]...)
		for _, child := range t.Children {
			walk(child)
		}
	}
	walk(p.Root)
	return out
}

// sinceStart returns the milliseconds elapsed between the session start and ts.
func (p *Profiler) sinceStart(ts time.Time) float64 {
	return milliseconds(ts.Sub(p.Started))
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
