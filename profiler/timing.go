package profiler

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Timing is a named step in a profiling session. Timings nest to form a tree
// rooted at Profiler.Root.
type Timing struct {
	ID                   uuid.UUID                  `json:"id"`
	Name                 string                     `json:"name"`
	StartMilliseconds    float64                    `json:"startMilliseconds"`
	DurationMilliseconds *float64                   `json:"durationMilliseconds,omitempty"`
	Children             []*Timing                  `json:"children,omitempty"`
	CustomTimings        map[string][]*CustomTiming `json:"customTimings,omitempty"`

	profiler *Profiler
	started  time.Time
}

// CustomTiming records one external call, such as a SQL command, made while
// its parent timing was running.
type CustomTiming struct {
	ID                             uuid.UUID   `json:"id"`
	CommandString                  string      `json:"commandString"`
	ExecuteType                    ExecuteType `json:"executeType"`
	StartMilliseconds              float64     `json:"startMilliseconds"`
	DurationMilliseconds           *float64    `json:"durationMilliseconds,omitempty"`
	FirstFetchDurationMilliseconds *float64    `json:"firstFetchDurationMilliseconds,omitempty"`
	Errored                        bool        `json:"errored,omitempty"`

	profiler *Profiler
	parent   *Timing
	category string
	started  time.Time
}

type timingKey struct{}

func withTiming(ctx context.Context, t *Timing) context.Context {
	return context.WithValue(ctx, timingKey{}, t)
}

// Current returns the innermost running timing stored in ctx, or nil.
func Current(ctx context.Context) *Timing {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(timingKey{}).(*Timing)
	return t
}

// FromContext returns the profiler stored in ctx, or nil when the context
// is not being profiled.
func FromContext(ctx context.Context) *Profiler {
	if t := Current(ctx); t != nil {
		return t.profiler
	}
	return nil
}

// Step starts a child timing under the current one. When ctx carries no
// profiler it returns ctx unchanged and a nil timing, whose Stop is a no-op.
//
// Example:
//
//	ctx, step := profiler.Step(ctx, "load users")
//	defer step.Stop()
func Step(ctx context.Context, name string) (context.Context, *Timing) {
	parent := Current(ctx)
	if parent == nil {
		return ctx, nil
	}

	p := parent.profiler
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ctx, nil
	}

	now := p.now()
	child := &Timing{
		ID:                uuid.New(),
		Name:              name,
		StartMilliseconds: p.sinceStart(now),
		profiler:          p,
		started:           now,
	}
	parent.Children = append(parent.Children, child)
	return withTiming(ctx, child), child
}

// Stop finishes the timing.
func (t *Timing) Stop() {
	if t == nil || t.profiler == nil {
		return
	}
	t.profiler.mu.Lock()
	defer t.profiler.mu.Unlock()
	t.stopLocked()
}

func (t *Timing) stopLocked() {
	if t.DurationMilliseconds != nil {
		return
	}
	d := milliseconds(t.profiler.now().Sub(t.started))
	t.DurationMilliseconds = &d
}

func (t *Timing) durationOrZero() float64 {
	if t.DurationMilliseconds == nil {
		return 0
	}
	return *t.DurationMilliseconds
}

// CustomTiming starts a custom timing of the given category under t.
// It returns nil when t is nil, so callers never need to check whether
// profiling is active.
func (t *Timing) CustomTiming(category, command string, executeType ExecuteType) *CustomTiming {
	if t == nil || t.profiler == nil {
		return nil
	}

	p := t.profiler
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	ct := &CustomTiming{
		ID:                uuid.New(),
		CommandString:     command,
		ExecuteType:       executeType,
		StartMilliseconds: p.sinceStart(now),
		profiler:          p,
		parent:            t,
		category:          category,
		started:           now,
	}
	if t.CustomTimings == nil {
		t.CustomTimings = make(map[string][]*CustomTiming)
	}
	t.CustomTimings[category] = append(t.CustomTimings[category], ct)
	return ct
}

// FirstFetchCompleted records the time until the first result was available.
// Only the first call has an effect.
func (c *CustomTiming) FirstFetchCompleted() {
	if c == nil || c.profiler == nil {
		return
	}
	c.profiler.mu.Lock()
	defer c.profiler.mu.Unlock()

	if c.FirstFetchDurationMilliseconds != nil {
		return
	}
	d := milliseconds(c.profiler.now().Sub(c.started))
	c.FirstFetchDurationMilliseconds = &d
}

// Stop finishes the custom timing. A non-nil err marks it as errored.
func (c *CustomTiming) Stop(err error) {
	if c == nil || c.profiler == nil {
		return
	}
	c.profiler.mu.Lock()
	defer c.profiler.mu.Unlock()

	if c.DurationMilliseconds != nil {
		return
	}
	d := milliseconds(c.profiler.now().Sub(c.started))
	c.DurationMilliseconds = &d
	if err != nil {
		c.Errored = true
	}
}

// Discard removes a custom timing that turned out not to represent a real
// call, such as a driver answering driver.ErrSkip.
func (c *CustomTiming) Discard() {
	if c == nil || c.profiler == nil || c.parent == nil {
		return
	}
	c.profiler.mu.Lock()
	defer c.profiler.mu.Unlock()

	list := c.parent.CustomTimings[c.category]
	for i, ct := range list {
		if ct == c {
			c.parent.CustomTimings[c.category] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(c.parent.CustomTimings[c.category]) == 0 {
		delete(c.parent.CustomTimings, c.category)
	}
}
