package profiler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func TestStart(t *testing.T) {
	t.Run("given a name, then context carries profiler with running root", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "GET /users")

		require.NotNil(t, prof)
		assert.Same(t, prof, FromContext(ctx))
		assert.Same(t, prof.Root, Current(ctx))
		assert.Equal(t, "GET /users", prof.Name)
		assert.Equal(t, "GET /users", prof.Root.Name)
		assert.Nil(t, prof.Root.DurationMilliseconds)
		assert.False(t, prof.Stopped())
	})

	t.Run("given options, then applies them", func(t *testing.T) {
		store := NewMemoryStorage(1)
		_, prof := Start(context.Background(), "job", WithStorage(store), WithUser("alice"))

		assert.Equal(t, "alice", prof.User)
		assert.Equal(t, store, prof.storage)
	})
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "given background context, then returns nil", ctx: context.Background()},
		{name: "given nil context, then returns nil", ctx: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, FromContext(tt.ctx))
			assert.Nil(t, Current(tt.ctx))
		})
	}
}

func TestStep(t *testing.T) {
	t.Run("given profiled context, then nests child timings", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request", WithClock(steppingClock(10*time.Millisecond)))

		stepCtx, step := Step(ctx, "load users")
		require.NotNil(t, step)
		innerCtx, inner := Step(stepCtx, "decode")
		require.NotNil(t, inner)

		inner.Stop()
		step.Stop()

		require.Len(t, prof.Root.Children, 1)
		assert.Same(t, step, prof.Root.Children[0])
		require.Len(t, step.Children, 1)
		assert.Same(t, inner, step.Children[0])
		assert.Same(t, inner, Current(innerCtx))
		require.NotNil(t, step.DurationMilliseconds)
		assert.Greater(t, *step.DurationMilliseconds, 0.0)
		assert.Greater(t, step.StartMilliseconds, 0.0)
	})

	t.Run("given unprofiled context, then returns nil timing", func(t *testing.T) {
		ctx := context.Background()

		got, step := Step(ctx, "noop")

		assert.Nil(t, step)
		assert.Equal(t, ctx, got)
		assert.NotPanics(t, step.Stop)
	})

	t.Run("given stopped profiler, then returns nil timing", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request")
		require.NoError(t, prof.Stop(ctx))

		_, step := Step(ctx, "late")

		assert.Nil(t, step)
	})
}

func TestTiming_CustomTiming(t *testing.T) {
	t.Run("given reader command, then records first fetch and duration", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request", WithClock(steppingClock(5*time.Millisecond)))

		ct := Current(ctx).CustomTiming(CategorySQL, "SELECT 1", ExecuteReader)
		ct.FirstFetchCompleted()
		ct.Stop(nil)

		got := prof.CustomTimings(CategorySQL)
		require.Len(t, got, 1)
		assert.Equal(t, "SELECT 1", got[0].CommandString)
		assert.Equal(t, ExecuteReader, got[0].ExecuteType)
		require.NotNil(t, got[0].FirstFetchDurationMilliseconds)
		require.NotNil(t, got[0].DurationMilliseconds)
		assert.GreaterOrEqual(t, *got[0].DurationMilliseconds, *got[0].FirstFetchDurationMilliseconds)
		assert.False(t, got[0].Errored)
	})

	t.Run("given error, then marks timing as errored", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request")

		ct := Current(ctx).CustomTiming(CategorySQL, "DELETE FROM users", ExecuteNonQuery)
		ct.Stop(assert.AnError)

		got := prof.CustomTimings(CategorySQL)
		require.Len(t, got, 1)
		assert.True(t, got[0].Errored)
	})

	t.Run("given second stop, then keeps first duration", func(t *testing.T) {
		ctx, _ := Start(context.Background(), "request", WithClock(steppingClock(time.Millisecond)))

		ct := Current(ctx).CustomTiming(CategorySQL, "SELECT 1", ExecuteScalar)
		ct.Stop(nil)
		first := *ct.DurationMilliseconds
		ct.Stop(assert.AnError)

		assert.Equal(t, first, *ct.DurationMilliseconds)
		assert.False(t, ct.Errored)
	})

	t.Run("given nil timing, then returns nil custom timing", func(t *testing.T) {
		var timing *Timing

		ct := timing.CustomTiming(CategorySQL, "SELECT 1", ExecuteReader)

		assert.Nil(t, ct)
		assert.NotPanics(t, func() {
			ct.FirstFetchCompleted()
			ct.Stop(nil)
		})
	})

	t.Run("given discarded timing, then removes it", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request")
		kept := Current(ctx).CustomTiming(CategorySQL, "SELECT 1", ExecuteReader)
		dropped := Current(ctx).CustomTiming(CategorySQL, "SELECT 2", ExecuteReader)

		dropped.Discard()

		assert.Equal(t, []*CustomTiming{kept}, prof.CustomTimings(CategorySQL))
		dropped.Discard()
		kept.Discard()
		assert.Empty(t, prof.Root.CustomTimings)
	})

	t.Run("given timings in nested steps, then collects them depth-first", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request")
		Current(ctx).CustomTiming(CategorySQL, "first", ExecuteReader).Stop(nil)
		stepCtx, step := Step(ctx, "child")
		Current(stepCtx).CustomTiming(CategorySQL, "second", ExecuteNonQuery).Stop(nil)
		step.Stop()

		got := prof.CustomTimings(CategorySQL)

		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].CommandString)
		assert.Equal(t, "second", got[1].CommandString)
		assert.Empty(t, prof.CustomTimings("redis"))
	})
}

func TestProfiler_Stop(t *testing.T) {
	t.Run("given storage, then saves profile once", func(t *testing.T) {
		store := NewMemoryStorage(10)
		ctx, prof := Start(context.Background(), "request",
			WithStorage(store),
			WithClock(steppingClock(time.Millisecond)),
		)

		require.NoError(t, prof.Stop(ctx))
		require.NoError(t, prof.Stop(ctx))

		assert.True(t, prof.Stopped())
		assert.Greater(t, prof.DurationMilliseconds, 0.0)
		ids, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, len(ids))
	})

	t.Run("given nil profiler, then does nothing", func(t *testing.T) {
		var prof *Profiler

		assert.NoError(t, prof.Stop(context.Background()))
		assert.False(t, prof.Stopped())
		assert.Nil(t, prof.CustomTimings(CategorySQL))
	})

	t.Run("given concurrent custom timings, then records all of them", func(t *testing.T) {
		ctx, prof := Start(context.Background(), "request")
		root := Current(ctx)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				root.CustomTiming(CategorySQL, "SELECT 1", ExecuteReader).Stop(nil)
			}()
		}
		wg.Wait()
		require.NoError(t, prof.Stop(ctx))

		assert.Len(t, prof.CustomTimings(CategorySQL), 50)
	})
}
