package provider_test

import (
	"testing"

	"github.com/kroma-labs/sentinel-profiler/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	instance := newBaseOnly()
	built := newBaseOnly()

	tests := []struct {
		name      string
		setup     func(t *testing.T, name string) *int
		want      provider.Services
		wantErr   error
		wantCalls int
	}{
		{
			name: "given registered instance, then returns it",
			setup: func(_ *testing.T, name string) *int {
				provider.Register(name, instance)
				return nil
			},
			want: instance,
		},
		{
			name: "given factory, then builds once and memoizes",
			setup: func(_ *testing.T, name string) *int {
				calls := new(int)
				provider.RegisterFactory(name, func() (provider.Services, error) {
					*calls++
					return built, nil
				})
				return calls
			},
			want:      built,
			wantCalls: 1,
		},
		{
			name: "given failing factory, then memoizes the error",
			setup: func(_ *testing.T, name string) *int {
				calls := new(int)
				provider.RegisterFactory(name, func() (provider.Services, error) {
					*calls++
					return nil, assert.AnError
				})
				return calls
			},
			wantErr:   assert.AnError,
			wantCalls: 1,
		},
		{
			name: "given factory yielding nil, then reports not registered",
			setup: func(_ *testing.T, name string) *int {
				provider.RegisterFactory(name, func() (provider.Services, error) { return nil, nil })
				return nil
			},
			wantErr: provider.ErrNotRegistered,
		},
		{
			name: "given factory yielding typed nil, then reports not registered",
			setup: func(_ *testing.T, name string) *int {
				calls := new(int)
				provider.RegisterFactory(name, func() (provider.Services, error) {
					*calls++
					return (*baseOnly)(nil), nil
				})
				return calls
			},
			wantErr:   provider.ErrNotRegistered,
			wantCalls: 1,
		},
		{
			name:    "given nothing registered, then reports not registered",
			setup:   func(*testing.T, string) *int { return nil },
			wantErr: provider.ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "lookup-test-" + t.Name()
			t.Cleanup(func() { provider.Deregister(name) })
			calls := tt.setup(t, name)

			for range 2 {
				got, err := provider.Lookup(name)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.ErrorContains(t, err, name)
					assert.Nil(t, got)
					continue
				}
				require.NoError(t, err)
				assert.Same(t, tt.want, got)
			}
			if calls != nil {
				assert.Equal(t, tt.wantCalls, *calls)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("given duplicate name, then panics", func(t *testing.T) {
		t.Cleanup(func() { provider.Deregister("dup") })
		provider.Register("dup", newBaseOnly())

		assert.Panics(t, func() { provider.Register("dup", newBaseOnly()) })
		assert.Panics(t, func() {
			provider.RegisterFactory("dup", func() (provider.Services, error) { return newBaseOnly(), nil })
		})
	})

	t.Run("given nil services or factory, then panics", func(t *testing.T) {
		assert.Panics(t, func() { provider.Register("nil-services", nil) })
		assert.Panics(t, func() { provider.Register("typed-nil-services", (*baseOnly)(nil)) })
		assert.NotContains(t, provider.Names(), "typed-nil-services")
		assert.Panics(t, func() { provider.RegisterFactory("nil-factory", nil) })
	})

	t.Run("given registrations, then names are sorted", func(t *testing.T) {
		t.Cleanup(func() {
			provider.Deregister("names-b")
			provider.Deregister("names-a")
		})
		provider.Register("names-b", newBaseOnly())
		provider.RegisterFactory("names-a", func() (provider.Services, error) { return newBaseOnly(), nil })

		names := provider.Names()

		assert.Subset(t, names, []string{"names-a", "names-b"})
		assert.IsNonDecreasing(t, names)
	})
}

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		svc  provider.Services
		want bool
	}{
		{name: "given nil interface, then true", svc: nil, want: true},
		{name: "given typed nil pointer, then true", svc: (*baseOnly)(nil), want: true},
		{name: "given instance, then false", svc: newBaseOnly(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.IsNil(tt.svc))
		})
	}
}
