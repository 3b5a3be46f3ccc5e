package provider

import (
	"reflect"
	"sync"
)

// ResolverFunc returns the service for t and key, if it has one.
type ResolverFunc func(t reflect.Type, key any) (any, bool)

// Resolvers is an ordered set of service resolvers. The zero value is
// ready to use and safe for concurrent use.
type Resolvers struct {
	mu        sync.RWMutex
	resolvers []ResolverFunc
}

// Add appends a resolver. Resolvers added later take precedence.
func (r *Resolvers) Add(fn ResolverFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers = append(r.resolvers, fn)
}

// AddService registers svc for its type T under any key.
func AddService[T any](r *Resolvers, svc T) {
	want := reflect.TypeFor[T]()
	r.Add(func(t reflect.Type, _ any) (any, bool) {
		if t != want {
			return nil, false
		}
		return svc, true
	})
}

// Resolve returns the service of the most recently added resolver that
// has one.
func (r *Resolvers) Resolve(t reflect.Type, key any) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.resolvers) - 1; i >= 0; i-- {
		if v, ok := r.resolvers[i](t, key); ok {
			return v, true
		}
	}
	return nil, false
}

// ResolveAll returns the services of every resolver, most recent first.
func (r *Resolvers) ResolveAll(t reflect.Type, key any) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []any
	for i := len(r.resolvers) - 1; i >= 0; i-- {
		if v, ok := r.resolvers[i](t, key); ok {
			out = append(out, v)
		}
	}
	return out
}

// Resolve asks s for a service of type T.
//
// Example:
//
//	spatial, ok := provider.Resolve[provider.SpatialServices](svc, nil)
func Resolve[T any](s Services, key any) (T, bool) {
	v, ok := s.ResolveService(reflect.TypeFor[T](), key).(T)
	return v, ok
}

// ResolveAll asks s for every service of type T.
func ResolveAll[T any](s Services, key any) []T {
	var out []T
	for _, v := range s.ResolveServices(reflect.TypeFor[T](), key) {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
