package provider

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Factory builds the services of a provider on first use.
type Factory func() (Services, error)

type factoryEntry struct {
	once sync.Once
	fn   Factory
	svc  Services
	err  error
}

func (e *factoryEntry) get() (Services, error) {
	e.once.Do(func() {
		e.svc, e.err = e.fn()
		if e.err == nil && IsNil(e.svc) {
			e.svc, e.err = nil, ErrNotRegistered
		}
	})
	return e.svc, e.err
}

// IsNil reports whether svc holds no usable instance: a nil interface, or
// a nil pointer, map, func, chan or slice inside one.
func IsNil(svc Services) bool {
	if svc == nil {
		return true
	}
	v := reflect.ValueOf(svc)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

var (
	registryMu sync.RWMutex
	instances  = make(map[string]Services)
	factories  = make(map[string]*factoryEntry)
)

// Register makes svc available under name. It panics if svc is nil, typed
// nil included, or the name is taken, like sql.Register.
func Register(name string, svc Services) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if IsNil(svc) {
		panic("provider: Register services is nil")
	}
	if taken(name) {
		panic("provider: Register called twice for " + name)
	}
	instances[name] = svc
}

// RegisterFactory makes the services built by fn available under name. fn
// runs at most once, on the first Lookup; its result, error included, is
// kept.
func RegisterFactory(name string, fn Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if fn == nil {
		panic("provider: RegisterFactory factory is nil")
	}
	if taken(name) {
		panic("provider: RegisterFactory called twice for " + name)
	}
	factories[name] = &factoryEntry{fn: fn}
}

func taken(name string) bool {
	_, inst := instances[name]
	_, fact := factories[name]
	return inst || fact
}

// Lookup returns the services registered under name. A registered instance
// wins over a factory. The error wraps ErrNotRegistered when nothing
// yields services.
func Lookup(name string) (Services, error) {
	registryMu.RLock()
	svc, ok := instances[name]
	entry := factories[name]
	registryMu.RUnlock()

	if ok && !IsNil(svc) {
		return svc, nil
	}
	if entry != nil {
		svc, err := entry.get()
		if err != nil {
			return nil, fmt.Errorf("provider %q: %w", name, err)
		}
		return svc, nil
	}
	return nil, fmt.Errorf("provider %q: %w", name, ErrNotRegistered)
}

// Deregister removes name from the registry. Meant for tests.
func Deregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(instances, name)
	delete(factories, name)
}

// Names returns the sorted names of registered providers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(instances)+len(factories))
	for name := range instances {
		names = append(names, name)
	}
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
