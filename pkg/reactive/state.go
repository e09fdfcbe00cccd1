package reactive

import (
	"reflect"
	"sync"
)

// State wraps a plain map so that key reads register the currently running
// effect as a dependent and key writes re-run all effects registered for
// that key.
type State struct {
	id uint64

	mu     sync.RWMutex
	values map[string]any

	// deps maps key -> subscribed effects. Entries are created lazily on the
	// first tracked read of a key.
	deps map[string]*depList

	// nested caches lazily created wrappers for map-valued keys, so repeated
	// reads of the same key return the same *State.
	nested map[string]*State
}

// Wrap makes values reactive. The map is used directly, not copied; mutate
// it only through the returned State afterwards, since direct map writes
// bypass dependency tracking.
func Wrap(values map[string]any) *State {
	if values == nil {
		values = make(map[string]any)
	}
	return &State{
		id:     nextID(),
		values: values,
	}
}

// Get returns the value for key and subscribes the currently running effect,
// if any. A value that is itself a map[string]any is wrapped into a nested
// State on first access; the wrapper is cached so every read observes the
// same reactive object.
func (s *State) Get(key string) any {
	s.track(key)

	s.mu.RLock()
	v := s.values[key]
	s.mu.RUnlock()

	if m, ok := v.(map[string]any); ok {
		return s.nestedState(key, m)
	}
	return v
}

// Peek returns the value for key without subscribing. Nested maps are
// returned unwrapped.
func (s *State) Peek(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Has reports whether key is present, without subscribing.
func (s *State) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Set writes value under key. Writing a value equal to the current one is a
// no-op that triggers nothing. Otherwise every effect subscribed to the key
// runs synchronously before Set returns, in subscription order, iterating a
// snapshot taken before the first effect runs.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	old := s.values[key]
	if valuesEqual(old, value) {
		s.mu.Unlock()
		return
	}
	s.values[key] = value
	// A replaced map value invalidates its cached wrapper.
	if s.nested[key] != nil {
		delete(s.nested, key)
	}
	d := s.deps[key]
	s.mu.Unlock()

	if d == nil {
		return
	}
	trigger(d.snapshot())
}

// ID returns the state's unique identifier.
func (s *State) ID() uint64 {
	return s.id
}

// track subscribes the currently running effect to key.
func (s *State) track(key string) {
	e := currentEffect()
	if e == nil || e.stopped.Load() {
		return
	}

	s.mu.Lock()
	if s.deps == nil {
		s.deps = make(map[string]*depList)
	}
	d := s.deps[key]
	if d == nil {
		d = &depList{}
		s.deps[key] = d
	}
	s.mu.Unlock()

	d.add(e)
	e.addDep(d)
}

// nestedState returns the cached wrapper for a map-valued key, creating it
// on first access.
func (s *State) nestedState(key string, m map[string]any) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nested == nil {
		s.nested = make(map[string]*State)
	}
	if ns, ok := s.nested[key]; ok {
		return ns
	}
	ns := Wrap(m)
	s.nested[key] = ns
	return ns
}

// valuesEqual reports whether a write of b over a would be a no-op.
// Fast paths for common comparable types, reflect.DeepEqual otherwise.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	}
	return reflect.DeepEqual(a, b)
}
