package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a tracked computation. While Run executes the computation, every
// State key it reads subscribes the effect; a later write to any of those
// keys runs the effect again.
type Effect struct {
	id uint64

	// fn is the computation to run.
	fn func()

	// deps are the dependency lists this effect is currently a member of.
	// Cleared and rebuilt on every run.
	deps   []*depList
	depsMu sync.Mutex

	// stopped marks the effect as severed from the reactive graph.
	stopped atomic.Bool
}

// NewEffect creates an effect around fn. The computation does not run until
// Run is called.
func NewEffect(fn func()) *Effect {
	return &Effect{
		id: nextID(),
		fn: fn,
	}
}

// Run executes the computation with dependency tracking.
//
// It first clears all dependency memberships recorded by the previous run,
// then installs itself as the current effect for the duration of the
// computation. Reads during that window re-subscribe it; a key read last run
// but not this run no longer triggers it. The previous current effect is
// restored afterwards, so effects whose computation runs other effects nest.
//
// A panicking computation propagates to the caller; the dependency clearing
// has already happened, so a failed effect holds no dependencies until its
// next successful run.
func (e *Effect) Run() {
	if e.stopped.Load() {
		e.fn()
		return
	}

	e.clearDeps()

	old := setCurrentEffect(e)
	defer setCurrentEffect(old)

	e.fn()
}

// Stop removes the effect from every dependency list it belongs to. Writes
// to previously observed keys no longer trigger it, and reads made by a
// later Run are not tracked.
func (e *Effect) Stop() {
	if e.stopped.Swap(true) {
		return
	}
	e.clearDeps()
}

// ID returns the effect's unique identifier. Used to deduplicate batch
// flushes.
func (e *Effect) ID() uint64 {
	return e.id
}

// addDep records membership in a dependency list for later cleanup.
// Called by State during a tracked read.
func (e *Effect) addDep(d *depList) {
	e.depsMu.Lock()
	defer e.depsMu.Unlock()

	for _, existing := range e.deps {
		if existing == d {
			return
		}
	}
	e.deps = append(e.deps, d)
}

// clearDeps removes this effect from every dependency list it joined.
func (e *Effect) clearDeps() {
	e.depsMu.Lock()
	defer e.depsMu.Unlock()

	for _, d := range e.deps {
		d.remove(e)
	}
	e.deps = e.deps[:0]
}

// depList is an ordered set of effects subscribed to one (state, key) pair.
// Order is subscription order, which makes trigger order deterministic for a
// given run.
type depList struct {
	mu      sync.Mutex
	effects []*Effect
}

// add subscribes an effect, deduplicating by ID. Re-subscription of the same
// effect during one run is the norm (a render reads a key several times) and
// must not produce duplicate triggers.
func (d *depList) add(e *Effect) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.effects {
		if existing.id == e.id {
			return
		}
	}
	d.effects = append(d.effects, e)
}

// remove unsubscribes an effect, preserving the order of the rest.
func (d *depList) remove(e *Effect) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.effects {
		if existing.id == e.id {
			d.effects = append(d.effects[:i], d.effects[i+1:]...)
			return
		}
	}
}

// snapshot copies the current members. Triggering always iterates a
// snapshot, never the live list.
func (d *depList) snapshot() []*Effect {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.effects) == 0 {
		return nil
	}
	out := make([]*Effect, len(d.effects))
	copy(out, d.effects)
	return out
}
