package reactive

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrTriggerCycle is the panic value raised when a write keeps re-triggering
// effects that write back to the same state. The synchronous trigger depth is
// bounded by maxTriggerDepth; a well-behaved reactive graph converges long
// before the bound is hit.
var ErrTriggerCycle = errors.New("reactive: trigger depth exceeded, write/effect cycle suspected")

// maxTriggerDepth bounds nested synchronous trigger cascades.
const maxTriggerDepth = 100

// trackingContext holds the reactive bookkeeping for one goroutine.
// Keeping the slot per goroutine means independent render trees running on
// different goroutines (common in parallel tests) never see each other's
// currently running effect.
type trackingContext struct {
	// currentEffect is the effect whose computation is executing right now.
	// Reads on a State subscribe this effect. nil means reads are untracked.
	currentEffect *Effect

	// batchDepth tracks nested Batch calls. While > 0, triggers queue into
	// pending instead of running immediately.
	batchDepth int

	// pending accumulates effects to run when the outermost batch completes.
	// Deduplicated by effect ID before running.
	pending []*Effect

	// triggerDepth counts nested synchronous trigger cascades on this
	// goroutine, bounded by maxTriggerDepth.
	triggerDepth int
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// goroutineID extracts the current goroutine's ID from the runtime stack
// header ("goroutine <id> ..."). Implementation detail, never exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *trackingContext {
	gid := goroutineID()

	if tc, ok := trackingContexts.Load(gid); ok {
		return tc.(*trackingContext)
	}

	tc := &trackingContext{}
	trackingContexts.Store(gid, tc)
	return tc
}

// currentEffect returns the effect currently running on this goroutine,
// or nil when reads are untracked.
func currentEffect() *Effect {
	return getTrackingContext().currentEffect
}

// setCurrentEffect installs e as the running effect and returns the previous
// one so nested runs can restore it.
func setCurrentEffect(e *Effect) *Effect {
	tc := getTrackingContext()
	old := tc.currentEffect
	tc.currentEffect = e
	return old
}

// Untracked runs fn with dependency tracking suspended. Reads inside fn do
// not subscribe the currently running effect.
func Untracked(fn func()) {
	old := setCurrentEffect(nil)
	defer setCurrentEffect(old)
	fn()
}

// trigger runs a snapshot of dependent effects. Inside a batch the effects
// are queued for the batch flush instead. The snapshot is taken by the
// caller; the live dependency list is never iterated here, so an effect that
// rewires its own dependencies mid-trigger cannot corrupt the pass.
func trigger(effects []*Effect) {
	if len(effects) == 0 {
		return
	}

	tc := getTrackingContext()
	if tc.batchDepth > 0 {
		tc.pending = append(tc.pending, effects...)
		return
	}

	tc.triggerDepth++
	defer func() { tc.triggerDepth-- }()
	if tc.triggerDepth > maxTriggerDepth {
		panic(ErrTriggerCycle)
	}

	for _, e := range effects {
		e.Run()
	}
}

// globalIDCounter feeds unique IDs to effects and states.
var globalIDCounter atomic.Uint64

func nextID() uint64 {
	return globalIDCounter.Add(1)
}
