// Package reactive implements dependency-tracked state for the render engine.
//
// A State wraps plain keyed data. Reading a key while an Effect is running
// subscribes that effect to the key; writing a changed value synchronously
// re-runs every subscribed effect. Effects re-record their dependencies on
// every run, so a conditional read path that stops touching a key also stops
// being triggered by it.
//
// # Quick Start
//
//	state := reactive.Wrap(map[string]any{"count": 0})
//
//	eff := reactive.NewEffect(func() {
//	    fmt.Println("count is", state.Get("count"))
//	})
//	eff.Run()             // prints "count is 0", records the dependency
//	state.Set("count", 1) // prints "count is 1"
//	eff.Stop()
//	state.Set("count", 2) // prints nothing
//
// # Batching
//
// Writes normally trigger dependents one by one. Batch groups several writes
// so each affected effect runs once, after the last write:
//
//	reactive.Batch(func() {
//	    state.Set("first", "Ada")
//	    state.Set("last", "Lovelace")
//	})
//	// dependents of both keys ran exactly once
//
// The tracking slot for the currently running effect is per goroutine, so
// independent render trees (for example in parallel tests) do not observe
// each other's effects.
package reactive
