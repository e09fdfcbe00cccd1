package reactive

// Batch groups multiple writes into a single trigger phase. Effects
// triggered inside fn are collected and deduplicated by ID; when the
// outermost batch completes, each affected effect runs exactly once. Writes
// remain synchronous and fully applied inside fn; only the re-runs are
// deferred to the end of the block.
//
// Batches nest: effects run only when the outermost batch returns.
//
// Example:
//
//	reactive.Batch(func() {
//	    state.Set("first", "Grace")
//	    state.Set("last", "Hopper")
//	})
//	// a render reading both keys re-ran once, not twice
func Batch(fn func()) {
	tc := getTrackingContext()
	tc.batchDepth++

	defer func() {
		tc.batchDepth--
		if tc.batchDepth == 0 {
			flushPending(tc)
		}
	}()

	fn()
}

// flushPending deduplicates the queued effects and runs each once.
// First-queued order is preserved.
func flushPending(tc *trackingContext) {
	pending := tc.pending
	tc.pending = nil
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(pending))
	unique := pending[:0]
	for _, e := range pending {
		if !seen[e.ID()] {
			seen[e.ID()] = true
			unique = append(unique, e)
		}
	}

	trigger(unique)
}
