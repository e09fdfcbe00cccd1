// Package vdom provides the virtual node tree for the render engine.
//
// A VNode describes one desired host node: an element (tag + props +
// children), a text node, or a component occurrence. Trees are produced
// fresh on every render pass; the engine diffs the new tree against the
// previous one and emits minimal host mutations.
//
// # Building trees
//
// Elements are created with variadic factory calls:
//
//	vdom.El("div", vdom.Prop("id", "app"),
//	    vdom.El("button", vdom.On("click", onClick), "increment"),
//	    vdom.Textf("count: %d", n),
//	)
//
// Raw strings passed as children become text nodes during normalization,
// which happens exactly once and is idempotent.
package vdom
