// Package host defines the contract between the render engine and the
// presentation layer it mirrors the virtual tree onto.
//
// The engine calls these operations and never implements them. An adapter
// decides what a node actually is (an in-memory record, a handle streamed to
// a remote client, a real UI object) and how event-like prop keys differ
// from plain attributes.
package host

// Node is a host-side node reference. Adapters define their own concrete
// node representation; the engine treats nodes as opaque and only stores
// them back onto virtual nodes.
type Node any

// Adapter is the fixed set of presentation-layer operations the engine
// drives.
type Adapter interface {
	// CreateElement creates a detached element node for the given tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node with the given payload.
	CreateText(text string) Node

	// SetText updates an existing text node's payload.
	SetText(node Node, text string)

	// SetElementText replaces all children of an element with a single text
	// payload. The index-pairing child diff does not use it; it is reserved
	// for adapters that short-circuit all-text children.
	SetElementText(node Node, text string)

	// Insert places child under parent. A nil anchor appends; otherwise the
	// child is inserted before anchor.
	Insert(child, parent, anchor Node)

	// PatchProp applies one attribute or event binding to an element. The
	// adapter, not the engine, decides how event-like keys are handled.
	PatchProp(el Node, key string, value any)

	// ParentNode returns the current parent of node, or nil for a detached
	// or root node. The engine uses it to repatch a component's subtree
	// against its real current parent rather than a cached one.
	ParentNode(node Node) Node
}
