package vdom

import "github.com/vireo-ui/vireo/pkg/host"

// Kind is the node type discriminator. Exactly three kinds exist; the patch
// engine switches exhaustively on it.
type Kind uint8

const (
	KindElement   Kind = iota // tag + props + children
	KindText                  // literal text payload
	KindComponent             // component definition occurrence
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Instance is the runtime record backing a mounted component VNode. The
// concrete type lives in the runtime package; the patch engine talks to an
// existing instance only through Invalidate.
type Instance interface {
	// Invalidate delivers a replacement VNode produced by the parent's
	// re-render and triggers the instance's own update effect.
	Invalidate(next *VNode)
}

// VNode describes one desired host node. A tree of VNodes is produced fresh
// by every render pass; render logic never mutates a VNode after producing
// it. The two back-reference slots are the exception: they are assigned once
// during mount and carried forward on patch.
type VNode struct {
	Kind Kind

	// Tag is the element tag name. KindElement only.
	Tag string

	// Comp is the component definition. KindComponent only.
	Comp *Component

	// Props holds attributes and event handlers, in insertion order.
	Props *Props

	// Children are the normalized child nodes. KindElement only.
	Children []*VNode

	// Text is the literal payload. KindText only.
	Text string

	// Host is the host-side node created for this VNode, assigned during
	// mount and carried forward during patch.
	Host host.Node

	// Instance backs this VNode when Kind is KindComponent.
	Instance Instance
}

// RenderFunc produces a component's current subtree.
type RenderFunc func() *VNode

// Emit delivers a component event to the parent through the matching
// on-handler in the component's props: Emit("submit") calls the "onSubmit"
// prop if present.
type Emit func(event string, args ...any)

// SetupFunc receives the resolved props and an emit capability and returns
// the component's render function.
type SetupFunc func(props *Props, emit Emit) RenderFunc

// Component is a stateless component definition; many mounted instances may
// share one definition.
type Component struct {
	// Name identifies the component in errors.
	Name string

	// Setup produces the render function for one instance.
	Setup SetupFunc
}
