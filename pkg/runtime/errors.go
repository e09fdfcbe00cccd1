package runtime

import "errors"

// Configuration faults. These surface from the mount path; a component that
// cannot produce a render function cannot be mounted.
var (
	// ErrNoComponent is returned when a component VNode carries no
	// definition.
	ErrNoComponent = errors.New("runtime: component vnode has no definition")

	// ErrNoSetup is returned when a component definition has no setup
	// function, leaving the instance without a render source.
	ErrNoSetup = errors.New("runtime: component has no setup function")

	// ErrNoRender is returned when setup returns a nil render function.
	ErrNoRender = errors.New("runtime: setup returned no render function")

	// ErrNilSubtree is returned when a render function produces a nil node.
	ErrNilSubtree = errors.New("runtime: render produced nil subtree")

	// ErrMounted is returned when Mount is called twice on the same App.
	ErrMounted = errors.New("runtime: app already mounted")
)
