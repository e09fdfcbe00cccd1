// Package vireo re-exports the engine's common surface so applications can
// build, mount and drive a reactive tree from one import:
//
//	state := vireo.Wrap(map[string]any{"count": 0})
//
//	counter := &vireo.Component{
//	    Name: "Counter",
//	    Setup: func(props *vireo.Props, emit vireo.Emit) vireo.RenderFunc {
//	        return func() *vireo.VNode {
//	            return vireo.El("div", vireo.Textf("count: %v", state.Get("count")))
//	        }
//	    },
//	}
//
//	app := vireo.CreateApp(counter, adapter)
//	err := app.Mount(container)
//
// The underlying packages (reactive, vdom, runtime, host) remain importable
// directly; this package adds nothing beyond aliases and thin wrappers.
package vireo

import (
	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/reactive"
	"github.com/vireo-ui/vireo/pkg/runtime"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

// Virtual node aliases.
type (
	VNode      = vdom.VNode
	Kind       = vdom.Kind
	Props      = vdom.Props
	Attr       = vdom.Attr
	Component  = vdom.Component
	RenderFunc = vdom.RenderFunc
	Emit       = vdom.Emit
)

// Kind constants.
const (
	KindElement   = vdom.KindElement
	KindText      = vdom.KindText
	KindComponent = vdom.KindComponent
)

// Reactive aliases.
type (
	State  = reactive.State
	Effect = reactive.Effect
)

// Runtime aliases.
type (
	App    = runtime.App
	Option = runtime.Option
)

// El creates an element node. See vdom.El.
func El(tag string, args ...any) *VNode {
	return vdom.El(tag, args...)
}

// Text creates a text node.
func Text(content string) *VNode {
	return vdom.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

// Prop creates an attribute.
func Prop(key string, value any) Attr {
	return vdom.Prop(key, value)
}

// On creates an event binding.
func On(event string, handler any) Attr {
	return vdom.On(event, handler)
}

// Wrap makes a plain map reactive.
func Wrap(values map[string]any) *State {
	return reactive.Wrap(values)
}

// Batch groups writes so each affected effect runs once.
func Batch(fn func()) {
	reactive.Batch(fn)
}

// CreateApp creates an application around a root component and a host
// adapter.
func CreateApp(root *Component, adapter host.Adapter, opts ...Option) *App {
	return runtime.CreateApp(root, adapter, opts...)
}
