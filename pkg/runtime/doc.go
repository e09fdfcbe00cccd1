// Package runtime is the render/patch engine. It reconciles an old virtual
// node tree against a newly produced one and drives the minimal set of host
// adapter calls, mounting component instances on first encounter and
// re-rendering exactly the affected instance when reactive state it read
// changes.
//
//	state := reactive.Wrap(map[string]any{"count": 0})
//
//	counter := &vdom.Component{
//	    Name: "Counter",
//	    Setup: func(props *vdom.Props, emit vdom.Emit) vdom.RenderFunc {
//	        return func() *vdom.VNode {
//	            return vdom.El("div", vdom.Textf("count: %v", state.Get("count")))
//	        }
//	    },
//	}
//
//	app := runtime.CreateApp(counter, adapter)
//	if err := app.Mount(container); err != nil { ... }
//
//	state.Set("count", 1) // patches one text node, nothing else
//
// After Mount there is no explicit update call; re-renders flow from the
// reactive graph.
package runtime
