package vireo_test

import (
	"testing"

	"github.com/vireo-ui/vireo"
	"github.com/vireo-ui/vireo/pkg/hosttest"
)

// TestCounterApp drives the package-level surface end to end: mount a
// counter, bump the state, assert the host saw a minimal update.
func TestCounterApp(t *testing.T) {
	state := vireo.Wrap(map[string]any{"count": 0})

	counter := &vireo.Component{
		Name: "Counter",
		Setup: func(props *vireo.Props, emit vireo.Emit) vireo.RenderFunc {
			return func() *vireo.VNode {
				return vireo.El("div",
					vireo.Prop("id", "app"),
					vireo.Textf("count: %v", state.Get("count")),
				)
			}
		},
	}

	rec := hosttest.New()
	container := rec.Container()
	if err := vireo.CreateApp(counter, rec).Mount(container); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if got := container.String(); got != `<#container><div id="app">count: 0</div></#container>` {
		t.Fatalf("mounted tree = %s", got)
	}

	rec.Reset()
	vireo.Batch(func() {
		state.Set("count", 1)
		state.Set("count", 2)
	})

	sets := rec.CallsOf(hosttest.OpSetText)
	if len(sets) != 1 || sets[0].Text != "count: 2" {
		t.Fatalf("SetText calls = %v, want one \"count: 2\"", sets)
	}
	if got := container.String(); got != `<#container><div id="app">count: 2</div></#container>` {
		t.Errorf("updated tree = %s", got)
	}
}
