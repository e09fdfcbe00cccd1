package runtime

import (
	"testing"

	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/hosttest"
	"github.com/vireo-ui/vireo/pkg/reactive"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

// mountApp mounts a single-component app whose render function is fn and
// returns the recorder and container.
func mountApp(t *testing.T, fn vdom.RenderFunc) (*hosttest.Recorder, *hosttest.Element) {
	t.Helper()

	rec := hosttest.New()
	container := rec.Container()

	root := &vdom.Component{
		Name: "Root",
		Setup: func(props *vdom.Props, emit vdom.Emit) vdom.RenderFunc {
			return fn
		},
	}

	if err := CreateApp(root, rec).Mount(container); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return rec, container
}

func TestMountEndToEnd(t *testing.T) {
	rec, container := mountApp(t, func() *vdom.VNode {
		return vdom.El("div", vdom.Prop("id", "app"), "count: 0")
	})

	creates := rec.CallsOf(hosttest.OpCreateElement)
	if len(creates) != 2 { // container + div
		t.Fatalf("CreateElement calls = %d, want 2", len(creates))
	}
	if creates[1].Tag != "div" {
		t.Errorf("created tag = %q, want div", creates[1].Tag)
	}

	texts := rec.CallsOf(hosttest.OpCreateText)
	if len(texts) != 1 || texts[0].Text != "count: 0" {
		t.Fatalf("CreateText calls = %v, want one with \"count: 0\"", texts)
	}

	props := rec.CallsOf(hosttest.OpPatchProp)
	if len(props) != 1 || props[0].Key != "id" || props[0].Value != "app" {
		t.Fatalf("PatchProp calls = %v, want one id=app", props)
	}

	inserts := rec.CallsOf(hosttest.OpInsert)
	if len(inserts) != 2 {
		t.Fatalf("Insert calls = %d, want 2", len(inserts))
	}
	div := creates[1].Node
	if inserts[0].Parent != div {
		t.Error("first insert is not text-into-div")
	}
	if inserts[1].Node != div || inserts[1].Parent != host.Node(container) {
		t.Error("second insert is not div-into-container")
	}

	// Children exist before the element is spliced into the visible tree:
	// the text insert precedes the div insert.
	if got := container.String(); got != `<#container><div id="app">count: 0</div></#container>` {
		t.Errorf("tree = %s", got)
	}
}

func TestReRenderPatchesOnlyText(t *testing.T) {
	state := reactive.Wrap(map[string]any{"count": 0})

	rec, _ := mountApp(t, func() *vdom.VNode {
		return vdom.Textf("count: %v", state.Get("count"))
	})
	rec.Reset()

	state.Set("count", 1)

	sets := rec.CallsOf(hosttest.OpSetText)
	if len(sets) != 1 || sets[0].Text != "count: 1" {
		t.Fatalf("SetText calls = %v, want one \"count: 1\"", sets)
	}
	if n := len(rec.CallsOf(hosttest.OpCreateElement)); n != 0 {
		t.Errorf("CreateElement calls = %d, want 0", n)
	}
	if n := len(rec.CallsOf(hosttest.OpCreateText)); n != 0 {
		t.Errorf("CreateText calls = %d, want 0", n)
	}
}

func TestTextPatchSkipsEqualPayload(t *testing.T) {
	state := reactive.Wrap(map[string]any{"class": "c"})

	rec, _ := mountApp(t, func() *vdom.VNode {
		return vdom.El("div", vdom.Prop("class", state.Get("class")), "static")
	})
	rec.Reset()

	state.Set("class", "d")

	// The text child re-rendered with an equal payload: no SetText.
	if n := len(rec.CallsOf(hosttest.OpSetText)); n != 0 {
		t.Errorf("SetText calls = %d, want 0", n)
	}
	props := rec.CallsOf(hosttest.OpPatchProp)
	if len(props) != 1 || props[0].Key != "class" || props[0].Value != "d" {
		t.Errorf("PatchProp calls = %v, want one class=d", props)
	}
}

func TestPropPatchMinimality(t *testing.T) {
	state := reactive.Wrap(map[string]any{"class": "c"})

	rec, _ := mountApp(t, func() *vdom.VNode {
		return vdom.El("div",
			vdom.Prop("id", "x"),
			vdom.Prop("class", state.Get("class")),
		)
	})
	rec.Reset()

	state.Set("class", "d")

	props := rec.CallsOf(hosttest.OpPatchProp)
	if len(props) != 1 {
		t.Fatalf("PatchProp calls = %d, want 1 (only class)", len(props))
	}
	if props[0].Key != "class" || props[0].Value != "d" {
		t.Errorf("PatchProp = %s=%v, want class=d", props[0].Key, props[0].Value)
	}
}

func TestChildListGrowsMountsExtras(t *testing.T) {
	state := reactive.Wrap(map[string]any{"n": 2})

	rec, _ := mountApp(t, func() *vdom.VNode {
		n := state.Get("n").(int)
		items := make([]*vdom.VNode, n)
		for i := 0; i < n; i++ {
			items[i] = vdom.El("li", vdom.Textf("item %d", i))
		}
		return vdom.El("ul", items)
	})
	rec.Reset()

	state.Set("n", 3)

	creates := rec.CallsOf(hosttest.OpCreateElement)
	if len(creates) != 1 || creates[0].Tag != "li" {
		t.Fatalf("CreateElement calls = %v, want one li", creates)
	}
	texts := rec.CallsOf(hosttest.OpCreateText)
	if len(texts) != 1 || texts[0].Text != "item 2" {
		t.Fatalf("CreateText calls = %v, want one \"item 2\"", texts)
	}
}

func TestChildListShrinksLeavesStale(t *testing.T) {
	state := reactive.Wrap(map[string]any{"n": 3})

	rec, container := mountApp(t, func() *vdom.VNode {
		n := state.Get("n").(int)
		items := make([]*vdom.VNode, n)
		for i := 0; i < n; i++ {
			items[i] = vdom.El("li", vdom.Textf("item %d", i))
		}
		return vdom.El("ul", items)
	})
	rec.Reset()

	state.Set("n", 2)

	// Shrinking emits nothing; the extra old child stays in the host tree.
	if calls := rec.Calls(); len(calls) != 0 {
		t.Errorf("calls = %v, want none", calls)
	}
	ul := container.Children[0].(*hosttest.Element)
	if len(ul.Children) != 3 {
		t.Errorf("ul children = %d, want 3 (stale child left in place)", len(ul.Children))
	}
}

func TestKindChangeMountsFresh(t *testing.T) {
	state := reactive.Wrap(map[string]any{"el": false})

	rec, _ := mountApp(t, func() *vdom.VNode {
		var child any = "plain"
		if state.Get("el").(bool) {
			child = vdom.El("span", "plain")
		}
		return vdom.El("div", child)
	})
	rec.Reset()

	state.Set("el", true)

	creates := rec.CallsOf(hosttest.OpCreateElement)
	if len(creates) != 1 || creates[0].Tag != "span" {
		t.Fatalf("CreateElement calls = %v, want one span", creates)
	}
	if n := len(rec.CallsOf(hosttest.OpSetText)); n != 0 {
		t.Errorf("SetText calls = %d, want 0", n)
	}
}

func TestPropApplicationOrderMatchesInsertion(t *testing.T) {
	rec, _ := mountApp(t, func() *vdom.VNode {
		return vdom.El("input",
			vdom.Prop("type", "text"),
			vdom.Prop("value", "v"),
			vdom.Prop("placeholder", "p"),
		)
	})

	props := rec.CallsOf(hosttest.OpPatchProp)
	want := []string{"type", "value", "placeholder"}
	if len(props) != len(want) {
		t.Fatalf("PatchProp calls = %d, want %d", len(props), len(want))
	}
	for i, key := range want {
		if props[i].Key != key {
			t.Errorf("prop %d = %q, want %q", i, props[i].Key, key)
		}
	}
}
