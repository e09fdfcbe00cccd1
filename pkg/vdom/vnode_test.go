package vdom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindComponent, "Component"},
		{Kind(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestElBuilder(t *testing.T) {
	handler := func() {}
	node := El("div",
		Prop("id", "app"),
		[]Attr{Prop("class", "card"), Prop("data-x", 1)},
		On("click", handler),
		nil,
		"hello",
		El("span", "nested"),
		[]*VNode{Text("a"), nil, Text("b")},
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q, want Element div", node.Kind, node.Tag)
	}
	if node.Props.Len() != 4 {
		t.Errorf("props len = %d, want 4", node.Props.Len())
	}
	if _, ok := node.Props.Get("onClick"); !ok {
		t.Error("On(click) did not store under onClick")
	}
	if len(node.Children) != 4 {
		t.Fatalf("children = %d, want 4", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("child 0 = %v %q, want Text hello", node.Children[0].Kind, node.Children[0].Text)
	}
	if node.Children[1].Tag != "span" {
		t.Errorf("child 1 tag = %q, want span", node.Children[1].Tag)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("count: %d", 7)
	if node.Kind != KindText || node.Text != "count: 7" {
		t.Errorf("Textf = %v %q", node.Kind, node.Text)
	}
}

func TestComp(t *testing.T) {
	def := &Component{Name: "Widget"}
	node := Comp(def, Prop("title", "hi"))

	if node.Kind != KindComponent || node.Comp != def {
		t.Fatalf("Comp node = %v", node.Kind)
	}
	if v, ok := node.Props.Get("title"); !ok || v != "hi" {
		t.Errorf("props title = %v, %v", v, ok)
	}
}

func TestHandlerKey(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"click", "onClick"},
		{"submit", "onSubmit"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := HandlerKey(tc.event); got != tc.want {
			t.Errorf("HandlerKey(%q) = %q, want %q", tc.event, got, tc.want)
		}
	}
}

func TestIf(t *testing.T) {
	node := Text("shown")
	if If(true, node) != node {
		t.Error("If(true) dropped the node")
	}
	if If(false, node) != nil {
		t.Error("If(false) kept the node")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "b" {
			return nil
		}
		return Text(item)
	})
	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[0].Text != "a" || nodes[1].Text != "c" {
		t.Errorf("nodes = %q %q", nodes[0].Text, nodes[1].Text)
	}
}
