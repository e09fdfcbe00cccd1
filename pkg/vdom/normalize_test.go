package vdom

import (
	"reflect"
	"testing"
)

func TestNormalizeRawValues(t *testing.T) {
	nodes := Normalize("hello", 42, El("span"), nil, []*VNode{Text("x")})

	if len(nodes) != 4 {
		t.Fatalf("len = %d, want 4", len(nodes))
	}
	if nodes[0].Kind != KindText || nodes[0].Text != "hello" {
		t.Errorf("nodes[0] = %v %q", nodes[0].Kind, nodes[0].Text)
	}
	if nodes[1].Kind != KindText || nodes[1].Text != "42" {
		t.Errorf("nodes[1] = %v %q", nodes[1].Kind, nodes[1].Text)
	}
	if nodes[2].Kind != KindElement {
		t.Errorf("nodes[2] = %v, want Element", nodes[2].Kind)
	}
	if nodes[3].Text != "x" {
		t.Errorf("nodes[3] = %q, want x", nodes[3].Text)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("count: 0", El("div", "inner"), 7)

	args := make([]any, len(once))
	for i, n := range once {
		args[i] = n
	}
	twice := Normalize(args...)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double normalization changed the tree:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestNormalizeComponent(t *testing.T) {
	def := &Component{Name: "Widget"}
	nodes := Normalize(def)

	if len(nodes) != 1 {
		t.Fatalf("len = %d, want 1", len(nodes))
	}
	if nodes[0].Kind != KindComponent || nodes[0].Comp != def {
		t.Errorf("nodes[0] = %v, want Component node for def", nodes[0].Kind)
	}
}
