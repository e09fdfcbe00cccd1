package vdom

import "fmt"

// El creates an element node with the given tag. Arguments are interpreted
// by type: Attr and []Attr become props, *VNode, []*VNode, *Component and
// raw values become children. nil arguments are ignored, which allows
// conditional attributes and children inline.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: &Props{},
	}

	var children []any
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key != "" {
				node.Props.Set(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props.Set(a.Key, a.Value)
				}
			}
		default:
			children = append(children, arg)
		}
	}
	node.Children = Normalize(children...)

	return node
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comp creates a component node. Attr arguments become the component's
// props.
func Comp(def *Component, attrs ...Attr) *VNode {
	return &VNode{
		Kind:  KindComponent,
		Comp:  def,
		Props: NewProps(attrs...),
	}
}

// Normalize converts raw child values into VNodes: strings and other bare
// values become text nodes, *VNode and []*VNode entries pass through
// unchanged and nils are dropped. Normalizing already-normalized children is
// the identity, so running it twice never double-wraps.
func Normalize(children ...any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				out = append(out, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					out = append(out, c)
				}
			}
		case string:
			out = append(out, Text(v))
		case *Component:
			out = append(out, Comp(v))
		default:
			out = append(out, Textf("%v", v))
		}
	}
	return out
}

// If returns the node if condition is true, nil otherwise. A nil child is
// dropped during normalization.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes. nil results are skipped.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
