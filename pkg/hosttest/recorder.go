// Package hosttest provides an in-memory host adapter that records every
// operation the engine performs. Tests mount real components against it and
// assert on the op log to verify minimality properties (no redundant text
// updates, no re-applied unchanged props, and so on).
package hosttest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vireo-ui/vireo/pkg/host"
)

// Operation names as recorded in the call log.
const (
	OpCreateElement  = "CreateElement"
	OpCreateText     = "CreateText"
	OpSetText        = "SetText"
	OpSetElementText = "SetElementText"
	OpInsert         = "Insert"
	OpPatchProp      = "PatchProp"
)

// Call is one recorded adapter operation.
type Call struct {
	Op     string
	Tag    string    // CreateElement
	Text   string    // CreateText, SetText, SetElementText
	Key    string    // PatchProp
	Value  any       // PatchProp
	Node   host.Node // created or mutated node
	Parent host.Node // Insert
	Anchor host.Node // Insert
}

// Element is an in-memory host element.
type Element struct {
	ID       int
	Tag      string
	Attrs    map[string]any
	Children []host.Node
	parent   *Element
}

// TextNode is an in-memory host text node.
type TextNode struct {
	ID     int
	Text   string
	parent *Element
}

// Recorder implements host.Adapter over in-memory nodes, keeping real
// parent/child links and an ordered log of every call.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	nextID int
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Container creates a detached element usable as a mount target.
func (r *Recorder) Container() *Element {
	return r.CreateElement("#container").(*Element)
}

// CreateElement implements host.Adapter.
func (r *Recorder) CreateElement(tag string) host.Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	el := &Element{ID: r.nextID, Tag: tag, Attrs: make(map[string]any)}
	r.calls = append(r.calls, Call{Op: OpCreateElement, Tag: tag, Node: el})
	return el
}

// CreateText implements host.Adapter.
func (r *Recorder) CreateText(text string) host.Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	n := &TextNode{ID: r.nextID, Text: text}
	r.calls = append(r.calls, Call{Op: OpCreateText, Text: text, Node: n})
	return n
}

// SetText implements host.Adapter.
func (r *Recorder) SetText(node host.Node, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := node.(*TextNode); ok {
		t.Text = text
	}
	r.calls = append(r.calls, Call{Op: OpSetText, Text: text, Node: node})
}

// SetElementText implements host.Adapter.
func (r *Recorder) SetElementText(node host.Node, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if el, ok := node.(*Element); ok {
		r.nextID++
		t := &TextNode{ID: r.nextID, Text: text, parent: el}
		el.Children = []host.Node{t}
	}
	r.calls = append(r.calls, Call{Op: OpSetElementText, Text: text, Node: node})
}

// Insert implements host.Adapter. A nil anchor appends; otherwise the child
// is placed before the anchor.
func (r *Recorder) Insert(child, parent, anchor host.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := parent.(*Element)
	if ok {
		idx := len(p.Children)
		if anchor != nil {
			for i, c := range p.Children {
				if c == anchor {
					idx = i
					break
				}
			}
		}
		p.Children = append(p.Children[:idx], append([]host.Node{child}, p.Children[idx:]...)...)
		setParent(child, p)
	}
	r.calls = append(r.calls, Call{Op: OpInsert, Node: child, Parent: parent, Anchor: anchor})
}

// PatchProp implements host.Adapter.
func (r *Recorder) PatchProp(el host.Node, key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := el.(*Element); ok {
		e.Attrs[key] = value
	}
	r.calls = append(r.calls, Call{Op: OpPatchProp, Key: key, Value: value, Node: el})
}

// ParentNode implements host.Adapter.
func (r *Recorder) ParentNode(node host.Node) host.Node {
	switch n := node.(type) {
	case *Element:
		if n.parent != nil {
			return n.parent
		}
	case *TextNode:
		if n.parent != nil {
			return n.parent
		}
	}
	return nil
}

func setParent(child host.Node, p *Element) {
	switch c := child.(type) {
	case *Element:
		c.parent = p
	case *TextNode:
		c.parent = p
	}
}

// Calls returns a copy of the full call log in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsOf returns the logged calls for one operation, in order.
func (r *Recorder) CallsOf(op string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the call log without touching the node tree. Typical use:
// mount, Reset, mutate state, assert only the incremental calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// OpNames returns the operation names of the full log, for compact
// sequence assertions.
func (r *Recorder) OpNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// String renders an element subtree for debugging test failures.
func (e *Element) String() string {
	var b strings.Builder
	writeNode(&b, e)
	return b.String()
}

func writeNode(b *strings.Builder, node host.Node) {
	switch n := node.(type) {
	case *Element:
		fmt.Fprintf(b, "<%s", n.Tag)
		for k, v := range n.Attrs {
			fmt.Fprintf(b, " %s=%q", k, fmt.Sprint(v))
		}
		b.WriteString(">")
		for _, c := range n.Children {
			writeNode(b, c)
		}
		fmt.Fprintf(b, "</%s>", n.Tag)
	case *TextNode:
		b.WriteString(n.Text)
	}
}
