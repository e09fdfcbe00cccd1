package vdom

import "strings"

// Attr is a single attribute or event binding.
type Attr struct {
	Key   string
	Value any
}

// Prop creates an attribute.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// On creates an event binding. The event name is folded into the handler key
// convention used by Emit: On("click", fn) stores under "onClick".
func On(event string, handler any) Attr {
	return Attr{Key: HandlerKey(event), Value: handler}
}

// HandlerKey converts an event name to its prop key: "submit" -> "onSubmit".
func HandlerKey(event string) string {
	if event == "" {
		return ""
	}
	return "on" + strings.ToUpper(event[:1]) + event[1:]
}

// Props is an insertion-ordered collection of attributes and event handlers.
// Iteration order is the order keys were first set, and is identical between
// mount and patch so host-visible application order never changes.
type Props struct {
	attrs []Attr
}

// NewProps creates a Props from the given attributes, in order. A repeated
// key keeps its first position and takes the last value.
func NewProps(attrs ...Attr) *Props {
	p := &Props{}
	for _, a := range attrs {
		if a.Key != "" {
			p.Set(a.Key, a.Value)
		}
	}
	return p
}

// Set stores value under key. An existing key is updated in place, keeping
// its original position; a new key appends.
func (p *Props) Set(key string, value any) {
	for i := range p.attrs {
		if p.attrs[i].Key == key {
			p.attrs[i].Value = value
			return
		}
	}
	p.attrs = append(p.attrs, Attr{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p *Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.attrs {
		if p.attrs[i].Key == key {
			return p.attrs[i].Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.attrs)
}

// Each calls fn for every entry in insertion order until fn returns false.
func (p *Props) Each(fn func(key string, value any) bool) {
	if p == nil {
		return
	}
	for i := range p.attrs {
		if !fn(p.attrs[i].Key, p.attrs[i].Value) {
			return
		}
	}
}
