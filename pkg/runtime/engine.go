package runtime

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

// engine applies one tree position at a time. Each position moves through
// absent -> mounted -> patched (repeatable); removal is handled by the
// leave-in-place policy documented on patchChildren.
type engine struct {
	adapter host.Adapter
	log     *slog.Logger
}

// patch reconciles old against next inside container. A nil old mounts next
// from scratch. A kind change (or element tag change) at a position mounts
// the new node fresh; the stale host node stays where it is, consistent with
// the adapter contract having no remove operation.
func (e *engine) patch(old, next *vdom.VNode, container host.Node) error {
	if old != nil && !samePosition(old, next) {
		old = nil
	}

	switch next.Kind {
	case vdom.KindText:
		e.patchText(old, next, container)
		return nil
	case vdom.KindElement:
		return e.patchElement(old, next, container)
	case vdom.KindComponent:
		return e.patchComponent(old, next, container)
	default:
		return fmt.Errorf("runtime: unknown vnode kind %d", next.Kind)
	}
}

// samePosition reports whether old can be patched in place by next.
func samePosition(old, next *vdom.VNode) bool {
	if old.Kind != next.Kind {
		return false
	}
	if next.Kind == vdom.KindElement && old.Tag != next.Tag {
		return false
	}
	if next.Kind == vdom.KindComponent && old.Comp != next.Comp {
		return false
	}
	return true
}

func (e *engine) patchText(old, next *vdom.VNode, container host.Node) {
	if old == nil {
		n := e.adapter.CreateText(next.Text)
		next.Host = n
		e.adapter.Insert(n, container, nil)
		return
	}

	next.Host = old.Host
	if old.Text != next.Text {
		e.adapter.SetText(next.Host, next.Text)
	}
}

func (e *engine) patchElement(old, next *vdom.VNode, container host.Node) error {
	if old == nil {
		return e.mountElement(next, container)
	}

	next.Host = old.Host
	if err := e.patchChildren(old, next); err != nil {
		return err
	}
	e.patchProps(old, next)
	return nil
}

// mountElement creates the host element, mounts every child into it, applies
// props in insertion order, and only then inserts the element into the
// container, so children exist before the element becomes visible.
func (e *engine) mountElement(next *vdom.VNode, container host.Node) error {
	el := e.adapter.CreateElement(next.Tag)
	next.Host = el

	for _, child := range next.Children {
		if err := e.patch(nil, child, el); err != nil {
			return err
		}
	}

	next.Props.Each(func(key string, value any) bool {
		e.adapter.PatchProp(el, key, value)
		return true
	})

	e.adapter.Insert(el, container, nil)
	return nil
}

// patchChildren pairs children positionally: new child i against old child
// i. Extra new children are mounted; extra old children are left in place,
// since the adapter contract has no remove operation.
func (e *engine) patchChildren(old, next *vdom.VNode) error {
	for i, child := range next.Children {
		var prev *vdom.VNode
		if i < len(old.Children) {
			prev = old.Children[i]
		}
		if err := e.patch(prev, child, next.Host); err != nil {
			return err
		}
	}

	if len(old.Children) > len(next.Children) && e.log != nil {
		e.log.Debug("stale children left in place",
			"tag", next.Tag,
			"old", len(old.Children),
			"new", len(next.Children))
	}
	return nil
}

// patchProps reapplies every new prop whose value differs from the old one
// or is new, in the new prop set's insertion order. Props absent from the
// new set are not removed; removal is outside the adapter contract.
func (e *engine) patchProps(old, next *vdom.VNode) {
	next.Props.Each(func(key string, value any) bool {
		oldValue, ok := old.Props.Get(key)
		if !ok || !propsEqual(oldValue, value) {
			e.adapter.PatchProp(next.Host, key, value)
		}
		return true
	})
}

func (e *engine) patchComponent(old, next *vdom.VNode, container host.Node) error {
	if old == nil {
		return e.mountComponent(next, container)
	}

	inst := old.Instance
	if inst == nil {
		return e.mountComponent(next, container)
	}

	// Hand the new vnode to the owning instance; its effect does the rest.
	// Never recurse synchronously here: exactly one effect owns each
	// component's re-render.
	next.Instance = inst
	inst.Invalidate(next)
	return nil
}

// propsEqual compares two prop values. Fast paths for common types,
// reflect.DeepEqual for the rest. Func-valued props (event handlers) are
// never equal unless both nil, which keeps handler rebinding explicit.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	if reflect.TypeOf(a).Kind() == reflect.Func {
		return false
	}
	return reflect.DeepEqual(a, b)
}
