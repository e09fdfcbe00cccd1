package runtime

import (
	"fmt"

	"github.com/vireo-ui/vireo/pkg/host"
	"github.com/vireo-ui/vireo/pkg/reactive"
	"github.com/vireo-ui/vireo/pkg/vdom"
)

// componentInstance is the mutable runtime state behind one mounted
// component node. A single reactive effect owns the instance's re-render:
// parent-driven prop updates (via Invalidate) and internal reactive writes
// both funnel through the same effect, so many writes coalesced in a batch
// are observed as one re-render.
type componentInstance struct {
	engine *engine

	// vnode is the VNode currently representing this component in its
	// parent's tree. Owned by the instance once mounted.
	vnode *vdom.VNode

	// next is a pending replacement vnode delivered by the parent's
	// re-render, or nil.
	next *vdom.VNode

	// props are the resolved props, mutated in place on updates and never
	// replaced wholesale, so anything keyed off the props object identity
	// stays valid.
	props *vdom.Props

	render    vdom.RenderFunc
	subTree   *vdom.VNode
	isMounted bool

	effect    *reactive.Effect
	update    func()
	container host.Node

	// mountErr carries a failure out of the first effect run, which cannot
	// return an error through the effect.
	mountErr error
}

// mountComponent allocates an instance for vnode, resolves its render
// function through setup, and runs the first render. A definition without a
// usable render source is a configuration fault.
func (e *engine) mountComponent(vnode *vdom.VNode, container host.Node) error {
	comp := vnode.Comp
	if comp == nil {
		return ErrNoComponent
	}
	if comp.Setup == nil {
		return fmt.Errorf("%w: %s", ErrNoSetup, comp.Name)
	}

	inst := &componentInstance{
		engine:    e,
		vnode:     vnode,
		container: container,
		props:     vnode.Props,
	}
	if inst.props == nil {
		inst.props = vdom.NewProps()
	}

	render := comp.Setup(inst.props, inst.emit)
	if render == nil {
		return fmt.Errorf("%w: %s", ErrNoRender, comp.Name)
	}
	inst.render = render
	vnode.Instance = inst

	return inst.setupRenderEffect()
}

// setupRenderEffect wraps the render-and-patch pass as the instance's owning
// effect and runs it once to mount. Errors on the first run are returned;
// errors on a triggered re-run propagate as a panic to the caller of the
// write that triggered it.
func (i *componentInstance) setupRenderEffect() error {
	i.effect = reactive.NewEffect(func() {
		mounted := i.isMounted
		if err := i.renderAndPatch(); err != nil {
			if mounted {
				panic(err)
			}
			i.mountErr = err
		}
	})
	i.update = i.effect.Run

	i.effect.Run()
	if i.mountErr != nil {
		i.effect.Stop()
		return i.mountErr
	}
	return nil
}

// renderAndPatch is the single computation owned by the instance's effect.
func (i *componentInstance) renderAndPatch() error {
	if !i.isMounted {
		subTree := i.render()
		if subTree == nil {
			return fmt.Errorf("%w: %s", ErrNilSubtree, i.name())
		}
		i.subTree = subTree
		if err := i.engine.patch(nil, subTree, i.container); err != nil {
			return err
		}
		// The parent sees where its child materialized.
		i.vnode.Host = subTree.Host
		i.isMounted = true
		return nil
	}

	if i.next != nil {
		i.applyNext()
	}

	prev := i.subTree
	subTree := i.render()
	if subTree == nil {
		return fmt.Errorf("%w: %s", ErrNilSubtree, i.name())
	}

	// Repatch against the subtree's real current parent, not a cached
	// container: the parent may itself have been replaced between renders.
	parent := i.engine.adapter.ParentNode(prev.Host)
	if parent == nil {
		parent = i.container
	}
	if err := i.engine.patch(prev, subTree, parent); err != nil {
		return err
	}

	i.subTree = subTree
	i.vnode.Host = subTree.Host
	return nil
}

// applyNext splices a parent-delivered replacement vnode into the instance:
// host and instance references carry over, the tracked vnode is swapped, and
// new prop values merge into the existing props object.
func (i *componentInstance) applyNext() {
	next := i.next
	i.next = nil

	next.Host = i.vnode.Host
	next.Instance = i
	i.vnode = next

	next.Props.Each(func(key string, value any) bool {
		i.props.Set(key, value)
		return true
	})
}

// Invalidate implements vdom.Instance. The parent's re-render delivers the
// replacement vnode here and triggers the instance's own effect.
func (i *componentInstance) Invalidate(next *vdom.VNode) {
	i.next = next
	i.update()
}

// emit signals an event to the parent by calling the matching on-handler
// prop, if one was passed.
func (i *componentInstance) emit(event string, args ...any) {
	handler, ok := i.props.Get(vdom.HandlerKey(event))
	if !ok {
		return
	}
	switch h := handler.(type) {
	case func(...any):
		h(args...)
	case func():
		h()
	}
}

func (i *componentInstance) name() string {
	if i.vnode.Comp != nil && i.vnode.Comp.Name != "" {
		return i.vnode.Comp.Name
	}
	return "anonymous"
}
