package core

import (
	"reflect"

	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// Cloner is implemented by values that need a deep copy before being
// installed as local state, such as structs holding slices or maps.
type Cloner[T any] interface {
	Clone() T
}

// MapView exposes a fresh copy of an externally owned value as local state
// and pushes mutations of that copy back through a setter.
type MapView[S any] struct {
	value    S
	setValue func(S, *Context)
	fn       func(State[S], *Context) View
}

// Map creates local derived state with a setter.
//
// Every pass installs a copy of value as the state for the view's id, so
// each pass starts from the owner's current value. fn builds the child from
// a handle to that copy. When event processing in the child writes through
// the handle, setValue receives the new value before Process returns.
//
// The copy comes from Clone when S implements Cloner. Otherwise slices and
// maps are copied one level deep and other values by assignment, so
// pointers, or slices nested inside S, still share storage with the owner.
// Such values should implement Cloner.
//
//	core.Map(cfg.Get(cx).Zoom,
//	    func(z float64, cx *core.Context) { cfg.Update(cx, func(c *Config) { c.Zoom = z }) },
//	    func(zoom core.State[float64], cx *core.Context) core.View { return slider(zoom) },
//	)
func Map[S any](value S, setValue func(S, *Context), fn func(State[S], *Context) View) MapView[S] {
	return MapView[S]{value: value, setValue: setValue, fn: fn}
}

// child reinstalls the owner's value and builds the child view.
func (v MapView[S]) child(id ViewID, cx *Context) View {
	SetState(cx, id, cloneValue(v.value))
	return v.fn(NewState[S](id), cx)
}

func (v MapView[S]) Print(id ViewID, cx *Context) {
	child := v.child(id, cx)
	cx.PrintOpen("Map")
	child.Print(id.Child(0), cx)
	cx.PrintClose()
}

func (v MapView[S]) Process(ev input.Event, id ViewID, cx *Context, canvas graphics.Canvas) {
	child := v.child(id, cx)
	// Writes made outside an event pass are never flushed.
	cx.TakeDirty(id)
	child.Process(ev, id.Child(0), cx, canvas)

	// The next pass overwrites the local copy, so flush now.
	if cx.TakeDirty(id) {
		if v.setValue != nil {
			v.setValue(GetState[S](cx, id), cx)
		}
		cx.RequestRedraw()
	}
}

func (v MapView[S]) Draw(id ViewID, cx *Context, canvas graphics.Canvas) {
	v.child(id, cx).Draw(id.Child(0), cx, canvas)
}

func (v MapView[S]) Layout(id ViewID, size graphics.Size, cx *Context, canvas graphics.Canvas) graphics.Size {
	childSize := v.child(id, cx).Layout(id.Child(0), size, cx, canvas)
	cx.SetLayout(id, LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, childSize)})
	return childSize
}

func (v MapView[S]) Dirty(id ViewID, xform graphics.Transform, cx *Context) {
	v.child(id, cx).Dirty(id.Child(0), xform, cx)
}

func (v MapView[S]) HitTest(id ViewID, pt graphics.Offset, cx *Context, canvas graphics.Canvas) (ViewID, bool) {
	return v.child(id, cx).HitTest(id.Child(0), pt, cx, canvas)
}

func (v MapView[S]) Commands(id ViewID, cx *Context, cmds []CommandInfo) []CommandInfo {
	return v.child(id, cx).Commands(id.Child(0), cx, cmds)
}

func (v MapView[S]) GC(id ViewID, cx *Context, live []ViewID) []ViewID {
	child := v.child(id, cx)
	live = append(live, id)
	return child.GC(id.Child(0), cx, live)
}

func (v MapView[S]) Access(id ViewID, cx *Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	return v.child(id, cx).Access(id.Child(0), cx, tree)
}

// cloneValue copies v so writes to the local state never reach the owner.
// Slices and maps get a fresh top level; their elements are still shared.
func cloneValue[S any](v S) S {
	if c, ok := any(v).(Cloner[S]); ok {
		return c.Clone()
	}
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface().(S)
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		return cp.Interface().(S)
	}
	return v
}
