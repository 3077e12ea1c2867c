package core

import (
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// StateView owns a piece of local state that persists across passes for as
// long as the view keeps its position in the tree.
type StateView[S any] struct {
	init func() S
	fn   func(State[S], *Context) View
}

// Stateful creates persistent local state. init runs the first time the
// view's id is seen (or after its state was evicted); fn builds the child
// from a handle to the state.
//
//	core.Stateful(func() int { return 0 }, func(count core.State[int], cx *core.Context) core.View {
//	    return core.OnKey(core.Empty(), func(cx *core.Context, _ input.Key) {
//	        count.Update(cx, func(n *int) { *n++ })
//	    })
//	})
func Stateful[S any](init func() S, fn func(State[S], *Context) View) StateView[S] {
	return StateView[S]{init: init, fn: fn}
}

// child makes sure the state exists and builds the child view.
func (v StateView[S]) child(id ViewID, cx *Context) View {
	if !hasStateOf[S](cx, id) {
		var initial S
		if v.init != nil {
			initial = v.init()
		}
		SetState(cx, id, initial)
	}
	return v.fn(NewState[S](id), cx)
}

func (v StateView[S]) Print(id ViewID, cx *Context) {
	child := v.child(id, cx)
	cx.PrintOpen("State")
	child.Print(id.Child(0), cx)
	cx.PrintClose()
}

func (v StateView[S]) Process(ev input.Event, id ViewID, cx *Context, canvas graphics.Canvas) {
	v.child(id, cx).Process(ev, id.Child(0), cx, canvas)
	if cx.TakeDirty(id) {
		cx.RequestRedraw()
	}
}

func (v StateView[S]) Draw(id ViewID, cx *Context, canvas graphics.Canvas) {
	v.child(id, cx).Draw(id.Child(0), cx, canvas)
}

func (v StateView[S]) Layout(id ViewID, size graphics.Size, cx *Context, canvas graphics.Canvas) graphics.Size {
	childSize := v.child(id, cx).Layout(id.Child(0), size, cx, canvas)
	cx.SetLayout(id, LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, childSize)})
	return childSize
}

func (v StateView[S]) Dirty(id ViewID, xform graphics.Transform, cx *Context) {
	v.child(id, cx).Dirty(id.Child(0), xform, cx)
}

func (v StateView[S]) HitTest(id ViewID, pt graphics.Offset, cx *Context, canvas graphics.Canvas) (ViewID, bool) {
	return v.child(id, cx).HitTest(id.Child(0), pt, cx, canvas)
}

func (v StateView[S]) Commands(id ViewID, cx *Context, cmds []CommandInfo) []CommandInfo {
	return v.child(id, cx).Commands(id.Child(0), cx, cmds)
}

func (v StateView[S]) GC(id ViewID, cx *Context, live []ViewID) []ViewID {
	child := v.child(id, cx)
	live = append(live, id)
	return child.GC(id.Child(0), cx, live)
}

func (v StateView[S]) Access(id ViewID, cx *Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	return v.child(id, cx).Access(id.Child(0), cx, tree)
}
