package core

import (
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// KeyView calls a function for every key event reaching it and passes the
// event on to its child unchanged.
type KeyView struct {
	child View
	fn    func(cx *Context, key input.Key)
}

// OnKey wraps child so fn runs for each key press delivered to it. fn gets
// full access to the Context and may write any state in the tree.
func OnKey(child View, fn func(cx *Context, key input.Key)) KeyView {
	return KeyView{child: child, fn: fn}
}

func (v KeyView) Print(id ViewID, cx *Context) {
	cx.PrintOpen("Key")
	v.child.Print(id.Child(0), cx)
	cx.PrintClose()
}

func (v KeyView) Process(ev input.Event, id ViewID, cx *Context, canvas graphics.Canvas) {
	if k, ok := ev.(input.KeyEvent); ok && v.fn != nil {
		v.fn(cx, k.Key)
	}
	v.child.Process(ev, id.Child(0), cx, canvas)
}

func (v KeyView) Draw(id ViewID, cx *Context, canvas graphics.Canvas) {
	v.child.Draw(id.Child(0), cx, canvas)
}

func (v KeyView) Layout(id ViewID, size graphics.Size, cx *Context, canvas graphics.Canvas) graphics.Size {
	childSize := v.child.Layout(id.Child(0), size, cx, canvas)
	cx.SetLayout(id, LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, childSize)})
	return childSize
}

func (v KeyView) Dirty(id ViewID, xform graphics.Transform, cx *Context) {
	v.child.Dirty(id.Child(0), xform, cx)
}

func (v KeyView) HitTest(id ViewID, pt graphics.Offset, cx *Context, canvas graphics.Canvas) (ViewID, bool) {
	return v.child.HitTest(id.Child(0), pt, cx, canvas)
}

func (v KeyView) Commands(id ViewID, cx *Context, cmds []CommandInfo) []CommandInfo {
	return v.child.Commands(id.Child(0), cx, cmds)
}

func (v KeyView) GC(id ViewID, cx *Context, live []ViewID) []ViewID {
	return v.child.GC(id.Child(0), cx, live)
}

func (v KeyView) Access(id ViewID, cx *Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	return v.child.Access(id.Child(0), cx, tree)
}
