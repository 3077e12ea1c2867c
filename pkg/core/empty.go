package core

import (
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// EmptyView draws nothing, takes no space and is never hit.
type EmptyView struct{}

// Empty returns an EmptyView.
func Empty() EmptyView {
	return EmptyView{}
}

func (EmptyView) Print(id ViewID, cx *Context) {
	cx.Printf("EmptyView")
}

func (EmptyView) Process(input.Event, ViewID, *Context, graphics.Canvas) {}

func (EmptyView) Draw(ViewID, *Context, graphics.Canvas) {}

func (EmptyView) Layout(ViewID, graphics.Size, *Context, graphics.Canvas) graphics.Size {
	return graphics.Size{}
}

func (EmptyView) Dirty(ViewID, graphics.Transform, *Context) {}

func (EmptyView) HitTest(ViewID, graphics.Offset, *Context, graphics.Canvas) (ViewID, bool) {
	return ViewID{}, false
}

func (EmptyView) Commands(_ ViewID, _ *Context, cmds []CommandInfo) []CommandInfo {
	return cmds
}

func (EmptyView) GC(_ ViewID, _ *Context, live []ViewID) []ViewID {
	return live
}

func (EmptyView) Access(ViewID, *Context, *semantics.Tree) (semantics.NodeID, bool) {
	return 0, false
}
