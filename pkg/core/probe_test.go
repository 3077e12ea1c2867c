package core

import (
	"fmt"

	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// probe is a leaf view that records every call it receives.
type probe struct {
	name    string
	size    graphics.Size
	cmds    []string
	calls   *[]string
	onEvent func(cx *Context, ev input.Event)
}

func newProbe(name string, calls *[]string) probe {
	return probe{name: name, size: graphics.Size{Width: 40, Height: 20}, calls: calls}
}

func (p probe) record(op string, id ViewID) {
	if p.calls != nil {
		*p.calls = append(*p.calls, fmt.Sprintf("%s %s@%s", p.name, op, id))
	}
}

func (p probe) Print(id ViewID, cx *Context) {
	p.record("print", id)
	cx.Printf("%s", p.name)
}

func (p probe) Process(ev input.Event, id ViewID, cx *Context, canvas graphics.Canvas) {
	p.record("process", id)
	if p.onEvent != nil {
		p.onEvent(cx, ev)
	}
}

func (p probe) Draw(id ViewID, cx *Context, canvas graphics.Canvas) {
	p.record("draw", id)
	canvas.DrawRect(graphics.RectFromOriginSize(graphics.Offset{}, p.size), graphics.DefaultPaint())
}

func (p probe) Layout(id ViewID, size graphics.Size, cx *Context, canvas graphics.Canvas) graphics.Size {
	p.record("layout", id)
	cx.SetLayout(id, LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, p.size)})
	return p.size
}

func (p probe) Dirty(id ViewID, xform graphics.Transform, cx *Context) {
	o := xform.Apply(graphics.Offset{})
	p.record(fmt.Sprintf("dirty(%g,%g)", o.X, o.Y), id)
}

func (p probe) HitTest(id ViewID, pt graphics.Offset, cx *Context, canvas graphics.Canvas) (ViewID, bool) {
	p.record("hittest", id)
	if box, ok := cx.LayoutOf(id); ok && box.Rect.Contains(pt) {
		return id, true
	}
	return ViewID{}, false
}

func (p probe) Commands(id ViewID, cx *Context, cmds []CommandInfo) []CommandInfo {
	p.record("commands", id)
	for _, c := range p.cmds {
		cmds = append(cmds, CommandInfo{Path: c})
	}
	return cmds
}

func (p probe) GC(id ViewID, cx *Context, live []ViewID) []ViewID {
	p.record("gc", id)
	return live
}

func (p probe) Access(id ViewID, cx *Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	p.record("access", id)
	return tree.Push(semantics.Node{ID: id.AccessID(), Role: semantics.RoleLabel, Label: p.name}), true
}

// newCanvas returns a recording canvas for passes that need a backend.
func newCanvas() graphics.Canvas {
	rec := &graphics.PictureRecorder{}
	return rec.BeginRecording(graphics.Size{Width: 800, Height: 600})
}
