package testbed

import (
	"fmt"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// LayoutBox is a fixed-size colored leaf for layout and hit testing.
// It takes at most the proposed size.
type LayoutBox struct {
	Label  string
	Width  float64
	Height float64
	Color  graphics.Color
	Role   semantics.Role
	Menu   []core.CommandInfo
	// OnTap runs when a pointer goes up inside the box.
	OnTap func(cx *core.Context)
}

func (b LayoutBox) Print(id core.ViewID, cx *core.Context) {
	cx.Printf("LayoutBox %q %gx%g", b.Label, b.Width, b.Height)
}

func (b LayoutBox) Process(ev input.Event, id core.ViewID, cx *core.Context, canvas graphics.Canvas) {
	p, ok := ev.(input.PointerEvent)
	if !ok || p.Phase != input.PointerUp || b.OnTap == nil {
		return
	}
	if box, ok := cx.LayoutOf(id); ok && box.Rect.Contains(p.Position) {
		b.OnTap(cx)
	}
}

func (b LayoutBox) Draw(id core.ViewID, cx *core.Context, canvas graphics.Canvas) {
	box, _ := cx.LayoutOf(id)
	canvas.DrawRect(box.Rect, graphics.FillPaint(b.Color))
	if b.Label != "" {
		canvas.DrawText(b.Label, graphics.Offset{}, graphics.DefaultTextStyle())
	}
}

func (b LayoutBox) Layout(id core.ViewID, size graphics.Size, cx *core.Context, canvas graphics.Canvas) graphics.Size {
	got := graphics.Size{Width: min(b.Width, size.Width), Height: min(b.Height, size.Height)}
	cx.SetLayout(id, core.LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, got)})
	return got
}

func (b LayoutBox) Dirty(core.ViewID, graphics.Transform, *core.Context) {}

func (b LayoutBox) HitTest(id core.ViewID, pt graphics.Offset, cx *core.Context, canvas graphics.Canvas) (core.ViewID, bool) {
	if box, ok := cx.LayoutOf(id); ok && box.Rect.Contains(pt) {
		return id, true
	}
	return core.ViewID{}, false
}

func (b LayoutBox) Commands(_ core.ViewID, _ *core.Context, cmds []core.CommandInfo) []core.CommandInfo {
	return append(cmds, b.Menu...)
}

func (b LayoutBox) GC(_ core.ViewID, _ *core.Context, live []core.ViewID) []core.ViewID {
	return live
}

func (b LayoutBox) Access(id core.ViewID, cx *core.Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	role := b.Role
	if role == semantics.RoleUnknown {
		role = semantics.RoleLabel
	}
	box, _ := cx.LayoutOf(id)
	return tree.Push(semantics.Node{
		ID:     id.AccessID(),
		Role:   role,
		Label:  b.Label,
		Bounds: box.Rect,
	}), true
}

func (b LayoutBox) String() string {
	return fmt.Sprintf("LayoutBox(%q)", b.Label)
}
