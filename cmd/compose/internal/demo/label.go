package demo

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// Label is a text leaf. It sizes itself to its text, offers Commands to
// the menu and runs OnCommand when one of them is chosen.
type Label struct {
	Text      string
	Role      semantics.Role
	Value     string
	Style     graphics.TextStyle
	Menu      []core.CommandInfo
	OnCommand func(cx *core.Context, name string)
}

func (l Label) style() graphics.TextStyle {
	if l.Style == (graphics.TextStyle{}) {
		return graphics.DefaultTextStyle()
	}
	return l.Style
}

func (l Label) Print(id core.ViewID, cx *core.Context) {
	cx.Printf("Label %q", l.Text)
}

func (l Label) Process(ev input.Event, id core.ViewID, cx *core.Context, canvas graphics.Canvas) {
	cmd, ok := ev.(input.CommandEvent)
	if !ok || l.OnCommand == nil {
		return
	}
	for _, c := range l.Menu {
		if c.Path == cmd.Name {
			l.OnCommand(cx, cmd.Name)
			return
		}
	}
}

func (l Label) Draw(id core.ViewID, cx *core.Context, canvas graphics.Canvas) {
	canvas.DrawText(l.Text, graphics.Offset{}, l.style())
}

func (l Label) Layout(id core.ViewID, size graphics.Size, cx *core.Context, canvas graphics.Canvas) graphics.Size {
	text := canvas.MeasureText(l.Text, l.style())
	got := graphics.Size{Width: min(text.Width, size.Width), Height: min(text.Height, size.Height)}
	cx.SetLayout(id, core.LayoutBox{Rect: graphics.RectFromOriginSize(graphics.Offset{}, got)})
	return got
}

func (l Label) Dirty(core.ViewID, graphics.Transform, *core.Context) {}

func (l Label) HitTest(id core.ViewID, pt graphics.Offset, cx *core.Context, canvas graphics.Canvas) (core.ViewID, bool) {
	if box, ok := cx.LayoutOf(id); ok && box.Rect.Contains(pt) {
		return id, true
	}
	return core.ViewID{}, false
}

func (l Label) Commands(_ core.ViewID, _ *core.Context, cmds []core.CommandInfo) []core.CommandInfo {
	return append(cmds, l.Menu...)
}

func (l Label) GC(_ core.ViewID, _ *core.Context, live []core.ViewID) []core.ViewID {
	return live
}

func (l Label) Access(id core.ViewID, cx *core.Context, tree *semantics.Tree) (semantics.NodeID, bool) {
	role := l.Role
	if role == semantics.RoleUnknown {
		role = semantics.RoleLabel
	}
	box, _ := cx.LayoutOf(id)
	return tree.Push(semantics.Node{
		ID:     id.AccessID(),
		Role:   role,
		Label:  l.Text,
		Value:  l.Value,
		Bounds: box.Rect,
	}), true
}
