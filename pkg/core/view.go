package core

import (
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// View is the protocol every node in a view tree implements. Each method
// receives the node's own id and the shared Context; wrappers forward to
// their child at id.Child(0).
//
// Absence is never an error: HitTest and Access report it with a false
// second result, Commands and GC return their input slice unchanged.
type View interface {
	// Print writes a structural trace of the subtree via cx.Printf.
	Print(id ViewID, cx *Context)

	// Process delivers one event to the subtree.
	Process(ev input.Event, id ViewID, cx *Context, canvas graphics.Canvas)

	// Draw paints the subtree.
	Draw(id ViewID, cx *Context, canvas graphics.Canvas)

	// Layout computes the view's size for the proposed size and records
	// layout boxes for later passes.
	Layout(id ViewID, size graphics.Size, cx *Context, canvas graphics.Canvas) graphics.Size

	// Dirty propagates the accumulated local-to-world transform.
	Dirty(id ViewID, xform graphics.Transform, cx *Context)

	// HitTest returns the id of the view containing pt, in local
	// coordinates.
	HitTest(id ViewID, pt graphics.Offset, cx *Context, canvas graphics.Canvas) (ViewID, bool)

	// Commands appends the menu commands offered by the subtree.
	Commands(id ViewID, cx *Context, cmds []CommandInfo) []CommandInfo

	// GC appends the ids of views that own state and are still part of
	// the tree.
	GC(id ViewID, cx *Context, live []ViewID) []ViewID

	// Access appends accessibility nodes for the subtree and returns the
	// node representing it.
	Access(id ViewID, cx *Context, tree *semantics.Tree) (semantics.NodeID, bool)
}

// CommandInfo describes one menu command offered by a view.
type CommandInfo struct {
	// Path is the menu path, e.g. "Edit/Undo".
	Path string
	// Key is the keyboard shortcut, nil when the command has none.
	Key *input.Key
}
