// Package core implements the view composition protocol.
//
// A view tree is built from plain values every pass. Each node implements
// [View], a nine-operation visitor (print, process, draw, layout, dirty,
// hit test, commands, gc, access). The host starts a pass at the root with
// the zero [ViewID] and a single shared [Context]; wrappers derive their
// child's id with [ViewID.Child] and forward.
//
// # Identity
//
// A ViewID is the structural path from the root. It is recomputed every
// pass, so per-node state survives tree reconstruction as long as the node
// keeps its position:
//
//	root := core.ViewID{}
//	row := root.Child(0).Key("row-7")
//
// # State
//
// Per-node state lives in the Context, keyed by ViewID. Views never own it;
// they hold a typed [State] handle:
//
//	core.Stateful(func() int { return 0 }, func(count core.State[int], cx *core.Context) core.View {
//	    return core.OnKey(label(count.Get(cx)), func(cx *core.Context, k input.Key) {
//	        count.Update(cx, func(n *int) { *n++ })
//	    })
//	})
//
// Writing through a handle marks the id dirty. [Map] uses this to push a
// mutated local copy back to its owner before the event pass returns:
//
//	core.Map(settings.Get(cx).Volume,
//	    func(v float64, cx *core.Context) { settings.Update(cx, func(s *Settings) { s.Volume = v }) },
//	    func(vol core.State[float64], cx *core.Context) core.View { return knob(vol) },
//	)
//
// # Wrappers
//
// A wrapper owns exactly one child and forwards every operation it does not
// customize to that child at id.Child(0). Skipping an operation silently
// cuts off every descendant for that pass.
package core
