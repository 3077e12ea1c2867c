// Package input defines the events a host delivers to the root of a view
// tree: key presses, pointer activity and menu commands.
//
// Event is a closed tagged union. Views switch on the concrete type:
//
//	switch ev := ev.(type) {
//	case input.KeyEvent:
//	    handleKey(ev.Key)
//	case input.PointerEvent:
//	    handlePointer(ev.Phase, ev.Position)
//	}
package input
