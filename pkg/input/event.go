package input

import (
	"fmt"

	"github.com/go-drift/compose/pkg/graphics"
)

// Event is one input occurrence delivered to the root of the view tree.
// The concrete types are KeyEvent, PointerEvent and CommandEvent.
type Event interface {
	isEvent()
}

// KeyEvent reports a key press.
type KeyEvent struct {
	Key Key
}

func (KeyEvent) isEvent() {}

// PointerPhase is the stage of a pointer interaction.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent reports touch or mouse activity at a position in root
// coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Pointer  int
	Position graphics.Offset
}

func (PointerEvent) isEvent() {}

// CommandEvent reports that a menu command was chosen. Name matches a
// command path collected during the commands pass.
type CommandEvent struct {
	Name string
}

func (CommandEvent) isEvent() {}
