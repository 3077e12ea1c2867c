package testing

import (
	"fmt"
	"sync/atomic"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
)

// nextPointerID is incremented for each new pointer so testers running in
// parallel tests never share an id.
var nextPointerID atomic.Int64

func allocPointerID() int {
	return int(nextPointerID.Add(1))
}

// Tap simulates a tap at the center of the first node matched by finder.
func (t *ViewTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	_, err := t.TapAt(result.First().Bounds.Center())
	return err
}

// TapAt simulates a tap at the given logical position. It returns the id
// of the view under the pointer.
func (t *ViewTester) TapAt(pos graphics.Offset) (core.ViewID, error) {
	hit, ok := t.engine.HitTest(pos)
	if !ok {
		return core.ViewID{}, fmt.Errorf("TapAt: no view at %v", pos)
	}
	id := allocPointerID()
	t.Pump(
		input.PointerEvent{Phase: input.PointerDown, Pointer: id, Position: pos},
		input.PointerEvent{Phase: input.PointerUp, Pointer: id, Position: pos},
	)
	return hit, nil
}

// DragFrom simulates a drag from start by delta in the given number of
// move steps.
func (t *ViewTester) DragFrom(start, delta graphics.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	id := allocPointerID()
	events := []input.Event{input.PointerEvent{Phase: input.PointerDown, Pointer: id, Position: start}}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		events = append(events, input.PointerEvent{Phase: input.PointerMove, Pointer: id, Position: pos})
	}
	end := start.Translate(delta.X, delta.Y)
	events = append(events, input.PointerEvent{Phase: input.PointerUp, Pointer: id, Position: end})
	t.Pump(events...)
}

// SendKey delivers one key press and runs a frame.
func (t *ViewTester) SendKey(k input.Key) bool {
	return t.Pump(input.KeyEvent{Key: k})
}

// SendKeys parses each spec with input.ParseKey ("Ctrl+S", "Enter", "a")
// and delivers all of them in one frame.
func (t *ViewTester) SendKeys(specs ...string) error {
	events := make([]input.Event, 0, len(specs))
	for _, spec := range specs {
		k, err := input.ParseKey(spec)
		if err != nil {
			return fmt.Errorf("SendKeys: %w", err)
		}
		events = append(events, input.KeyEvent{Key: k})
	}
	t.Pump(events...)
	return nil
}

// TypeText delivers one character key press per rune of text.
func (t *ViewTester) TypeText(text string) {
	var events []input.Event
	for _, r := range text {
		events = append(events, input.KeyEvent{Key: input.Char(r)})
	}
	t.Pump(events...)
}

// Invoke delivers a command event for path. It fails when no view in the
// tree offers the command.
func (t *ViewTester) Invoke(path string) error {
	for _, c := range t.engine.Commands() {
		if c.Path == path {
			t.Pump(input.CommandEvent{Name: path})
			return nil
		}
	}
	return fmt.Errorf("Invoke: no view offers command %q", path)
}
