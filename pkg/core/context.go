package core

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
)

// LayoutBox is the geometry a view recorded for itself during the layout
// pass: its local rectangle and its offset from the parent's origin.
type LayoutBox struct {
	Rect   graphics.Rect
	Offset graphics.Offset
}

// stateEntry is one type-erased value in the store.
type stateEntry struct {
	value any
	typ   reflect.Type
}

// Context is the mutable state shared by every view during a pass. A
// running UI owns exactly one and threads it through every call.
//
// Context is NOT thread-safe. Passes are synchronous depth-first walks and
// all access happens on the UI goroutine.
type Context struct {
	states map[ViewID]stateEntry
	dirty  map[ViewID]struct{}
	layout map[ViewID]LayoutBox
	misses map[ViewID]int

	out    io.Writer
	indent int
	redraw bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithOutput directs print pass output to w instead of stdout.
func WithOutput(w io.Writer) ContextOption {
	return func(cx *Context) {
		cx.out = w
	}
}

// NewContext creates an empty Context.
func NewContext(opts ...ContextOption) *Context {
	cx := &Context{
		states: make(map[ViewID]stateEntry),
		dirty:  make(map[ViewID]struct{}),
		layout: make(map[ViewID]LayoutBox),
		misses: make(map[ViewID]int),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(cx)
	}
	return cx
}

// SetOutput directs print pass output to w. Nil restores stdout.
func (cx *Context) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	cx.out = w
}

// SetState installs value as the state for id, replacing whatever was
// stored before regardless of its type. It does not mark id dirty.
func SetState[T any](cx *Context, id ViewID, value T) {
	cx.states[id] = stateEntry{value: value, typ: reflect.TypeFor[T]()}
}

// GetState returns the state stored for id. It panics with a
// *errors.StateError when nothing was stored or the stored type is not T.
func GetState[T any](cx *Context, id ViewID) T {
	want := reflect.TypeFor[T]()
	e, ok := cx.states[id]
	if !ok {
		panic(&errors.StateError{ViewID: id.String(), Want: want.String()})
	}
	if e.typ != want {
		panic(&errors.StateError{ViewID: id.String(), Want: want.String(), Got: e.typ.String()})
	}
	if e.value == nil {
		var zero T
		return zero
	}
	return e.value.(T)
}

// HasState reports whether any state is stored for id.
func (cx *Context) HasState(id ViewID) bool {
	_, ok := cx.states[id]
	return ok
}

// StateType returns the name of the type stored for id.
func (cx *Context) StateType(id ViewID) (string, bool) {
	e, ok := cx.states[id]
	if !ok {
		return "", false
	}
	return e.typ.String(), true
}

// hasStateOf reports whether state of type T is stored for id.
func hasStateOf[T any](cx *Context, id ViewID) bool {
	e, ok := cx.states[id]
	return ok && e.typ == reflect.TypeFor[T]()
}

// markDirty flags id as mutated through a state handle.
func (cx *Context) markDirty(id ViewID) {
	cx.dirty[id] = struct{}{}
}

// IsDirty reports whether id was written through a state handle since the
// flag was last taken.
func (cx *Context) IsDirty(id ViewID) bool {
	_, ok := cx.dirty[id]
	return ok
}

// TakeDirty reports whether id is dirty and clears the flag.
func (cx *Context) TakeDirty(id ViewID) bool {
	if _, ok := cx.dirty[id]; !ok {
		return false
	}
	delete(cx.dirty, id)
	return true
}

// RequestRedraw records that state changed and the host should run layout
// and draw again.
func (cx *Context) RequestRedraw() {
	cx.redraw = true
}

// TakeRedraw reports whether a redraw was requested and clears the request.
func (cx *Context) TakeRedraw() bool {
	r := cx.redraw
	cx.redraw = false
	return r
}

// SetLayout records the layout box for id.
func (cx *Context) SetLayout(id ViewID, box LayoutBox) {
	cx.layout[id] = box
}

// LayoutOf returns the layout box recorded for id during the last layout
// pass.
func (cx *Context) LayoutOf(id ViewID) (LayoutBox, bool) {
	box, ok := cx.layout[id]
	return box, ok
}

// ResetLayout drops every recorded layout box. Hosts call it before a
// layout pass so views that disappeared leave no stale geometry.
func (cx *Context) ResetLayout() {
	clear(cx.layout)
}

// LayoutIDs returns the ids with a recorded layout box, in path order.
func (cx *Context) LayoutIDs() []ViewID {
	ids := make([]ViewID, 0, len(cx.layout))
	for id := range cx.layout {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// StateIDs returns the ids that currently hold state, in path order.
func (cx *Context) StateIDs() []ViewID {
	ids := make([]ViewID, 0, len(cx.states))
	for id := range cx.states {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Sweep evicts state for ids missing from grace consecutive live lists.
// live is the list gathered by a gc pass; ids present in it have their miss
// count reset. Evicted ids are returned in path order.
func (cx *Context) Sweep(live []ViewID, grace int) []ViewID {
	if grace < 1 {
		grace = 1
	}
	seen := make(map[ViewID]struct{}, len(live))
	for _, id := range live {
		seen[id] = struct{}{}
		delete(cx.misses, id)
	}

	var evicted []ViewID
	for id := range cx.states {
		if _, ok := seen[id]; ok {
			continue
		}
		cx.misses[id]++
		if cx.misses[id] < grace {
			continue
		}
		delete(cx.states, id)
		delete(cx.dirty, id)
		delete(cx.layout, id)
		delete(cx.misses, id)
		evicted = append(evicted, id)
	}
	sortIDs(evicted)
	return evicted
}

// Printf writes one line of print pass output at the current nesting depth.
func (cx *Context) Printf(format string, args ...any) {
	fmt.Fprintf(cx.out, "%s%s\n", strings.Repeat("  ", cx.indent), fmt.Sprintf(format, args...))
}

// PrintOpen starts a nested block in the print trace: "name {".
func (cx *Context) PrintOpen(name string) {
	cx.Printf("%s {", name)
	cx.indent++
}

// PrintClose ends the block opened by PrintOpen.
func (cx *Context) PrintClose() {
	if cx.indent > 0 {
		cx.indent--
	}
	cx.Printf("}")
}

func sortIDs(ids []ViewID) {
	slices.SortFunc(ids, func(a, b ViewID) int {
		return strings.Compare(a.path, b.path)
	})
}
