package core

import (
	"reflect"

	"github.com/go-drift/compose/pkg/errors"
)

// State is a typed handle to the state stored for one view. It holds no
// data itself; every read and write goes through the Context. Handles are
// plain values and may be copied freely.
type State[T any] struct {
	id ViewID
}

// NewState returns a handle for the state stored at id.
func NewState[T any](id ViewID) State[T] {
	return State[T]{id: id}
}

// ID returns the view id the handle refers to.
func (s State[T]) ID() ViewID {
	return s.id
}

// Get returns the current value.
func (s State[T]) Get(cx *Context) T {
	return GetState[T](cx, s.id)
}

// Set replaces the value and marks the id dirty.
func (s State[T]) Set(cx *Context, value T) {
	if e, ok := cx.states[s.id]; ok && e.typ != reflect.TypeFor[T]() {
		panic(&errors.StateError{
			ViewID: s.id.String(),
			Want:   reflect.TypeFor[T]().String(),
			Got:    e.typ.String(),
		})
	}
	SetState(cx, s.id, value)
	cx.markDirty(s.id)
}

// Update applies fn to a copy of the value, stores the result and marks
// the id dirty.
func (s State[T]) Update(cx *Context, fn func(*T)) {
	v := s.Get(cx)
	fn(&v)
	s.Set(cx, v)
}
