// Package errors provides structured error handling for the compose engine.
//
// Two classes of failure exist. Invariant violations, such as reading view
// state with a type that was never written for that id, are fatal: they
// panic with a *StateError and the engine reports them before letting the
// panic continue. Everything else a pass can produce (nothing hit, no
// commands, no accessibility node) is an ordinary absence result and never
// reaches this package.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindState indicates a state store invariant violation.
	KindState
	// KindPass indicates a failure inside a protocol pass.
	KindPass
	// KindConfig indicates a configuration loading error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindPass:
		return "pass"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ComposeError represents a structured error in the compose engine.
type ComposeError struct {
	// Op is the operation that failed (e.g., "engine.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// ViewID is the path of the view involved, if any.
	ViewID string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ComposeError) Error() string {
	if e.ViewID != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.ViewID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StateError is the panic value raised when view state is read back with a
// type other than the one stored for that id, or read before any value was
// stored. It always indicates a framework bug: every read site is paired
// with a write site from the same combinator.
type StateError struct {
	// ViewID is the path of the state entry.
	ViewID string
	// Want is the type the reader asked for.
	Want string
	// Got is the stored type, empty when nothing was stored.
	Got string
}

func (e *StateError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("no state of type %s stored for view %s", e.Want, e.ViewID)
	}
	return fmt.Sprintf("state for view %s has type %s, read as %s", e.ViewID, e.Got, e.Want)
}

// ErrorHandler receives errors reported by the compose engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ComposeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
