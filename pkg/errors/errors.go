// Package errors provides structured error reporting for the swipe engine.
//
// The engine never fails a scroll or layout pass: problems with
// collaborators (a data source returning no view, a delegate callback that
// panics) are reported to a global [ErrorHandler] and the engine carries on
// with the documented default behaviour.
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
	// KindDataSource indicates a data source contract violation.
	KindDataSource
	// KindDelegate indicates a failing delegate callback.
	KindDelegate
	// KindConfig indicates invalid or unreadable configuration.
	KindConfig
	// KindHost indicates a host view-tree or terminal failure.
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDataSource:
		return "datasource"
	case KindDelegate:
		return "delegate"
	case KindConfig:
		return "config"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SwipeError is a structured error raised by a container operation.
type SwipeError struct {
	// Op is the operation that failed (e.g., "swipe.loadView").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Index is the item index involved, or -1.
	Index int
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SwipeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s [%s] index=%d: %v", e.Op, e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SwipeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "swipe.delegate.OnScroll").
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

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an operation reports an error.
	HandleError(err *SwipeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
