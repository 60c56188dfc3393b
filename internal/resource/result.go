// Package resource defines the tri-state result envelope shared by every
// repository operation. A logical request produces at most two values: one
// Loading, then exactly one terminal Success or Error. Consumers receive the
// sequence over a channel that is closed after the terminal value (or closed
// early, with no terminal, when the invoking context is cancelled).
//
// Results are immutable: each state transition is a new value, never an
// in-place mutation of a previous one.
package resource

// State enumerates the phases of a request lifecycle.
type State int

const (
	// StateLoading is emitted once, before the network call settles.
	StateLoading State = iota
	// StateSuccess carries the decoded response value.
	StateSuccess
	// StateError carries a classified, user-presentable message.
	StateError
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the envelope wrapping a single request outcome.
//
// Value is meaningful only when State == StateSuccess, Message only when
// State == StateError.
type Result[T any] struct {
	State   State
	Value   T
	Message string
}

// Loading returns the initial, non-terminal state of a request.
func Loading[T any]() Result[T] {
	return Result[T]{State: StateLoading}
}

// Success returns a terminal result carrying the decoded value.
func Success[T any](v T) Result[T] {
	return Result[T]{State: StateSuccess, Value: v}
}

// Failure returns a terminal result carrying a classified error message.
func Failure[T any](msg string) Result[T] {
	return Result[T]{State: StateError, Message: msg}
}

// IsLoading reports whether the result is the non-terminal Loading state.
func (r Result[T]) IsLoading() bool { return r.State == StateLoading }

// IsSuccess reports whether the result is a terminal Success.
func (r Result[T]) IsSuccess() bool { return r.State == StateSuccess }

// IsError reports whether the result is a terminal Error.
func (r Result[T]) IsError() bool { return r.State == StateError }
