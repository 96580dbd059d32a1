// Package result implements the outcome type every operation in the
// framework settles into: a success carrying a value, or a failure
// carrying a human-readable message. Expected failures travel as values
// through Map and Match instead of panics or sentinel errors.
package result

import "fmt"

// Unit is the payload of a result that carries no value.
type Unit struct{}

// Messenger is the minimal contract a structured message has to satisfy
// to be turned into a failure.
type Messenger interface {
	Message() string
}

// InvalidStateError is the panic payload when the value of a failed
// result is read. Calling code that checks IsSuccess first, or extracts
// through Match, never sees it.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("result: %s", e.Reason)
}

// Result holds the settled outcome of an operation: either a success
// carrying a value of type T, or a failure carrying a message. There is
// no third state. A Result is immutable once constructed and safe to
// share across goroutines.
//
// Operations with nothing to return use Result[Unit].
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success returns a successful result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// SuccessMsg returns a successful result holding v with an informational
// message attached.
func SuccessMsg[T any](v T, msg string) Result[T] {
	return Result[T]{value: v, message: msg, ok: true}
}

// Failure returns a failed result described by msg.
func Failure[T any](msg string) Result[T] {
	return Result[T]{message: msg}
}

// FailureFrom returns a failed result described by the text of m.
func FailureFrom[T any](m Messenger) Result[T] {
	return Result[T]{message: m.Message()}
}

// Done returns a successful result for an operation with no return value.
func Done() Result[Unit] {
	return Success(Unit{})
}

// DoneMsg is Done with an informational message attached.
func DoneMsg(msg string) Result[Unit] {
	return SuccessMsg(Unit{}, msg)
}

// IsSuccess reports whether the operation succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the operation failed.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// IsEmpty reports whether the result holds no value, which is the case
// exactly when it is a failure. The rule is the same for Result[Unit].
func (r Result[T]) IsEmpty() bool {
	return !r.ok
}

// Message returns the failure description, or the informational message
// of a success. It may be empty for a success.
func (r Result[T]) Message() string {
	return r.message
}

// Value returns the held value. It panics with *InvalidStateError when
// called on a failure: reading the value of a failed result means the
// caller skipped IsSuccess, which is a bug in the caller, not a
// condition to recover from.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(&InvalidStateError{
			Reason: fmt.Sprintf("value read on a failed result: %s", r.message),
		})
	}
	return r.value
}

// ValueOr returns the held value, or fallback when the result is a
// failure.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Match runs exactly one of the two branches: onSuccess with the held
// value, or onFailure with the failure message. It is the sanctioned way
// to extract from a result without risking the Value panic.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(string) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.message)
}

// Map applies fn to the value of a success and wraps the outcome as a
// new success, keeping any informational message. On a failure fn is
// never invoked and the failure message is carried over verbatim.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	return Match(r,
		func(v T) Result[U] {
			return Result[U]{value: fn(v), message: r.message, ok: true}
		},
		Failure[U],
	)
}

// FlatMap chains an operation that itself settles into a result. On a
// failure fn is never invoked and the failure message is carried over
// verbatim.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	return Match(r, fn, Failure[U])
}

// Equal reports whether two results settle the same way: both successes
// with equal values, or both failures with equal messages.
func Equal[T comparable](a, b Result[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.message == b.message
}
