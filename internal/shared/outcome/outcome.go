// Package outcome defines the tagged result every use case returns and its
// mapping onto HTTP status codes and error bodies.
package outcome

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of outcomes a use case can produce.
type Kind int

const (
	KindOK Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindTooLarge
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindTooLarge:
		return "too_large"
	case KindInternal:
		return "internal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result is the value returned by use cases. Only results of kind KindOK
// carry a payload; the constructors are the only way to build one.
type Result[T any] struct {
	kind    Kind
	value   T
	message string
}

// OK wraps a successful payload.
func OK[T any](v T) Result[T] {
	return Result[T]{kind: KindOK, value: v}
}

// Invalid reports caller input that failed validation. reason is rendered
// after "Validation failed: ".
func Invalid[T any](reason string) Result[T] {
	return Result[T]{kind: KindInvalid, message: reason}
}

func NotFound[T any](msg string) Result[T] {
	return Result[T]{kind: KindNotFound, message: msg}
}

func Conflict[T any](msg string) Result[T] {
	return Result[T]{kind: KindConflict, message: msg}
}

func Unauthorized[T any](msg string) Result[T] {
	return Result[T]{kind: KindUnauthorized, message: msg}
}

func Forbidden[T any](msg string) Result[T] {
	return Result[T]{kind: KindForbidden, message: msg}
}

func TooLarge[T any](msg string) Result[T] {
	return Result[T]{kind: KindTooLarge, message: msg}
}

// Internal reports an unexpected failure. It never carries detail; the cause
// is logged where it happened.
func Internal[T any]() Result[T] {
	return Result[T]{kind: KindInternal}
}

// Kind returns the outcome tag.
func (r Result[T]) Kind() Kind { return r.kind }

// IsOK reports whether the result is a success.
func (r Result[T]) IsOK() bool { return r.kind == KindOK }

// Value returns the payload and true for OK results, the zero value and
// false otherwise.
func (r Result[T]) Value() (T, bool) {
	if r.kind != KindOK {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the caller-facing message of a non-OK result.
func (r Result[T]) Message() string { return r.message }

// Problem drops the payload type so transport code can render failures of
// any use case the same way.
func (r Result[T]) Problem() Problem {
	return Problem{Kind: r.kind, Message: r.message}
}

// Problem is a non-OK result stripped of its payload type.
type Problem struct {
	Kind    Kind
	Message string
}

// Convert re-types a non-OK result. It panics when called on an OK result,
// whose payload cannot be carried across types.
func Convert[U, T any](r Result[T]) Result[U] {
	if r.kind == KindOK {
		panic("outcome: Convert called on an OK result")
	}
	return Result[U]{kind: r.kind, message: r.message}
}

// ErrorBody is the JSON body sent for every non-OK result.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Status maps a kind to its HTTP status. Every kind is listed; the
// exhaustive linter rejects a switch that misses one.
func Status(k Kind) int {
	switch k {
	case KindOK:
		return http.StatusOK
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindInternal:
		return http.StatusInternalServerError
	}
	panic(fmt.Sprintf("outcome: unmapped kind %d", int(k)))
}

// Body renders the error body for a problem.
func Body(p Problem) ErrorBody {
	status := Status(p.Kind)
	switch p.Kind {
	case KindInternal:
		return ErrorBody{Message: "Internal server error", StatusCode: status}
	case KindInvalid:
		return ErrorBody{Message: "Validation failed: " + p.Message, StatusCode: status}
	case KindOK, KindNotFound, KindConflict, KindUnauthorized, KindForbidden, KindTooLarge:
		msg := p.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return ErrorBody{Message: msg, StatusCode: status}
	}
	panic(fmt.Sprintf("outcome: unmapped kind %d", int(p.Kind)))
}
