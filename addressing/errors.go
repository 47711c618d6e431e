package addressing

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error kinds categorize derivation failures.
const (
	// KindInvalidInput indicates a caller-supplied identifier failed a
	// structural precondition (too short, malformed hex). Always
	// recoverable by the caller.
	KindInvalidInput = "invalid_input"

	// KindHashError indicates the injected hash capability failed.
	// Treated as an infrastructure failure: propagate, do not retry,
	// never substitute a default address.
	KindHashError = "hash_error"
)

// Error is the structured error type returned by every operation in
// this package. It implements the error interface and supports
// unwrapping, so it composes with errors.Is and errors.As.
type Error struct {
	// Op is the operation that failed (e.g. "compute_agent_address").
	Op string

	// Kind categorizes the error (KindInvalidInput or KindHashError).
	Kind string

	// Message is a human-readable description of the failure.
	Message string

	// Err is the underlying cause, if any (hash capability failures).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("addressing: %s (%s): %s: %v", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("addressing: %s (%s): %s", e.Op, e.Kind, e.Message)
}

// Unwrap returns the underlying cause, allowing errors.Is and errors.As
// to traverse wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches target against this error by Kind and Op. A target with an
// empty Op matches any operation of the same Kind, so callers can write
//
//	errors.Is(err, &addressing.Error{Kind: addressing.KindInvalidInput})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == "" && t.Op == "" {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return true
}

// LogValue implements slog.LogValuer so the error renders as a
// structured group when logged by surrounding layers.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.String("kind", e.Kind),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// IsInvalidInput reports whether err is (or wraps) an addressing Error
// of kind KindInvalidInput.
func IsInvalidInput(err error) bool {
	return isKind(err, KindInvalidInput)
}

// IsHashError reports whether err is (or wraps) an addressing Error of
// kind KindHashError.
func IsHashError(err error) bool {
	return isKind(err, KindHashError)
}

func isKind(err error, kind string) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func invalidInputf(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func hashErrorf(op string, cause error, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindHashError, Message: fmt.Sprintf(format, args...), Err: cause}
}
