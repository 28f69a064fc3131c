package automation

import (
	"context"
	"errors"
)

// Kind classifies a stage failure.
type Kind string

const (
	KindWindowNotFound  Kind = "window_not_found"
	KindFocusUnverified Kind = "focus_unverified"
	KindElementNotFound Kind = "element_not_found"
	KindActionFailed    Kind = "action_failed"
	KindInvalidInput    Kind = "invalid_input"
	KindCancelled       Kind = "cancelled"
)

// Sentinel errors, one per Kind. Use errors.Is against these.
var (
	ErrWindowNotFound  = errors.New("window not found")
	ErrFocusUnverified = errors.New("focus unverified")
	ErrElementNotFound = errors.New("element not found")
	ErrActionFailed    = errors.New("action failed")
	ErrInvalidInput    = errors.New("invalid input")
	ErrCancelled       = errors.New("cancelled")
)

var sentinels = map[Kind]error{
	KindWindowNotFound:  ErrWindowNotFound,
	KindFocusUnverified: ErrFocusUnverified,
	KindElementNotFound: ErrElementNotFound,
	KindActionFailed:    ErrActionFailed,
	KindInvalidInput:    ErrInvalidInput,
	KindCancelled:       ErrCancelled,
}

// Error is a classified stage failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if s, ok := sentinels[e.Kind]; ok {
		msg = s.Error()
	}
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of err. Context cancellation and deadline errors
// report KindCancelled; unclassified errors report the empty Kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return ""
}

func cancelled(op string, err error) *Error {
	return newError(KindCancelled, op, err)
}
