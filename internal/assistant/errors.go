package assistant

import (
	"context"
	"errors"
	"fmt"
)

// Submission errors returned before anything is appended to the conversation.
var (
	ErrEmptyInput = errors.New("message is empty")
	ErrBusy       = errors.New("a message is already being processed")
)

// Classification failures. All of them look the same to the user.
var (
	ErrTransport = errors.New("classifier request failed")
	ErrParse     = errors.New("classifier reply could not be parsed")
	ErrTimeout   = errors.New("classifier request timed out")
	ErrCanceled  = errors.New("classifier request canceled")
)

// ErrorKind labels a failed turn for logs and metrics.
type ErrorKind string

// Error kinds.
const (
	KindTransport ErrorKind = "transport"
	KindParse     ErrorKind = "parse"
	KindTimeout   ErrorKind = "timeout"
	KindCanceled  ErrorKind = "canceled"
)

// TurnError describes why a submission failed.
type TurnError struct {
	Err  error
	Kind ErrorKind
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TurnError) Unwrap() error {
	return e.Err
}

// KindOf maps err onto an ErrorKind. Anything unrecognized counts as a
// transport failure.
func KindOf(err error) ErrorKind {
	var turnErr *TurnError
	if errors.As(err, &turnErr) {
		return turnErr.Kind
	}

	switch {
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrCanceled), errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindTransport
	}
}

// newTurnError wraps a classifier failure with its kind and sentinel.
func newTurnError(err error) *TurnError {
	kind := KindOf(err)
	var sentinel error
	switch kind {
	case KindParse:
		return &TurnError{Kind: kind, Err: err}
	case KindTimeout:
		sentinel = ErrTimeout
	case KindCanceled:
		sentinel = ErrCanceled
	default:
		sentinel = ErrTransport
	}
	return &TurnError{Kind: kind, Err: fmt.Errorf("%w: %w", sentinel, err)}
}
