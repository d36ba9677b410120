package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every error returned by the store matches exactly one of
// them with errors.Is.
var (
	ErrValidation  = errors.New("validation error")
	ErrReference   = errors.New("reference error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence error")
)

// Error carries the failing operation, its kind and a human-readable message.
type Error struct {
	Op   string
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	return e != nil && e.Kind == target
}

// Message is the client-facing text without the operation prefix.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.Error()
}

func NewError(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(op, entity string, key any) *Error {
	return &Error{Op: op, Kind: ErrNotFound, Msg: fmt.Sprintf("%s %v not found", entity, key)}
}

func PersistenceFailure(op string, err error) *Error {
	return &Error{Op: op, Kind: ErrPersistence, Msg: "storage unavailable", Err: err}
}

// KindOf reports the sentinel kind of err, or nil for foreign errors.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrReference, ErrNotFound, ErrConflict, ErrPersistence} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
