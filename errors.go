package optix

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOption       = errors.New("no option matched the argument")
	ErrMissingArgument     = errors.New("option requires an argument")
	ErrIllegalDeactivation = errors.New("option does not support deactivation")
	ErrInvalidValue        = errors.New("invalid value")
	ErrOptionRequired      = errors.New("required option was never matched")
	ErrCommandRequired     = errors.New("required command was never matched")
	ErrCallbackFailed      = errors.New("option callback failed")
	ErrInvalidOption       = errors.New("invalid option definition")
	ErrInvalidIndex        = errors.New("invalid position constraint")
	ErrUnknownSubParser    = errors.New("no sub-parser registered under that name")
)

// ParseError is the error type produced during a parse run. It carries the
// uid of the option it was raised against (InvalidUid when none), wraps one
// of the sentinel errors above and may chain a more specific cause recorded
// earlier in the run.
type ParseError struct {
	uid      Uid
	sentinel error
	detail   string
	failure  bool
	cause    error
}

func newError(uid Uid, sentinel error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		uid:      uid,
		sentinel: sentinel,
		detail:   fmt.Sprintf(format, args...),
	}
}

// newFailure builds a recoverable ParseError: the current match attempt is
// abandoned but the parse goes on, and the failure is kept for chaining.
func newFailure(uid Uid, sentinel error, format string, args ...interface{}) *ParseError {
	err := newError(uid, sentinel, format, args...)
	err.failure = true
	return err
}

// Uid returns the uid of the option the error was raised against, or
// InvalidUid when the error is not tied to a particular option.
func (e *ParseError) Uid() Uid {
	return e.uid
}

// Failure reports whether the error is recoverable. Recoverable errors only
// abandon the current match attempt; the rest abort the parse.
func (e *ParseError) Failure() bool {
	return e.failure
}

func (e *ParseError) Error() string {
	if e.detail == "" {
		return e.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", e.sentinel.Error(), e.detail)
}

func (e *ParseError) Is(target error) bool {
	return target == e.sentinel
}

// Unwrap exposes the causal chain: the most specific earlier failure this
// error was chained over, if any, otherwise the sentinel.
func (e *ParseError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.sentinel
}

// Cause returns the chained cause, or nil.
func (e *ParseError) Cause() error {
	return e.cause
}

// asParseError normalizes an error raised inside the engine. Errors coming
// from user callbacks or value parsers may be plain.
func asParseError(err error, uid Uid) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	wrapped := newError(uid, ErrInvalidValue, "%s", err.Error())
	wrapped.cause = err
	return wrapped
}
