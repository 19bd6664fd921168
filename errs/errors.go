// Package errs defines the single error kind returned by commander together with
// the sentinel values identifying each failure condition.
//
// Every failure surfaced by the engine is an *Error. Use errors.Is against the
// sentinels below to tell conditions apart, and errors.As with *Error to catch
// all of them at once:
//
//	res, err := cmd.Parse(os.Args[1:])
//	var cmdErr *errs.Error
//	if errors.As(err, &cmdErr) {
//	    fmt.Fprintln(os.Stderr, cmdErr)
//	}
package errs

import (
	"fmt"
)

// Registration errors
var (
	ErrEmptyKey           = New("option key must not be empty")
	ErrNilOption          = New("option '%s' is nil")
	ErrDuplicateKey       = New("option key '%s' is registered twice")
	ErrDuplicateOption    = New("option '%s' is already registered as '%s'")
	ErrDuplicateShortName = New("invalid options, there are two options with short name '%c'")
	ErrDuplicateLongName  = New("invalid options, there are two options with long name '%s'")
	ErrUnsupportedType    = New("option '%s' has no coercion for values of type %s")
	ErrInvalidContainer   = New("options container must be a struct or a pointer to a struct, got %v")
	ErrEmptyCommandName   = New("command name must not be empty")
	ErrDuplicateCommand   = New("command '%s' is registered twice")
	ErrConfiguring        = New("failed to configure command '%s'")
)

// Parse errors
var (
	ErrUnknownOption        = New("unknown option '%s'")
	ErrMissingArgument      = New("option '%s' must have an argument")
	ErrDefinedTwice         = New("option '%s' is defined twice")
	ErrOptionAfterArguments = New("invalid option '%s' after variadic arguments")
	ErrCoercion             = New("invalid value '%s' for option '%s'")
	ErrMissingRequired      = New("missing required option '%s'")
	ErrCommandCallback      = New("command '%s' failed")
	ErrInvalidCommandLine   = New("invalid command line")
)

// Conversion errors used by the default coercion
var (
	ErrParseBool     = New("'%s' is not a boolean")
	ErrParseInt      = New("'%s' is not an integer")
	ErrParseUint     = New("'%s' is not an unsigned integer")
	ErrParseFloat    = New("'%s' is not a number")
	ErrParseComplex  = New("'%s' is not a complex number")
	ErrParseDuration = New("'%s' is not a duration")
	ErrParseTime     = New("'%s' is not a date or time")
	ErrParseOverflow = New("'%s' is out of range")
)

// Error is the error kind returned by every commander operation. Values derived
// through WithArgs or Wrap compare equal to the sentinel they were derived from
// under errors.Is.
type Error struct {
	sentinel *Error
	format   string
	args     []interface{}
	wrapped  error
}

// New creates a sentinel error. format is rendered with fmt.Sprintf when args
// are attached through WithArgs.
func New(format string) *Error {
	e := &Error{format: format}
	e.sentinel = e

	return e
}

// Error returns the formatted message followed by the wrapped cause, if any
func (e *Error) Error() string {
	msg := e.format
	if len(e.args) > 0 {
		msg = fmt.Sprintf(e.format, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   e.format,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		format:   e.format,
		args:     e.args,
		wrapped:  err,
	}
}

// Is reports whether target is the sentinel e was derived from
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.sentinel == t.sentinel
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}
