// Package skelerr classifies scaffold failures into the kinds the CLI maps to
// exit codes: invalid options, filesystem errors and user aborts.
package skelerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	KindInvalidOption Kind = "InvalidOption"
	KindIO            Kind = "IOError"
	KindAborted       Kind = "Aborted"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess       = 0
	ExitIOFailure     = 1
	ExitInvalidOption = 2
	ExitUserAborted   = 3
)

// Error is a classified error. Name is the logical artifact or template name
// and Path the physical path involved, when known.
type Error struct {
	Kind Kind
	Name string
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Name != "" || e.Path != "" {
		msg = fmt.Sprintf("%s [%s] at [%s]", msg, e.Name, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidOption reports caller-correctable input.
func InvalidOption(format string, args ...any) error {
	return &Error{Kind: KindInvalidOption, Msg: fmt.Sprintf(format, args...)}
}

// IO reports a filesystem failure on the named artifact at path.
func IO(msg, name, path string, err error) error {
	return &Error{Kind: KindIO, Name: name, Path: path, Msg: msg, Err: err}
}

// Aborted reports a declined confirmation.
func Aborted(format string, args ...any) error {
	return &Error{Kind: KindAborted, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps err to the process exit code. Unclassified errors are
// treated as IO failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch KindOf(err) {
	case KindInvalidOption:
		return ExitInvalidOption
	case KindAborted:
		return ExitUserAborted
	default:
		return ExitIOFailure
	}
}
