// Package netlist: sentinel errors and the positioned ParseError.

package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrFile indicates the input file could not be opened or read.
	ErrFile = errors.New("netlist: cannot open file")

	// ErrParse indicates a lexical or syntactic error in a .dlib or
	// .bench file.
	ErrParse = errors.New("netlist: parse error")

	// ErrUnknownGate indicates a .bench net references a gate type absent
	// from the delay library.
	ErrUnknownGate = errors.New("netlist: unknown gate")

	// ErrDuplicateSignal indicates a signal was declared twice.
	ErrDuplicateSignal = errors.New("netlist: signal multiply defined")
)

// ParseError pinpoints a failure to a file and line, wrapping one of the
// package sentinels so callers can still match with errors.Is.
type ParseError struct {
	File string
	Line int
	Msg  string
	Kind error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Unwrap exposes the sentinel kind.
func (e *ParseError) Unwrap() error { return e.Kind }

// parseErr builds a positioned ErrParse.
func parseErr(file string, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File: file,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
		Kind: ErrParse,
	}
}
