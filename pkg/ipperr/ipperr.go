// Package ipperr defines the interpreter's fatal error taxonomy: every
// failure anywhere in the pipeline carries one of these exit codes, and main
// is the single place that turns an *Error into os.Exit.
package ipperr

import "fmt"

// Code is one of the fixed exit codes of the IPPcode23 error taxonomy.
type Code int

const (
	OK                  Code = 0
	WrongArguments      Code = 10
	WrongInputFile      Code = 11
	WrongXMLFormat      Code = 31
	WrongXMLStructure   Code = 32
	Semantics           Code = 52
	WrongType           Code = 53
	NotExistingVariable Code = 54
	NotExistingFrame    Code = 55
	MissingValue        Code = 56
	WrongOperandValue   Code = 57
	InvalidString       Code = 58
)

// Error is a fatal, exit-coded diagnostic. There is no recovery path once
// one of these is raised; the caller that produced it is expected to abort
// the pipeline stage it is in.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an *Error with a formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As extracts an *Error from err, reporting ok=false for anything else.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// Name returns the taxonomy name for a Code (e.g. "wrongType").
func (c Code) Name() string {
	switch c {
	case OK:
		return "ok"
	case WrongArguments:
		return "wrongArguments"
	case WrongInputFile:
		return "wrongInputFile"
	case WrongXMLFormat:
		return "wrongXMLFormat"
	case WrongXMLStructure:
		return "wrongXMLStructure"
	case Semantics:
		return "semantics"
	case WrongType:
		return "wrongType"
	case NotExistingVariable:
		return "notExistingVariable"
	case NotExistingFrame:
		return "notExistingFrame"
	case MissingValue:
		return "missingValue"
	case WrongOperandValue:
		return "wrongOperandValue"
	case InvalidString:
		return "invalidString"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}
