package lisp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

// ErrorKind classifies the conditions which abort reading or evaluation.
type ErrorKind uint

// Possible ErrorKind values
const (
	ErrorKindInvalid ErrorKind = iota
	LexError
	ParseError
	UnboundVariable
	InvalidForm
	UnknownForm
	IOError
)

var errorKindStrings = []string{
	ErrorKindInvalid: "error",
	LexError:         "lex-error",
	ParseError:       "parse-error",
	UnboundVariable:  "unbound-variable",
	InvalidForm:      "invalid-form",
	UnknownForm:      "unknown-form",
	IOError:          "io-error",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrorKindInvalid]
	}
	return errorKindStrings[k]
}

// Sentinel errors for matching an error kind with errors.Is.
var (
	ErrLex             = &Error{Kind: LexError}
	ErrParse           = &Error{Kind: ParseError}
	ErrUnboundVariable = &Error{Kind: UnboundVariable}
	ErrInvalidForm     = &Error{Kind: InvalidForm}
	ErrUnknownForm     = &Error{Kind: UnknownForm}
	ErrIO              = &Error{Kind: IOError}
)

// Error is a failure raised while reading or evaluating lisp source.  Source
// and Stack are populated when the location of the failure is known.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Err    error
	Source *token.Location
	Stack  *CallStack
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// WrapError returns an Error of the given kind caused by err.
func WrapError(kind ErrorKind, err error, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
		Err:  err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var buf strings.Builder
	if e.Source != nil {
		buf.WriteString(e.Source.String())
		buf.WriteString(": ")
	}
	buf.WriteString(e.Kind.String())
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches e against the sentinel error of its kind (e.g. ErrInvalidForm).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the ErrorKind of err.  KindOf returns ErrorKindInvalid if err
// is not an *Error.
func KindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return ErrorKindInvalid
}
