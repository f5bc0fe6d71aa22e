package rtasm

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the type of error
type ErrorCategory int

const (
	CategoryOperand ErrorCategory = iota
	CategoryImmediate
	CategoryPrecondition
	CategoryUnsupported
	CategoryLabel
	CategorySyntax
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryOperand:
		return "operand"
	case CategoryImmediate:
		return "immediate"
	case CategoryPrecondition:
		return "precondition"
	case CategoryUnsupported:
		return "unsupported"
	case CategoryLabel:
		return "label"
	case CategorySyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

var (
	ErrImmediateRange    = errors.New("immediate out of range for its type")
	ErrDisplacementRange = errors.New("displacement out of range for its type")
	ErrPrecondition      = errors.New("operand violates a documented precondition")
	ErrUnsupported       = errors.New("not supported by the target profile")
	ErrUnknownLabel      = errors.New("unknown label")
	ErrBranchRange       = errors.New("branch target out of range")
	ErrSyntax            = errors.New("syntax error")
	ErrNoAssembly        = errors.New("no assembly given")
)

// EncodeError is reported by Out.Err and Out.Emit.
type EncodeError struct {
	Category ErrorCategory
	Op       string // mnemonic being encoded, e.g. "divwx_rr"
	Line     int    // source line for text input, 0 otherwise
	Msg      string
	Err      error
}

func (e *EncodeError) Error() string {
	var prefix string
	if e.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s%s error in %s: %s", prefix, e.Category, e.Op, e.Msg)
	}
	return fmt.Sprintf("%s%s error: %s", prefix, e.Category, e.Msg)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newError(cat ErrorCategory, op string, err error, format string, args ...interface{}) *EncodeError {
	return &EncodeError{
		Category: cat,
		Op:       op,
		Msg:      fmt.Sprintf(format, args...),
		Err:      err,
	}
}
