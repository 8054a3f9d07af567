package pscalc

import (
	"fmt"
	"strconv"
	"strings"
)

// StackOverflowError is returned when an operation would grow the stack past
// MaxStackSize.
type StackOverflowError struct {
	Size int
}

func (err *StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow: %d values exceed the limit of %d", err.Size, MaxStackSize)
}

// StackUnderflowError is returned when an operation needs more values than
// the stack holds.
type StackUnderflowError struct {
	Need, Have int
}

func (err *StackUnderflowError) Error() string {
	if err.Need < 0 {
		return fmt.Sprintf("stack underflow: invalid count %d", err.Need)
	}
	return fmt.Sprintf("stack underflow: need %d values but got %d", err.Need, err.Have)
}

// UnknownOperatorError is returned for a name outside the operator table.
type UnknownOperatorError struct {
	Name  string
	Index int
}

func (err *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q at token %d", err.Name, err.Index)
}

// InvalidJumpTargetError is returned when a jump target is not an index in
// [0, Length].
type InvalidJumpTargetError struct {
	Target float64
	Length int
}

func (err *InvalidJumpTargetError) Error() string {
	return fmt.Sprintf("invalid jump target: %s (program length %d)", formatNumber(err.Target), err.Length)
}

// DomainError is returned when an operator has no finite result for its
// operands.
type DomainError struct {
	Op       string
	Operands []float64
}

func (err *DomainError) Error() string {
	xs := make([]string, len(err.Operands))
	for i, v := range err.Operands {
		xs[i] = formatNumber(v)
	}
	return fmt.Sprintf("cannot %s: %s", err.Op, strings.Join(xs, " "))
}

// StepLimitError is returned when a run dispatches more codes than the limit
// set by WithStepLimit.
type StepLimitError struct {
	Limit int
}

func (err *StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded: %d", err.Limit)
}

// ParseError represents a syntax error in calculator program text.
type ParseError struct {
	Offset  int    // the byte offset where the error was detected
	Token   string // the token that caused the error
	Message string
}

func (err *ParseError) Error() string {
	if err.Token == "" {
		return "unexpected EOF: " + err.Message
	}
	return fmt.Sprintf("unexpected token %q: %s", err.Token, err.Message)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
