package solver

import (
	"errors"
	"fmt"
)

// Error codes distinguish the two kinds of failure the solver can raise.
// Every other condition (nil pointers where a value is required, an
// enumeration invariant violated) is a programmer error and panics instead
// of returning one of these.
const (
	CodeInconsistent    = "INCONSISTENT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// SolverError is the error type returned by every exported operation in this
// package. Code identifies which of the two kinds (Inconsistent, Invalid
// argument) occurred; callers that need to branch on the kind should use
// errors.Is against ErrInconsistent or ErrInvalidArgument rather than
// inspecting Code directly.
type SolverError struct {
	Code    string
	Message string
	Err     error
}

func (e *SolverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}

func (e *SolverError) Is(target error) bool {
	t, ok := target.(*SolverError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrInconsistent and ErrInvalidArgument are sentinels for use with
// errors.Is. They carry no message of their own; construct wrapped
// instances with inconsistentf / invalidArgumentf instead.
var (
	ErrInconsistent    = &SolverError{Code: CodeInconsistent, Message: "inconsistent"}
	ErrInvalidArgument = &SolverError{Code: CodeInvalidArgument, Message: "invalid argument"}
)

// inconsistentf builds an Inconsistent error: the ruleset, possibly combined
// with the mine prevalence, admits no satisfying assignment.
func inconsistentf(format string, args ...interface{}) error {
	return &SolverError{Code: CodeInconsistent, Message: fmt.Sprintf(format, args...)}
}

// invalidArgumentf builds an Invalid-argument error: a programmer error such
// as a probability outside [0,1] or an attempt to tally a non-trivial rule.
// (A rule with a negative mine count is reported as Inconsistent by newRule.)
func invalidArgumentf(format string, args ...interface{}) error {
	return &SolverError{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgumentError builds an Invalid-argument error for callers outside
// this package (e.g. a wire/transport layer validating a request before it
// ever reaches Solve).
func InvalidArgumentError(format string, args ...interface{}) error {
	return invalidArgumentf(format, args...)
}

// IsInconsistent reports whether err is (or wraps) an Inconsistent error.
func IsInconsistent(err error) bool {
	return errors.Is(err, ErrInconsistent)
}

// IsInvalidArgument reports whether err is (or wraps) an Invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
