package common

import (
	"errors"
	"fmt"
)

// Error kinds shared by the distribution engine, the window catalogue and
// the signal generators. Every error returned by this module wraps exactly
// one of them, so callers can branch with errors.Is.
var (
	// ErrInvalidSignal reports an empty signal or mismatched signal pair.
	ErrInvalidSignal = errors.New("tftb: invalid signal")

	// ErrInvalidParameter reports a numeric parameter outside its domain.
	ErrInvalidParameter = errors.New("tftb: invalid parameter")

	// ErrInvalidWindow reports a lag or time window that cannot be used.
	ErrInvalidWindow = errors.New("tftb: invalid window")
)

// ParameterError identifies which parameter violated which constraint.
type ParameterError struct {
	Kind   error  // one of the sentinels above
	Param  string // parameter name as seen by the caller
	Value  any    // offending value
	Reason string // the constraint, e.g. "must be > 0"
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s=%v %s", e.Kind, e.Param, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return e.Kind
}

// SignalError builds an ErrInvalidSignal failure.
func SignalError(param string, value any, reason string) error {
	return &ParameterError{Kind: ErrInvalidSignal, Param: param, Value: value, Reason: reason}
}

// ParamError builds an ErrInvalidParameter failure.
func ParamError(param string, value any, reason string) error {
	return &ParameterError{Kind: ErrInvalidParameter, Param: param, Value: value, Reason: reason}
}

// WindowError builds an ErrInvalidWindow failure.
func WindowError(param string, value any, reason string) error {
	return &ParameterError{Kind: ErrInvalidWindow, Param: param, Value: value, Reason: reason}
}
