package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// DuplicateUnit creates a new AppError for a unit name that is already registered.
func DuplicateUnit(name string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateUnit, Message: fmt.Sprintf("unit %q is already registered", name),
		Details: map[string]any{"unit": name},
	}
}

// InvalidUnit creates a new AppError for an unusable unit definition.
func InvalidUnit(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidUnit, Message: fmt.Sprintf("invalid unit: %s", reason),
	}
}

// UnitNotFound creates a new AppError for a unit that is not registered.
func UnitNotFound(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnitNotFound, Message: fmt.Sprintf("unit %q is not registered", name),
		Details: map[string]any{"unit": name},
	}
}

// UnitPanic creates a new AppError wrapping a panic value recovered
// from a unit's entry procedure.
func UnitPanic(unit string, value any) *AppError {
	err := &AppError{
		Code: ErrCodeUnitPanic, Message: fmt.Sprintf("unit %q panicked: %v", unit, value),
		Details: map[string]any{"unit": unit},
	}
	if cause, ok := value.(error); ok {
		err.Cause = cause
	}
	return err
}

// RunCanceled creates a new AppError for a unit skipped because the
// run context ended.
func RunCanceled(unit string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeRunCanceled, Message: fmt.Sprintf("run canceled before unit %q executed", unit),
		Details: map[string]any{"unit": unit}, Cause: cause,
	}
}

// InvalidConfig creates a new AppError for configuration that failed validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: reason,
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the error code of err, or empty string for non-AppErrors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
