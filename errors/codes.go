package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registration errors
const (
	// ErrCodeDuplicateUnit indicates a unit name is already registered.
	ErrCodeDuplicateUnit ErrorCode = "DUPLICATE_UNIT"
	// ErrCodeInvalidUnit indicates a unit definition is unusable
	// (empty name or nil entry procedure).
	ErrCodeInvalidUnit ErrorCode = "INVALID_UNIT"
)

// Execution errors
const (
	// ErrCodeUnitNotFound indicates a requested unit is not registered.
	ErrCodeUnitNotFound ErrorCode = "UNIT_NOT_FOUND"
	// ErrCodeUnitPanic indicates a unit's entry procedure panicked
	// and the panic was recovered at the run boundary.
	ErrCodeUnitPanic ErrorCode = "UNIT_PANIC"
	// ErrCodeRunCanceled indicates the run context was canceled
	// before a unit could execute.
	ErrCodeRunCanceled ErrorCode = "RUN_CANCELED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the loaded configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
