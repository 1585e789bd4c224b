// Package errors provides unified error handling for demokit.
// It implements a structured error type with machine-readable codes
// covering unit registration, unit lookup, recovered panics, and
// configuration problems.
package errors
