// Package errors provides structured error types for the wasm-decode module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/WIT type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Offset(42).
//		Detail("index %d out of bounds (length %d)", 10, 5).
//		Build()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
