// Package errors provides error handling for tauviz.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to errors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check the input file path")
//
//	// Check errors
//	if errors.Is(err, errors.ErrMissingKey) {
//	    // handle wrong input file
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across tauviz.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMissingKey indicates a required key is absent from an input document,
	// almost always because the wrong JSON file was supplied
	ErrMissingKey = New("required key missing")

	// ErrInvalidArgument indicates a malformed command-line argument
	ErrInvalidArgument = New("invalid argument")

	// ErrEmptySeries indicates a data series has no plottable values
	ErrEmptySeries = New("no plottable values in series")
)

// WrongFileHint is attached to missing-key errors so the likely cause is
// visible to the user without reading a stack trace.
const WrongFileHint = "are you using the correct input JSON file?"

// NewMissingKeyError creates a missing-key error naming the absent key,
// with a hint that the wrong file was probably supplied
func NewMissingKeyError(key string) error {
	return WithHint(Wrapf(ErrMissingKey, "%q not found", key), WrongFileHint)
}

// NewInvalidArgumentError creates an invalid-argument error with a formatted message
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidArgument, Newf(format, args...).Error())
}

// IsMissingKeyError checks if an error is or wraps ErrMissingKey
func IsMissingKeyError(err error) bool {
	return err != nil && Is(err, ErrMissingKey)
}

// IsInvalidArgumentError checks if an error is or wraps ErrInvalidArgument
func IsInvalidArgumentError(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}
