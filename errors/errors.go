// Package errors provides error handling for tsgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details surfaced to CLI users
//
// Usage:
//
//	// Wrap with context
//	if err := catalog.Load(path); err != nil {
//	    return errors.Wrapf(err, "failed to load catalog %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'tsgen generate' to refresh the output")
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
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
	Mark               = crdb.Mark
)

// Sentinel errors for tsgen. Use with errors.Is(); wrap them to add context.
var (
	// ErrInvalidConfig indicates malformed options, rejected before translation starts
	ErrInvalidConfig = New("invalid configuration")

	// ErrInvalidCatalog indicates the descriptor set handed to the engine is inconsistent
	ErrInvalidCatalog = New("invalid type catalog")

	// ErrUnmappableMember indicates a member that is neither a field nor a property
	// reached the member resolver. This is a front end / engine contract violation.
	ErrUnmappableMember = New("unmappable member kind")

	// ErrOutOfDate indicates generated files on disk differ from a fresh generation
	ErrOutOfDate = New("generated types are out of date")
)

// NewInvalidConfigError creates an ErrInvalidConfig error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}

// NewInvalidCatalogError creates an ErrInvalidCatalog error with a formatted message
func NewInvalidCatalogError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidCatalog)
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}
