package timeutil

import "errors"

// Package-specific errors
var (
	// ErrInvalidDuration is returned by ParseDuration for strings it cannot
	// interpret.
	ErrInvalidDuration = errors.New("invalid duration format")
)
