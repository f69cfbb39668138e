package cache

import "errors"

// Package-specific errors
var (
	// ErrInvalidCapacity is returned by New when the requested capacity is
	// zero or negative.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
)
