// Package util provides utility functions for image tree mirroring.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")
	ErrPathsOverlap      = errors.New("source and destination directories overlap")

	// Lock errors
	ErrDestinationLocked = errors.New("destination is locked by another run")
)
