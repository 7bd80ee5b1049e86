package common

import (
	"errors"
)

// Common error constants
var (
	// ErrTransport is returned when a page fetch or file download fails
	ErrTransport = errors.New("transport failure")

	// ErrStructuralParse is returned when an expected markup element is missing or malformed
	ErrStructuralParse = errors.New("structural parse failure")

	// ErrFilesystem is returned when a directory or file cannot be created
	ErrFilesystem = errors.New("filesystem failure")

	// ErrOutputWrite is returned when the final dataset cannot be written
	ErrOutputWrite = errors.New("output write failure")

	// ErrInvalidConfig is returned when an invalid configuration is provided
	ErrInvalidConfig = errors.New("invalid configuration")
)
