package storage

import (
	"io"
)

// Storage defines the interface for artifact storage operations
type Storage interface {
	// EnsureDir creates a directory for downloaded artifacts. A directory
	// that already exists is not an error.
	EnsureDir(path string) error

	// WriteStream streams content from a reader into a file at path and
	// returns the number of bytes written. A partially written file is left
	// in place on error.
	WriteStream(path string, r io.Reader) (int64, error)
}
