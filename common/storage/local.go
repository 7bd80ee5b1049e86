package storage

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LocalStorage stores artifacts on the local filesystem.
type LocalStorage struct {
	log zerolog.Logger
}

// NewLocalStorage creates a new local filesystem storage
func NewLocalStorage(log zerolog.Logger) *LocalStorage {
	return &LocalStorage{log: log}
}

// EnsureDir implements Storage.EnsureDir
func (s *LocalStorage) EnsureDir(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		s.log.Debug().Str("path", path).Msg("Directory already exists")
		return nil
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	s.log.Debug().Str("path", path).Msg("Directory created")
	return nil
}

// WriteStream implements Storage.WriteStream
func (s *LocalStorage) WriteStream(path string, r io.Reader) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return io.Copy(file, r)
}
