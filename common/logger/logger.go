package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates the run logger, appending leveled entries to the log file at
// path. Every entry carries the run id so interleaved runs in one file stay
// separable. The returned closer owns the underlying file handle.
func New(path string, runID string) (zerolog.Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	log := zerolog.New(file).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()

	return log, file, nil
}
