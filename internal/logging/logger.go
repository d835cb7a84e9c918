// Package logging configures the global zerolog logger. Logs go to a
// rotated file in the XDG data dir, never to the terminal: hop's stdout is
// consumed by a shell wrapper for cd, so it must stay clean.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hopcli/hop/internal/storage"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Init points the global logger at the rotated log file and applies level.
func Init(fs afero.Fs, level zerolog.Level) error {
	logFile, err := storage.New(fs).LogPath()
	if err != nil {
		return err
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}

	log.Logger = zerolog.New(lj).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	return nil
}

// InitTest discards all log output, for tests.
func InitTest() {
	log.Logger = zerolog.New(io.Discard)
}
