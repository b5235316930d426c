package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	DefaultDir = "logs"
	FileName   = "vmath-sandbox.log"
	TimeFormat = "15:04:05.000"
	filePerm   = 0o644
	dirPerm    = 0o755
)

var log = zerolog.Nop()

// Log returns the process-wide logger, a no-op until Setup or SetConsoleWriter
func Log() *zerolog.Logger {
	return &log
}

// Setup enables file logging under dir when debug is set, otherwise output is
// discarded. The returned closer is nil when logging is disabled.
func Setup(debug bool, dir string) (io.Closer, error) {
	if !debug {
		log = zerolog.Nop()
		return nil, nil
	}

	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	SetWriter(f, true)
	log.Info().Str("path", path).Msg("logging started")
	return f, nil
}

// SetConsoleWriter logs human-readable lines to stderr
func SetConsoleWriter() {
	SetWriter(os.Stderr, false)
}

// SetWriter logs console-formatted lines to w; noColor for files
func SetWriter(w io.Writer, noColor bool) {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: TimeFormat,
	}).With().Timestamp().Logger()
}
