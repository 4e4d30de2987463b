package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Logs go to stderr so command output on
// stdout stays clean.
func New(level string, development bool) zerolog.Logger {
	return newWithWriter(os.Stderr, level, development)
}

func newWithWriter(w io.Writer, level string, development bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	out := w
	if development {
		out = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(out).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return logger.Level(lvl)
}
