package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Logs always go to stderr so stdout carries
// only command output.
func New(format, level string) (zerolog.Logger, error) {
	return newWithWriter(os.Stderr, format, level)
}

func newWithWriter(out io.Writer, format, level string) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	case "json":
		writer = out
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q (want console or json)", format)
	}

	logger := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("service", "mangler").
		Logger()

	return logger, nil
}
