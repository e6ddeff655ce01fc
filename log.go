package scrollview

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// logLevel controls the level of the package logger.
// Default is WarnLevel, which keeps engines quiet unless something is wrong.
// SetVerbose(true) drops it to DebugLevel.
var logLevel = zerolog.WarnLevel

// pkgLogger is the logger engines use when none is injected.
var pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.TraceLevel).
	With().Timestamp().Str("component", "scrollview").Logger()

// SetVerbose enables or disables debug logging for the package logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel = zerolog.DebugLevel
	} else {
		logLevel = zerolog.WarnLevel
	}
}

// defaultLogger returns the package logger at the current package level.
func defaultLogger() zerolog.Logger {
	return pkgLogger.Level(logLevel)
}

// LogOptions describes a logger built with NewLogger.
type LogOptions struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// NewLogger creates a zerolog logger from LogOptions. An empty level means
// warn; output defaults to stderr.
func NewLogger(opts LogOptions) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(err, "log level %q", opts.Level)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("component", "scrollview").Logger(), nil
}
