// Package logger builds the zerolog logger shared by the CLI and the store.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogLevel is used when the configured level is empty or unparsable.
const DefaultLogLevel = "info"

// Config holds logger construction options.
type Config struct {
	output        io.Writer
	level         zerolog.Level
	consoleWriter bool
}

// Option configures a logger.
type Option func(*Config)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(c *Config) { c.output = w }
}

// WithLevel sets the minimum level from its string name. Unknown names fall
// back to the default level.
func WithLevel(level string) Option {
	return func(c *Config) {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil || parsed == zerolog.NoLevel {
			parsed, _ = zerolog.ParseLevel(DefaultLogLevel)
		}
		c.level = parsed
	}
}

// WithConsoleWriter enables human-readable console formatting instead of JSON.
func WithConsoleWriter(enabled bool) Option {
	return func(c *Config) { c.consoleWriter = enabled }
}

// New creates a logger with the given options.
func New(opts ...Option) *zerolog.Logger {
	config := &Config{
		output: os.Stderr,
		level:  zerolog.InfoLevel,
	}
	for _, opt := range opts {
		opt(config)
	}

	output := config.output
	if config.consoleWriter {
		output = zerolog.ConsoleWriter{Out: config.output}
	}

	log := zerolog.New(output).
		Level(config.level).
		With().
		Timestamp().
		Logger()
	return &log
}

// NewConsoleLogger creates the standard CLI logger: console formatting on
// stderr at the given level.
func NewConsoleLogger(level string) *zerolog.Logger {
	return New(
		WithLevel(level),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
