// Package logging builds the slog logger used for diagnostics. User-facing
// progress is printed by the commands; the logger carries the context of
// failures and, with --verbose, every filesystem step.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gp-oxid/oxskel/internal/skelerr"
)

// Format selects the handler output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", skelerr.InvalidOption("log format %q is not one of %s, %s", s, FormatText, FormatJSON)
	}
}

// Options configures New.
type Options struct {
	Format Format
	Level  slog.Level
	Writer io.Writer
}

// Option mutates Options.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

func withLevel(l slog.Level) Option {
	return func(o *Options) { o.Level = l }
}

// WithVerbose lowers the level to debug when verbose is set.
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		if verbose {
			withLevel(slog.LevelDebug)(o)
		}
	}
}

// WithWriter sets the destination.
func WithWriter(w io.Writer) Option {
	return func(o *Options) { o.Writer = w }
}

// New returns a logger writing to stderr at warn level unless overridden.
func New(opts ...Option) *slog.Logger {
	options := Options{
		Format: FormatText,
		Level:  slog.LevelWarn,
		Writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: options.Level}
	var h slog.Handler
	if options.Format == FormatJSON {
		h = slog.NewJSONHandler(options.Writer, hopts)
	} else {
		h = slog.NewTextHandler(options.Writer, hopts)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
