package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output formats.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options controls logger construction.
type Options struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger writing to console (normally os.Stderr) and, when
// opts.File is set, to a rotating log file. The returned closer releases the
// file and must be called on shutdown.
func New(opts Options, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	out, err := consoleWriter(opts.Format, console)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		closer = lj
		out = zerolog.MultiLevelWriter(out, NewFilteringWriter(lj))
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// consoleWriter redacts before formatting, so the filter always sees the
// JSON event regardless of the output format.
func consoleWriter(format string, w io.Writer) (io.Writer, error) {
	switch format {
	case FormatJSON:
		return NewFilteringWriter(w), nil
	case FormatConsole:
		return NewFilteringWriter(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}), nil
	case FormatAuto, "":
		if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
			return NewFilteringWriter(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}), nil
		}
		return NewFilteringWriter(w), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
