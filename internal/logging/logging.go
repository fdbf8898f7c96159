// Package logging builds the operational logger. Check progress is plain
// text written by the runner; this logger carries everything else.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	DefaultLevel  = "info"
	DefaultFormat = FormatText

	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

type Config struct {
	Level  string
	Format Format
	File   string // when set, logs go to a rotated file instead of w
}

// New returns a logger for cfg writing to w (normally stderr) and a close
// func that releases the log file, if any.
func New(cfg Config, w io.Writer) (*logrus.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)

	closeFn := func() error { return nil }
	out := w
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		out = lj
		closeFn = lj.Close
	}
	logger.SetOutput(out)

	switch cfg.Format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: !IsTerminal(out),
		})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}

	return logger, closeFn, nil
}

// ParseLevel accepts debug, info, warn and error. Empty means info.
func ParseLevel(s string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}
	return logrus.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

// Component tags every entry with the emitting part of the program.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}

// IsTerminal reports whether w is an interactive console.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
