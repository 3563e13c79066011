// Package logging holds the process-wide structured logger.
//
// Library packages that load data log through GetLogger at DEBUG level; the
// command line configures level, format and destination once at startup with
// Init. Before Init a text logger at INFO on stderr is created lazily.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
	logFile  *os.File
	isInited bool
)

// Level represents logging verbosity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// ParseLevel accepts a level name in any case.
func ParseLevel(name string) (Level, error) {
	switch l := Level(strings.ToUpper(name)); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	case "":
		return LevelInfo, nil
	default:
		return "", fmt.Errorf("unknown log level %q", name)
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds logger configuration
type Config struct {
	Level      Level
	OutputPath string // Empty for stderr, or file path
	Format     string // "json" or "text"
}

// Init replaces the global logger. Calling it again closes the log file
// opened by the previous call.
func Init(config Config) error {
	var writer io.Writer = os.Stderr
	var file *os.File

	if config.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o750); err != nil {
			return err
		}
		f, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		writer = f
		file = f
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logFile != nil {
		logFile.Close()
	}
	logger = slog.New(newHandler(writer, config))
	logFile = file
	isInited = true
	return nil
}

// SetOutput routes the global logger to w, mainly for tests.
func SetOutput(w io.Writer, config Config) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = slog.New(newHandler(w, config))
	isInited = true
}

func newHandler(w io.Writer, config Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	if config.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// InitDefault initializes a text logger at INFO on stderr unless a logger
// is already set.
func InitDefault() {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if isInited {
		return
	}
	logger = slog.New(newHandler(os.Stderr, Config{Level: LevelInfo}))
	isInited = true
}

// Close closes the log file, if any, and resets the logger to the default.
func Close() error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	isInited = false
	return err
}

// GetLogger returns the current logger instance in a thread-safe manner.
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	if isInited {
		l := logger
		loggerMu.RUnlock()
		return l
	}
	loggerMu.RUnlock()

	InitDefault()

	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// WithComponent creates a logger with component context.
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithTable creates a logger with table context.
func WithTable(name string) *slog.Logger {
	return GetLogger().With("table", name)
}
