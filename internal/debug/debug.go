package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "TUIKIT_DEBUG"

var (
	mu      sync.Mutex
	logger  *slog.Logger
	logFile *os.File
	envOnce sync.Once
)

// Init opens path for appending and routes debug logging to it.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, level)
}

func initLocked(path, level string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f, level)
	return nil
}

// Configure routes debug logging to w. A nil writer disables logging.
func Configure(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if w == nil {
		logger = nil
		return
	}
	logger = newLogger(w, level)
}

// Close closes the debug log file, if one is open, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Enabled reports whether debug messages are currently written anywhere.
func Enabled() bool {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes a formatted message at debug level.
func Log(format string, args ...any) {
	write(slog.LevelDebug, format, args...)
}

// Warn writes a formatted message at warn level.
func Warn(format string, args ...any) {
	write(slog.LevelWarn, format, args...)
}

// Error writes a formatted message at error level.
func Error(format string, args ...any) {
	write(slog.LevelError, format, args...)
}

func write(level slog.Level, format string, args ...any) {
	loadEnv()

	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// loadEnv enables file logging from TUIKIT_DEBUG the first time any
// logging function runs.
func loadEnv() {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if logger != nil {
			return
		}
		if err := initLocked(path, "DEBUG"); err != nil {
			fmt.Fprintf(os.Stderr, "debug: %v\n", err)
		}
	})
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel converts a level name to slog.Level.
// Unrecognized names map to debug so nothing is hidden by a typo.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
