// Package logger provides a leveled printf-style logger writing to stdout and
// optionally to a file.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level уровень логирования
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel parses a level name, defaulting to INFO
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger логгер с уровнями
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	file  *os.File
	level Level
	now   func() time.Time
}

// New создает логгер. Если filePath не пустой, пишет ещё и в файл.
func New(filePath string, level string) (*Logger, error) {
	var (
		w    io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		file = f
		w = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		out:   log.New(w, "", 0),
		file:  file,
		level: ParseLevel(level),
		now:   time.Now,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (для тестов)
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{
		out:   log.New(w, "", 0),
		level: ParseLevel(level),
		now:   time.Now,
	}
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	message := fmt.Sprintf(format, args...)
	timestamp := l.now().UTC().Format("2006-01-02T15:04:05.000Z")

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("[%s] %s: %s", timestamp, level.String(), message)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(DebugLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(InfoLevel, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(WarnLevel, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(ErrorLevel, format, args...)
}

// Fatal logs an error message and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.write(ErrorLevel, format, args...)
	_ = l.Close()
	os.Exit(1)
}
