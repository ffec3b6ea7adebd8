package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"MemeBoard/internal/config"
)

// Logger provides leveled logging (debug/info/warning/error) to stdout/stderr
// and, when a log directory is configured, to one file per level.
type Logger struct {
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger
	debug      bool
	mu         sync.Mutex
}

// New creates a Logger from the application config.
func New(cfg *config.Config) *Logger {
	if cfg.LogDirectory == "" {
		return newLogger(os.Stdout, os.Stdout, os.Stderr, cfg.Debug)
	}

	if err := os.MkdirAll(cfg.LogDirectory, 0755); err != nil {
		log.Printf("Failed to create log directory %s: %v", cfg.LogDirectory, err)
		return newLogger(os.Stdout, os.Stdout, os.Stderr, cfg.Debug)
	}

	info := io.MultiWriter(os.Stdout, openLogFile(filepath.Join(cfg.LogDirectory, "info.log")))
	warning := io.MultiWriter(os.Stdout, openLogFile(filepath.Join(cfg.LogDirectory, "warning.log")))
	errs := io.MultiWriter(os.Stderr, openLogFile(filepath.Join(cfg.LogDirectory, "error.log")))
	return newLogger(info, warning, errs, cfg.Debug)
}

// NewWriter sends every level to w.
func NewWriter(w io.Writer, debug bool) *Logger {
	return newLogger(w, w, w, debug)
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, false)
}

func newLogger(info, warning, errs io.Writer, debug bool) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		debugLog:   log.New(info, "DEBUG   ", flags),
		infoLog:    log.New(info, "INFO    ", flags),
		warningLog: log.New(warning, "WARNING ", flags),
		errorLog:   log.New(errs, "ERROR   ", flags),
		debug:      debug,
	}
}

// openLogFile falls back to io.Discard so a bad path never stops the app.
func openLogFile(filename string) io.Writer {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Failed to open log file %s: %v", filename, err)
		return io.Discard
	}
	return file
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugLog.Output(2, fmt.Sprintf(format, v...))
}

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLog.Output(2, fmt.Sprintf(format, v...))
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLog.Output(2, fmt.Sprintf(format, v...))
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLog.Output(2, fmt.Sprintf(format, v...))
}
