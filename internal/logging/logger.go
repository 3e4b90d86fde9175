package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger writes leveled, component-tagged lines:
//
//	[2006-01-02 15:04:05.000] [store] [INFO] message
//
// Debugf is dropped unless the logger was built with Debug set. Loggers
// derived with With share the same output.
type Logger struct {
	sessionID string
	component string
	debug     bool
	logger    *log.Logger
	file      *os.File
	logPath   string
	closeOnce *sync.Once
}

// Options configures New.
type Options struct {
	// Dir is the directory for session log files. Empty logs to stderr.
	Dir string
	// Debug enables Debugf output.
	Debug bool
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// getSessionID returns or creates the session ID for this process.
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// New creates a logger for component. With opts.Dir set it appends to
// <dir>/<session-id>-wordbot.log.
//
// If the directory or file cannot be opened, New returns a logger writing
// to stderr along with the error, so callers can warn and carry on.
func New(component string, opts Options) (*Logger, error) {
	if opts.Dir == "" {
		return NewWriter(component, os.Stderr, opts.Debug), nil
	}

	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		err = fmt.Errorf("failed to create log directory: %w", err)
		return newFallbackLogger(component, opts.Debug, err), err
	}

	sessID := getSessionID()
	logPath := filepath.Join(opts.Dir, fmt.Sprintf("%s-wordbot.log", sessID))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return newFallbackLogger(component, opts.Debug, err), err
	}

	return &Logger{
		sessionID: sessID,
		component: component,
		debug:     opts.Debug,
		logger:    log.New(file, "", 0),
		file:      file,
		logPath:   logPath,
		closeOnce: new(sync.Once),
	}, nil
}

// NewWriter creates a logger for component that writes to w.
func NewWriter(component string, w io.Writer, debug bool) *Logger {
	return &Logger{
		sessionID: getSessionID(),
		component: component,
		debug:     debug,
		logger:    log.New(w, "", 0),
		closeOnce: new(sync.Once),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriter("discard", io.Discard, false)
}

func newFallbackLogger(component string, debug bool, err error) *Logger {
	l := NewWriter(component, os.Stderr, debug)
	l.Warnf("failed to initialize file logging: %v", err)
	l.Warnf("falling back to stderr logging")
	return l
}

// With returns a logger for another component sharing l's output.
func (l *Logger) With(component string) *Logger {
	c := *l
	c.component = component
	return &c
}

func (l *Logger) output(level, format string, v ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, v...)
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, message)
}

// Debugf logs a debug-level message when debug output is enabled.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.debug {
		return
	}
	l.output("DEBUG", format, v...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...any) { l.output("INFO", format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...any) { l.output("WARN", format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...any) { l.output("ERROR", format, v...) }

// DebugEnabled reports whether Debugf writes anything.
func (l *Logger) DebugEnabled() bool { return l.debug }

// SessionID returns the process-wide session ID.
func (l *Logger) SessionID() string { return l.sessionID }

// LogPath returns the log file path, or "" when logging to a writer.
func (l *Logger) LogPath() string { return l.logPath }

// Close closes the log file. Safe to call multiple times and on derived
// loggers.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
