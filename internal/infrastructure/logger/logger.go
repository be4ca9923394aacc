// Package logger provides the leveled stdout logger used across the service.
package logger

import (
	"log"
	"os"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// StdLogger writes level-prefixed lines through a single stdlib logger.
type StdLogger struct {
	out *log.Logger
}

var _ usecasecontract.IAppLogger = (*StdLogger)(nil)

// NewStdLogger creates a logger writing to stderr with date and time.
func NewStdLogger() usecasecontract.IAppLogger {
	return &StdLogger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *StdLogger) Debugf(format string, args ...interface{}) {
	l.out.Printf("[DEBUG] "+format, args...)
}

func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.out.Printf("[INFO] "+format, args...)
}

func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.out.Printf("[WARN] "+format, args...)
}

func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.out.Printf("[ERROR] "+format, args...)
}

// Fatalf logs the message and exits the process.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	l.out.Fatalf("[FATAL] "+format, args...)
}
