// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is the package logger. SetupLogging replaces it.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// stdout receives Print output.
var stdout io.Writer = os.Stdout

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting. Nil means on.
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity and timestamps.
// Verbose always reports timestamps.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      time.TimeOnly,
	})
}

// Logger returns the configured logger, for injection into components.
func Logger() *log.Logger {
	return logger
}

// SetStdout redirects Print output and returns a function restoring it.
func SetStdout(w io.Writer) (restore func()) {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

// Stdout returns the writer Print output goes to.
func Stdout() io.Writer {
	return stdout
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
