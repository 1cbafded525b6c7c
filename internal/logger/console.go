// Package logger provides leveled loggers for ccwrapped runs.
//
// ConsoleLogger writes timestamped, optionally colored lines to a terminal or
// any io.Writer. FileLogger keeps one log file per run under a log directory.
// MultiLogger fans a message out to several loggers. All implementations are
// safe for concurrent use and satisfy the small logging interface the
// extraction pipeline depends on.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is implemented by every logger in this package.
type Logger interface {
	LogTrace(format string, args ...interface{})
	LogDebug(format string, args ...interface{})
	LogInfo(format string, args ...interface{})
	LogWarn(format string, args ...interface{})
	LogError(format string, args ...interface{})
	LogProgress(label string, done, total int)
}

// levelColors maps upper-case level names to their terminal color.
var levelColors = map[string]*color.Color{
	"TRACE": color.New(color.FgHiBlack),
	"DEBUG": color.New(color.FgCyan),
	"INFO":  color.New(color.FgBlue),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed),
}

// ConsoleLogger logs to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output and the live progress bar are enabled only for terminals.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	bar         *ProgressBar
	barLabel    string
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is os.Stdout or os.Stderr attached to a TTY.
// NO_COLOR (honored by fatih/color) disables it as well.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || (f != os.Stdout && f != os.Stderr) {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog reports whether messageLevel passes the configured level.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// Level returns the normalized minimum level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(format string, args ...interface{}) {
	cl.logWithLevel("TRACE", format, args...)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(format string, args ...interface{}) {
	cl.logWithLevel("DEBUG", format, args...)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(format string, args ...interface{}) {
	cl.logWithLevel("INFO", format, args...)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(format string, args ...interface{}) {
	cl.logWithLevel("WARN", format, args...)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(format string, args ...interface{}) {
	cl.logWithLevel("ERROR", format, args...)
}

func (cl *ConsoleLogger) logWithLevel(level, format string, args ...interface{}) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	cl.clearBarLocked()
	message := fmt.Sprintf(format, args...)
	ts := timestamp()
	if cl.colorOutput {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, levelColors[level].Sprint(level), message)
	} else {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, level, message)
	}
	cl.redrawBarLocked()
}

// LogProgress reports done of total units for label.
// On a terminal it redraws a progress bar in place at info level.
// Elsewhere only completion is logged, at debug level.
func (cl *ConsoleLogger) LogProgress(label string, done, total int) {
	if cl.writer == nil || total <= 0 {
		return
	}

	if !cl.colorOutput {
		if done >= total {
			cl.LogDebug("%s: %d/%d", label, done, total)
		}
		return
	}
	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if cl.bar == nil || cl.barLabel != label || cl.bar.Total() != total {
		cl.bar = NewProgressBar(total, 30, true)
		cl.bar.SetPrefix(label + " ")
		cl.barLabel = label
	}
	cl.bar.Update(done)
	fmt.Fprintf(cl.writer, "\r%s", cl.bar.Render())

	if done >= total {
		fmt.Fprint(cl.writer, "\n")
		cl.bar = nil
		cl.barLabel = ""
	}
}

// clearBarLocked erases an in-flight progress line before a log line is written.
func (cl *ConsoleLogger) clearBarLocked() {
	if cl.bar != nil {
		fmt.Fprint(cl.writer, "\r\033[K")
	}
}

func (cl *ConsoleLogger) redrawBarLocked() {
	if cl.bar != nil {
		fmt.Fprintf(cl.writer, "\r%s", cl.bar.Render())
	}
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}
