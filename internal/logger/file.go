package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LatestLogName is the symlink kept pointing at the most recent run log.
const LatestLogName = "latest.log"

// FileLogger writes one log file per run into a log directory.
// Files are named run-YYYYMMDD-HHMMSS-<id>.log, where id is the first eight
// characters of the run's UUID, and latest.log points at the newest one.
type FileLogger struct {
	logDir   string
	runID    string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates logDir if needed, opens a fresh run log and
// repoints the latest.log symlink at it.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()
	started := time.Now()
	name := fmt.Sprintf("run-%s-%s.log", started.Format("20060102-150405"), runID[:8])
	runFile := filepath.Join(logDir, name)

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, LatestLogName)
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(name, symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runID:    runID,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== ccwrapped Run Log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", started.Format(time.RFC3339)))

	return fl, nil
}

// RunID returns the UUID identifying this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(format string, args ...interface{}) {
	fl.logWithLevel("TRACE", format, args...)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(format string, args ...interface{}) {
	fl.logWithLevel("DEBUG", format, args...)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(format string, args ...interface{}) {
	fl.logWithLevel("INFO", format, args...)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(format string, args ...interface{}) {
	fl.logWithLevel("WARN", format, args...)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(format string, args ...interface{}) {
	fl.logWithLevel("ERROR", format, args...)
}

// LogProgress records completed units; intermediate updates are dropped.
func (fl *FileLogger) LogProgress(label string, done, total int) {
	if total > 0 && done >= total {
		fl.LogDebug("%s: %d/%d", label, done, total)
	}
}

func (fl *FileLogger) logWithLevel(level, format string, args ...interface{}) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	message := fmt.Sprintf(format, args...)
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// Close flushes and closes the run log file. Closing twice is a no-op.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		fl.runLog.Sync()
	}
}
