// Package logging provides categorized file-based debug logging for adwaste.
// Logs are written to .adwaste/logs/ with separate files per category.
// Logging is enabled only when ADWASTE_DEBUG=1; otherwise every call is a
// silent no-op so normal runs produce stdout output only.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryAds    Category = "ads"    // Google Ads API calls
	CategoryGemini Category = "gemini" // Gemini API calls
	CategoryDryRun Category = "dryrun" // Dry-run synthesis
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	enabled   bool
)

// Initialize sets up the logging directory. Should be called once at startup
// with the workspace path. A no-op unless ADWASTE_DEBUG=1.
func Initialize(workspace string) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	enabled = os.Getenv("ADWASTE_DEBUG") == "1"
	if !enabled {
		return nil
	}

	logsDir = filepath.Join(workspace, ".adwaste", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	Boot("=== adwaste debug logging enabled ===")
	Boot("Logs directory: %s", logsDir)
	return nil
}

// IsEnabled returns whether debug logging is active.
func IsEnabled() bool {
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger when debug logging is disabled.
func Get(category Category) *Logger {
	if !enabled || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation trivial.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// =============================================================================

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// BootError logs an error to the boot category.
func BootError(format string, args ...interface{}) {
	Get(CategoryBoot).Error(format, args...)
}

// Ads logs to the ads category.
func Ads(format string, args ...interface{}) {
	Get(CategoryAds).Info(format, args...)
}

// AdsDebug logs debug to the ads category.
func AdsDebug(format string, args ...interface{}) {
	Get(CategoryAds).Debug(format, args...)
}

// AdsError logs an error to the ads category.
func AdsError(format string, args ...interface{}) {
	Get(CategoryAds).Error(format, args...)
}

// Gemini logs to the gemini category.
func Gemini(format string, args ...interface{}) {
	Get(CategoryGemini).Info(format, args...)
}

// GeminiDebug logs debug to the gemini category.
func GeminiDebug(format string, args ...interface{}) {
	Get(CategoryGemini).Debug(format, args...)
}

// GeminiError logs an error to the gemini category.
func GeminiError(format string, args ...interface{}) {
	Get(CategoryGemini).Error(format, args...)
}

// DryRun logs to the dryrun category.
func DryRun(format string, args ...interface{}) {
	Get(CategoryDryRun).Info(format, args...)
}

// DryRunDebug logs debug to the dryrun category.
func DryRunDebug(format string, args ...interface{}) {
	Get(CategoryDryRun).Debug(format, args...)
}
