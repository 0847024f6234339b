package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger handles dual-output logging (console + file)
type Logger struct {
	console *logrus.Logger
	file    *logrus.Logger
	logFile *os.File
	verbose bool
}

var globalLogger *Logger

// Init initializes the global logger
// consoleOutput: where to write human-readable logs (typically os.Stdout)
// logFilePath: path to the log file, which receives every level with timestamps
// verbose: if true, show DEBUG logs on console as well
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	console := logrus.New()
	console.SetOutput(consoleOutput)
	console.SetFormatter(&consoleFormatter{})
	console.SetLevel(logrus.InfoLevel)
	if verbose {
		console.SetLevel(logrus.DebugLevel)
	}

	file := logrus.New()
	file.SetOutput(logFile)
	file.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	file.SetLevel(logrus.DebugLevel)

	globalLogger = &Logger{
		console: console,
		file:    file,
		logFile: logFile,
		verbose: verbose,
	}

	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, nil, format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, nil, format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, nil, format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, nil, format, args...)
}

// Fields is a set of structured key/values attached to a log line
type Fields = logrus.Fields

// Entry logs a message with structured fields
type Entry struct {
	fields Fields
}

// WithFields returns an Entry that attaches fields to the next message.
// Fields end up in the log file; the console shows the bare message.
func WithFields(fields Fields) *Entry {
	return &Entry{fields: fields}
}

// Debug logs a debug message with the entry fields
func (e *Entry) Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, e.fields, format, args...)
}

// Info logs an info message with the entry fields
func (e *Entry) Info(format string, args ...interface{}) {
	if globalLogger == nil {
		Info(format, args...)
		return
	}
	globalLogger.log(LevelInfo, e.fields, format, args...)
}

// Warn logs a warning with the entry fields
func (e *Entry) Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		Warn(format, args...)
		return
	}
	globalLogger.log(LevelWarn, e.fields, format, args...)
}

// log writes to the file logger unconditionally and to the console by level
func (l *Logger) log(level Level, fields Fields, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.file.WithFields(fields).Log(level.logrus(), message)
	l.console.Log(level.logrus(), message)
}

// InfoClean logs an info message without any prefix (console only)
// Useful for progress updates that shouldn't go to log file
func InfoClean(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	fmt.Fprintf(globalLogger.console.Out, format+"\n", args...)
}

// LogRecordError logs a rejected upstream record (file only, not console)
// This keeps the console clean while preserving the details in the log file
func LogRecordError(index int, err error, context string) {
	if globalLogger == nil {
		return
	}

	globalLogger.file.WithFields(logrus.Fields{
		"record":  index,
		"context": context,
	}).WithError(err).Error("[RECORD_ERROR]")

	Debug("Record %d rejected: %v", index, err)
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}

// consoleFormatter renders clean console lines: bare INFO, tagged DEBUG, marked WARN/ERROR
type consoleFormatter struct{}

func (f *consoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var line string
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		line = "[DEBUG] " + entry.Message
	case logrus.WarnLevel:
		line = "⚠️  " + entry.Message
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		line = "❌ " + entry.Message
	default:
		line = entry.Message
	}
	return []byte(line + "\n"), nil
}
