package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// DefaultLoggerFlag is the flag set used by the default logger.
const DefaultLoggerFlag = log.Ldate | log.Ltime

var (
	defaultLogger *Logger
	defaultLock   sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, "", DefaultLoggerFlag, LogLevelDebug)
}

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (level LogLevel) String() string {
	switch level {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	switch level {
	case "error":
		return LogLevelError, nil
	case "warn":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	case "trace":
		return LogLevelTrace, nil
	default:
		return LogLevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// SetDefaultLogger replaces the logger used by the package level functions.
func SetDefaultLogger(logger *Logger) {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	defaultLogger = logger
}

func getDefaultLogger() *Logger {
	defaultLock.RLock()
	defer defaultLock.RUnlock()
	return defaultLogger
}

func SetLevel(level LogLevel) {
	getDefaultLogger().SetLevel(level)
}

type Logger struct {
	logger *log.Logger
	level  LogLevel
}

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level <= l.level {
		logEntry := map[string]interface{}{
			"level": level.String(),
			"msg":   fmt.Sprintf(format, args...),
		}
		msgBytes, _ := json.Marshal(logEntry)
		l.logger.Print(string(msgBytes))
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

func Info(format string, args ...interface{}) {
	getDefaultLogger().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	getDefaultLogger().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	getDefaultLogger().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	getDefaultLogger().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	getDefaultLogger().Trace(format, args...)
}
