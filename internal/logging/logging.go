package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is the logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled lines to a size-rotated file, optionally
// mirrored to stderr in debug runs.
type Logger struct {
	level  Level
	logger *log.Logger
}

// New creates a Logger rotating at dir/cachemgr.log. With mirror set,
// output also goes to stderr (the --debug flag).
func New(dir string, level Level, mirror bool) *Logger {
	var w io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(dir, "cachemgr.log"),
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	if mirror {
		w = io.MultiWriter(w, os.Stderr)
	}
	return &Logger{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return &Logger{level: LevelError, logger: log.New(io.Discard, "", 0)}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.level <= LevelDebug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.level <= LevelInfo {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	if l.level <= LevelWarn {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.level <= LevelError {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}
