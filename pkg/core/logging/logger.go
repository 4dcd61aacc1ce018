// ============================================================================
// tms - Turing Machine Simulator
// ============================================================================
//
// Package:     logging
// Description: Structured key/value logging for the tms CLI
// Author:      Mike Stoffels
// Created:     2026-08-27
// License:     MIT
// ============================================================================

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the output encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Config holds logger configuration.
type Config struct {
	Name   string
	Level  Level
	Format Format
	Output io.Writer
}

// Logger writes structured log entries with key/value fields.
type Logger struct {
	name   string
	level  Level
	format Format
	out    io.Writer
	mu     sync.Mutex
}

// New creates a text logger writing to stderr at info level.
func New(name string) *Logger {
	return NewWithConfig(Config{Name: name, Level: LevelInfo})
}

// NewWithConfig creates a logger from an explicit configuration.
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		name:   cfg.Name,
		level:  cfg.Level,
		format: cfg.Format,
		out:    out,
	}
}

// WithLevel returns a copy of the logger with a different minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{name: l.name, level: level, format: l.format, out: l.out}
}

// Debug logs a debug message with key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message with key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message with key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message with key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *Logger) log(level Level, msg string, keysAndValues ...any) {
	if level < l.level {
		return
	}
	fields := toFields(keysAndValues...)
	now := time.Now().Format(time.RFC3339)

	var line string
	if l.format == FormatJSON {
		entry := map[string]any{
			"timestamp": now,
			"level":     level.String(),
			"logger":    l.name,
			"message":   msg,
		}
		for k, v := range fields {
			entry[k] = v
		}
		encoded, err := json.Marshal(entry)
		if err != nil {
			return
		}
		line = string(encoded)
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %-5s %s: %s", now, level.String(), l.name, msg)
		for _, k := range sortedKeys(fields) {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
		line = b.String()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

// toFields converts key/value pairs to a field map; non-string keys and a
// trailing unpaired value are dropped.
func toFields(keysAndValues ...any) map[string]any {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(map[string]any)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
