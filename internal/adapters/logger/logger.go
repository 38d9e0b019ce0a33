// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cask/internal/core/ports"
)

// messager describes an error that can report its own message and metadata
// without the chain. This matches the methods provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors will gracefully
// fall back to standard error handling.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	verbose  bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// It preserves the current JSON mode and verbosity settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuildLocked()
}

// SetJSON switches between JSON and pretty logging.
// When enabled, logs are output as JSON. When disabled, pretty-printed logs
// are used. The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuildLocked()
}

// SetVerbose lowers the minimum log level to debug when enabled.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = enable
	l.rebuildLocked()
}

func (l *Logger) rebuildLocked() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if l.verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: level})
	}
	l.logger = slog.New(handler)
}

// Debug logs a debug message. Suppressed unless verbose mode is enabled.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message, rendering wrapped causes as a chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// ErrorEntry is one level of a formatted error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain into printable entries by
// traversing it level by level. A standard error terminates the walk with
// its full message.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = appendEntry(entries, ErrorEntry{Message: current.Error()})
			break
		}
		entries = appendEntry(entries, ErrorEntry{
			Message:  m.Message(),
			Metadata: m.Metadata(),
		})
		current = errors.Unwrap(current)
	}

	return entries
}

// appendEntry merges levels that repeat the previous message; such levels
// decorate the same failure rather than extend the chain.
func appendEntry(entries []ErrorEntry, entry ErrorEntry) []ErrorEntry {
	if n := len(entries); n > 0 && entries[n-1].Message == entry.Message {
		entries[n-1].Metadata = mergedMetadata(entries[n-1].Metadata, entry.Metadata)
		return entries
	}
	return append(entries, entry)
}

// mergedMetadata unions two metadata maps. Keys from a win.
func mergedMetadata(a, b map[string]any) map[string]any {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	merged := make(map[string]any, len(a)+len(b))
	maps.Copy(merged, b)
	maps.Copy(merged, a)
	return merged
}

// formatErrorEntries renders an error chain hierarchically: the first entry
// under an "Error:" heading, remaining entries as arrowed causes, metadata
// as sorted key/value lines beneath the entry it belongs to.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			// Indent continuation lines to align with "Error: "
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = appendMetadata(lines, entry.Metadata, "       ")
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		// Indent continuation lines to align with the arrow
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = appendMetadata(lines, entry.Metadata, "      ")
	}

	return strings.Join(lines, "\n")
}

func appendMetadata(lines []string, metadata map[string]any, indent string) []string {
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, metadata[key]))
	}
	return lines
}
