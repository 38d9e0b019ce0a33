package telemetry_test

import (
	"sync"
)

// recordingLogger is a simple test double for ports.Logger.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) Debug(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *recordingLogger) Info(_ string) {}
func (l *recordingLogger) Warn(_ string) {}
func (l *recordingLogger) Error(_ error) {}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}
