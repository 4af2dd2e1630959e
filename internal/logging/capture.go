package logging

import (
	"strings"
	"sync"
)

// CaptureWriter is a thread-safe writer that keeps the last written line.
type CaptureWriter struct {
	mu       sync.RWMutex
	lastLine string
}

// Capture receives every INFO+ record so the status bar can show it.
var Capture = &CaptureWriter{}

// Write implements io.Writer.
func (w *CaptureWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastLine = strings.TrimRight(string(p), "\r\n")
	return len(p), nil
}

// LastLine returns the most recent log line.
func (w *CaptureWriter) LastLine() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastLine
}
