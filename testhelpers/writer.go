// Package testhelpers provides testing utilities for interm, including a
// recording io.Writer that can simulate write failures.
package testhelpers

import (
	"bytes"
	"errors"
	"sync"
)

// ErrWriteFailed is returned by a Writer once its write budget is spent
var ErrWriteFailed = errors.New("write failed")

// Writer is an io.Writer that records every write and can be configured to
// fail after a number of successful writes, for exercising partial-output
// error paths.
type Writer struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	writes    []string
	failAfter int
}

// NewWriter creates a Writer that never fails.
func NewWriter() *Writer {
	return &Writer{failAfter: -1}
}

// NewFailingWriter creates a Writer that accepts n writes and then returns
// ErrWriteFailed for every write after that.
func NewFailingWriter(n int) *Writer {
	return &Writer{failAfter: n}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.failAfter == 0 {
		return 0, ErrWriteFailed
	}
	if w.failAfter > 0 {
		w.failAfter--
	}
	w.writes = append(w.writes, string(p))
	return w.buf.Write(p)
}

// String returns everything written so far
func (w *Writer) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

// Writes returns each successful write in order
func (w *Writer) Writes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	writes := make([]string, len(w.writes))
	copy(writes, w.writes)
	return writes
}

// Reset discards recorded output, keeping the failure budget
func (w *Writer) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.Reset()
	w.writes = nil
}

// FailNow makes every following write fail
func (w *Writer) FailNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failAfter = 0
}
