package log

import (
	"fmt"
	"io"
	"sync"
)

const defaultBufferCapacity = 100

// CircularBuffer is an [io.Writer] that keeps the most recent writes. Each
// Write is one entry, and the oldest entry is dropped once the buffer is full.
//
// Logs are written here while the TUI owns the terminal, then replayed with
// [CircularBuffer.WriteTo] once it exits.
type CircularBuffer struct {
	entries [][]byte
	start   int
	size    int
	mu      sync.RWMutex
}

// NewCircularBuffer creates a buffer holding up to capacity entries. A
// capacity below one uses a default of 100.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}

	return &CircularBuffer{
		entries: make([][]byte, capacity),
	}
}

// Write implements [io.Writer]. p is copied.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	entry := make([]byte, len(p))
	copy(entry, p)

	cb.mu.Lock()
	defer cb.mu.Unlock()

	capacity := len(cb.entries)
	if cb.size < capacity {
		cb.entries[(cb.start+cb.size)%capacity] = entry
		cb.size++
	} else {
		cb.entries[cb.start] = entry
		cb.start = (cb.start + 1) % capacity
	}

	return len(p), nil
}

// Entries returns copies of the stored entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.size == 0 {
		return nil
	}

	out := make([][]byte, 0, cb.size)
	for i := range cb.size {
		e := cb.entries[(cb.start+i)%len(cb.entries)]
		out = append(out, append([]byte(nil), e...))
	}

	return out
}

// Size returns the number of stored entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size
}

// Capacity returns the maximum number of entries.
func (cb *CircularBuffer) Capacity() int {
	return len(cb.entries)
}

// IsFull reports whether the next write drops an entry.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size == len(cb.entries)
}

// Clear removes all entries.
func (cb *CircularBuffer) Clear() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	clear(cb.entries)
	cb.start = 0
	cb.size = 0
}

// WriteTo implements [io.WriterTo], writing entries oldest first.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
