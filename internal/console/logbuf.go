package console

import "slices"

// DefaultLogCapacity is the number of lines kept before the oldest are evicted.
const DefaultLogCapacity = 512

// LogBuffer is an append-only, capacity-bounded list of lines, oldest first.
type LogBuffer struct {
	lines    []string
	capacity int
	total    uint64
}

// NewLogBuffer returns an empty buffer. A non-positive capacity falls back to
// DefaultLogCapacity.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogBuffer{capacity: capacity}
}

// Append adds a line at the end and drops any overflow from the front in a
// single step.
func (b *LogBuffer) Append(line string) {
	b.lines = append(b.lines, line)
	b.total++
	if over := len(b.lines) - b.capacity; over > 0 {
		b.lines = slices.Delete(b.lines, 0, over)
	}
}

// Clear empties the buffer. Total is not reset.
func (b *LogBuffer) Clear() {
	clear(b.lines)
	b.lines = b.lines[:0]
}

// Snapshot returns a copy of all lines, oldest first.
func (b *LogBuffer) Snapshot() []string {
	return slices.Clone(b.lines)
}

// Tail returns a copy of the newest n lines, oldest first.
func (b *LogBuffer) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(b.lines) {
		n = len(b.lines)
	}
	return slices.Clone(b.lines[len(b.lines)-n:])
}

func (b *LogBuffer) Len() int { return len(b.lines) }

func (b *LogBuffer) Cap() int { return b.capacity }

// Total counts every Append since creation, including evicted and cleared
// lines. Readers use it to find out how many lines are new since they last
// looked.
func (b *LogBuffer) Total() uint64 { return b.total }
