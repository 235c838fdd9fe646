// Package telemetry counts what happened during a dashboard session.
package telemetry

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const frameSamples = 100

// Metrics tracks ticks, commands and frame render latency. Counters are
// atomic so the headless feed and the final summary can read them from
// another goroutine.
type Metrics struct {
	// Frame render samples in microseconds
	samples   []int64
	sampleIdx int
	mu        sync.Mutex

	ticks       atomic.Int64
	emitted     atomic.Int64
	commands    atomic.Int64
	modeChanges atomic.Int64
	lastFrameUs atomic.Int64
}

// NewMetrics creates a tracker keeping the last 100 frame samples.
func NewMetrics() *Metrics {
	return &Metrics{
		samples: make([]int64, frameSamples),
	}
}

// RecordTick counts one generator tick and whether it appended a line.
func (m *Metrics) RecordTick(emitted bool) {
	m.ticks.Add(1)
	if emitted {
		m.emitted.Add(1)
	}
}

// RecordCommand counts one submitted command line.
func (m *Metrics) RecordCommand() { m.commands.Add(1) }

// RecordModeChange counts one effective mode switch.
func (m *Metrics) RecordModeChange() { m.modeChanges.Add(1) }

// RecordFrame records how long composing one frame took.
func (m *Metrics) RecordFrame(d time.Duration) {
	us := d.Microseconds()

	m.mu.Lock()
	m.samples[m.sampleIdx%len(m.samples)] = us
	m.sampleIdx++
	m.mu.Unlock()

	m.lastFrameUs.Store(us)
}

// P50 returns the median frame time.
func (m *Metrics) P50() time.Duration { return m.percentile(50) }

// P95 returns the 95th percentile frame time.
func (m *Metrics) P95() time.Duration { return m.percentile(95) }

// Frames is the number of frames recorded.
func (m *Metrics) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sampleIdx
}

func (m *Metrics) percentile(p int) time.Duration {
	m.mu.Lock()
	count := min(m.sampleIdx, len(m.samples))
	sorted := slices.Clone(m.samples[:count])
	m.mu.Unlock()

	if count == 0 {
		return 0
	}
	slices.Sort(sorted)

	idx := min((p*count)/100, count-1)
	return time.Duration(sorted[idx]) * time.Microsecond
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Ticks       int64
	Emitted     int64
	Commands    int64
	ModeChanges int64
	Frames      int
	LastFrame   time.Duration
	FrameP50    time.Duration
	FrameP95    time.Duration
}

// EmitRate is the fraction of ticks that appended a line.
func (s Snapshot) EmitRate() float64 {
	if s.Ticks == 0 {
		return 0
	}
	return float64(s.Emitted) / float64(s.Ticks)
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Ticks:       m.ticks.Load(),
		Emitted:     m.emitted.Load(),
		Commands:    m.commands.Load(),
		ModeChanges: m.modeChanges.Load(),
		Frames:      m.Frames(),
		LastFrame:   time.Duration(m.lastFrameUs.Load()) * time.Microsecond,
		FrameP50:    m.P50(),
		FrameP95:    m.P95(),
	}
}
