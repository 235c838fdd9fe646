// Package console holds the dashboard's domain state: the active mode, the
// bounded log feed, the modal command buffer and the synthetic signal
// generators. Nothing here touches the terminal; the tui package drives it.
package console

import (
	"math/rand/v2"
	"time"
	"unicode"
)

// DefaultEmitProbability is the chance that a tick appends a synthetic line.
const DefaultEmitProbability = 0.12

// Rand is the random source consulted once per tick.
type Rand interface {
	Float64() float64
}

// Options configures New. Zero values select the defaults; a nil
// EmitProbability selects DefaultEmitProbability while a pointer to 0
// turns synthetic lines off.
type Options struct {
	LogCapacity     int
	EmitProbability *float64
	StartMode       Mode
	Rand            Rand
	Now             func() time.Time
}

// State is the single mutable aggregate behind the dashboard. It is owned by
// one goroutine and is not safe for concurrent use.
type State struct {
	start time.Time
	now   func() time.Time

	mode Mode
	logs *LogBuffer

	input  []rune
	active bool

	rng  Rand
	emit float64
}

// New builds a State seeded with the two introductory log lines.
func New(opts Options) *State {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	emit := DefaultEmitProbability
	if opts.EmitProbability != nil {
		emit = *opts.EmitProbability
	}

	s := &State{
		start: now(),
		now:   now,
		mode:  opts.StartMode,
		logs:  NewLogBuffer(opts.LogCapacity),
		rng:   rng,
		emit:  emit,
	}
	s.PushLog("ai-intui v0.9 — 1–5 to switch modes, : for command mode")
	s.PushLog("commands: help / ?, clear, set mode <ai|robotics|cloud|forensics|sandbox>")
	return s
}

// Elapsed is the wall-clock time since construction.
func (s *State) Elapsed() time.Duration { return s.now().Sub(s.start) }

// Seconds is Elapsed in seconds, the time base of every generator.
func (s *State) Seconds() float64 { return s.Elapsed().Seconds() }

func (s *State) Mode() Mode { return s.mode }

// SetMode switches mode and announces it. It reports whether anything
// changed; selecting the current mode is a no-op.
func (s *State) SetMode(m Mode) bool {
	if m == s.mode {
		return false
	}
	s.mode = m
	s.PushLog("mode set → " + m.Name())
	return true
}

// PushLog appends a line, evicting the oldest beyond capacity.
func (s *State) PushLog(line string) { s.logs.Append(line) }

// Tick draws once from the random source and, if it fires, appends a
// synthetic line for the current mode. The appended line is returned.
func (s *State) Tick() (string, bool) {
	if s.rng.Float64() >= s.emit {
		return "", false
	}
	line := SyntheticLine(s.mode, s.Seconds())
	s.PushLog(line)
	return line, true
}

// Gauges returns the current mode's readings.
func (s *State) Gauges() []Gauge { return Generate(s.mode, s.Seconds()) }

// SystemGauges returns the mode-independent system panel readings.
func (s *State) SystemGauges() []Gauge { return SystemGauges(s.Seconds()) }

// Lines returns a copy of the whole log feed, oldest first.
func (s *State) Lines() []string { return s.logs.Snapshot() }

// Tail returns the newest n log lines, oldest first.
func (s *State) Tail(n int) []string { return s.logs.Tail(n) }

func (s *State) LogLen() int { return s.logs.Len() }

// LogTotal counts every line ever appended.
func (s *State) LogTotal() uint64 { return s.logs.Total() }

func (s *State) CommandActive() bool { return s.active }

// Input returns the in-progress command text.
func (s *State) Input() string { return string(s.input) }

// BeginCommand enters command state with an empty buffer.
func (s *State) BeginCommand() {
	s.active = true
	s.input = s.input[:0]
}

// CancelCommand discards the buffer and leaves command state.
func (s *State) CancelCommand() {
	s.active = false
	s.input = s.input[:0]
}

// AppendInput adds runes to the command buffer. Outside command state it
// does nothing, so the buffer is only ever non-empty while active. Control
// runes (pasted newlines, tabs) become spaces so a command is always one row.
func (s *State) AppendInput(r ...rune) {
	if !s.active {
		return
	}
	for _, c := range r {
		if unicode.IsControl(c) {
			c = ' '
		}
		s.input = append(s.input, c)
	}
}

// Backspace removes the last rune of the command buffer, if any.
func (s *State) Backspace() {
	if s.active && len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// Submit runs the buffered command and leaves command state. The buffer is
// consumed whichever branch the interpreter takes.
func (s *State) Submit() {
	raw := string(s.input)
	s.input = s.input[:0]
	s.active = false
	Execute(s, raw)
}

func (s *State) clearLogs() { s.logs.Clear() }
