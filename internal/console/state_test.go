package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays fixed draws and counts how often it was asked.
type seqRand struct {
	draws []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.draws[r.calls%len(r.draws)]
	r.calls++
	return v
}

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func newTestState(r Rand, c *fakeClock) *State {
	return New(Options{Rand: r, Now: c.Now})
}

func TestNew_SeedsIntroLines(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())

	assert.Equal(t, AiObservability, s.Mode())
	require.Equal(t, 2, s.LogLen())
	assert.Contains(t, s.Lines()[0], "1–5 to switch modes")
	assert.Contains(t, s.Lines()[1], "set mode <ai|robotics|cloud|forensics|sandbox>")
	assert.False(t, s.CommandActive())
	assert.Empty(t, s.Input())
}

func TestSetMode(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())
	before := s.LogLen()

	assert.False(t, s.SetMode(AiObservability))
	assert.Equal(t, before, s.LogLen(), "same mode must not log")

	assert.True(t, s.SetMode(Robotics))
	assert.Equal(t, Robotics, s.Mode())
	assert.Equal(t, before+1, s.LogLen())
	assert.Equal(t, []string{"mode set → Robotics"}, s.Tail(1))

	assert.False(t, s.SetMode(Robotics))
	assert.Equal(t, before+1, s.LogLen())
}

func TestTick_EmitsOnlyWhenDrawBelowProbability(t *testing.T) {
	r := &seqRand{draws: []float64{0.05, 0.5, 0.1199, 0.12}}
	c := newFakeClock()
	s := newTestState(r, c)
	s.SetMode(Cloud)
	base := s.LogLen()

	var fired []bool
	for i := 0; i < 4; i++ {
		c.Advance(200 * time.Millisecond)
		_, ok := s.Tick()
		fired = append(fired, ok)
	}

	assert.Equal(t, []bool{true, false, true, false}, fired)
	assert.Equal(t, 4, r.calls, "one draw per tick")
	assert.Equal(t, base+2, s.LogLen())
	for _, l := range s.Tail(2) {
		assert.Contains(t, l, "CLD[node]")
	}
	assert.Equal(t, Cloud, s.Mode(), "tick never changes mode")
	assert.False(t, s.CommandActive(), "tick never touches command state")
}

func TestTick_UsesElapsedTime(t *testing.T) {
	c := newFakeClock()
	s := newTestState(&seqRand{draws: []float64{0}}, c)
	c.Advance(2 * time.Second)

	line, ok := s.Tick()
	require.True(t, ok)
	assert.Equal(t, SyntheticLine(AiObservability, 2), line)
	assert.Equal(t, 2*time.Second, s.Elapsed())
}

func TestPushLog_EnforcesCapacity(t *testing.T) {
	s := New(Options{Rand: &seqRand{draws: []float64{1}}, LogCapacity: 3})
	for i := 0; i < 10; i++ {
		s.PushLog("x")
	}
	assert.Equal(t, 3, s.LogLen())
	assert.Equal(t, uint64(12), s.LogTotal())
}

func TestCommandBuffer_Lifecycle(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())

	s.AppendInput('x')
	assert.Empty(t, s.Input(), "input is ignored outside command state")

	s.BeginCommand()
	s.AppendInput('a', 'b', 'é')
	assert.Equal(t, "abé", s.Input())

	s.Backspace()
	assert.Equal(t, "ab", s.Input())

	s.CancelCommand()
	assert.False(t, s.CommandActive())
	assert.Empty(t, s.Input())

	s.Backspace()
	assert.Empty(t, s.Input())
}

func TestBeginCommand_StartsFresh(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())
	s.BeginCommand()
	s.AppendInput('z')
	s.BeginCommand()
	assert.Empty(t, s.Input())
	assert.True(t, s.CommandActive())
}

func TestSubmit_ConsumesBuffer(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())
	s.BeginCommand()
	s.AppendInput([]rune("bogus")...)
	s.Submit()

	assert.False(t, s.CommandActive())
	assert.Empty(t, s.Input())
	assert.Equal(t, []string{":> bogus", unknownCmdLine}, s.Tail(2))
}

func TestSubmit_BlankIsSilent(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())
	before := s.LogLen()
	s.BeginCommand()
	s.AppendInput(' ', ' ')
	s.Submit()

	assert.Equal(t, before, s.LogLen())
	assert.False(t, s.CommandActive())
	assert.Empty(t, s.Input())
}

func TestAppendInput_ControlRunesBecomeSpaces(t *testing.T) {
	s := newTestState(&seqRand{draws: []float64{1}}, newFakeClock())
	s.BeginCommand()
	s.AppendInput([]rune("a\nb\r\tc")...)
	assert.Equal(t, "a b  c", s.Input())

	s.Submit()
	for _, line := range s.Lines() {
		assert.NotContains(t, line, "\n")
	}
}

func TestTick_ZeroProbabilityNeverEmits(t *testing.T) {
	zero := 0.0
	r := &seqRand{draws: []float64{0, 0.0001, 0.05}}
	s := New(Options{Rand: r, EmitProbability: &zero})
	before := s.LogLen()

	for i := 0; i < 3; i++ {
		_, ok := s.Tick()
		assert.False(t, ok)
	}
	assert.Equal(t, before, s.LogLen())
}

func TestNew_NilProbabilityUsesDefault(t *testing.T) {
	r := &seqRand{draws: []float64{0.1199}}
	s := New(Options{Rand: r})
	_, ok := s.Tick()
	assert.True(t, ok)
}
