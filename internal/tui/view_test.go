package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"ai-intui/internal/console"
)

func newViewState(clock *fakeClock) *console.State {
	return console.New(console.Options{Rand: fixedRand(0.99), Now: clock.Now})
}

func TestCompose_TooSmall(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)

	for _, size := range [][2]int{{79, 24}, {80, 23}, {40, 10}} {
		out := ansi.Strip(Compose(s, size[0], size[1], Cyberpunk))
		assert.Contains(t, out, tooSmallNotice)
		assert.NotContains(t, out, "logs •")
		assert.NotContains(t, out, "AI metrics")
	}
}

func TestCompose_FillsSurface(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)

	for _, size := range [][2]int{{80, 24}, {120, 40}} {
		out := Compose(s, size[0], size[1], Cyberpunk)
		assert.Equal(t, size[0], lipgloss.Width(out), "width for %v", size)
		assert.Equal(t, size[1], lipgloss.Height(out), "height for %v", size)
	}
}

func TestCompose_Regions(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)
	clock.Advance(65 * time.Second)

	out := ansi.Strip(Compose(s, 120, 30, Terminal))

	assert.Contains(t, out, "Ai-inTUI • AI observability")
	assert.Contains(t, out, "uptime 1m5s")
	assert.Contains(t, out, "[1] AI")
	assert.Contains(t, out, "AI metrics • AI observability")
	assert.Contains(t, out, "latency p95")
	assert.Contains(t, out, "system panel (fake data)")
	assert.Contains(t, out, "cpu load")
	assert.Contains(t, out, "logs • AI")
	assert.Contains(t, out, "1–5 to switch modes")
	assert.Contains(t, out, "command")
	assert.Contains(t, out, "█")
}

func TestCompose_ModeChangesTitles(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)
	s.SetMode(console.DataForensics)

	out := ansi.Strip(Compose(s, 100, 30, Cyberpunk))
	assert.Contains(t, out, "Ai-inTUI • Data forensics")
	assert.Contains(t, out, "AI metrics • Data forensics")
	assert.Contains(t, out, "logs • DFX")
}

func TestCompose_LogsPinnedToNewest(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)
	for i := 0; i < 30; i++ {
		s.PushLog(fmt.Sprintf("entry-%02d", i))
	}

	// 80x24 leaves a 9-row logs band, 7 interior rows.
	out := ansi.Strip(Compose(s, 80, 24, Cyberpunk))
	for i := 23; i < 30; i++ {
		assert.Contains(t, out, fmt.Sprintf("entry-%02d", i))
	}
	assert.NotContains(t, out, "entry-22")
}

func TestCompose_CommandBar(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)

	idle := ansi.Strip(Compose(s, 100, 30, Cyberpunk))
	assert.NotContains(t, idle, ":> ")
	assert.Contains(t, idle, "command mode")

	s.BeginCommand()
	s.AppendInput([]rune("set mode rob")...)
	active := ansi.Strip(Compose(s, 160, 30, Cyberpunk))
	assert.Contains(t, active, ":> set mode rob")
	assert.Contains(t, active, "Esc to cancel")
}

func TestCompose_BannerTitleStaysCentred(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)

	titleCol := func() int {
		first := strings.Split(ansi.Strip(Compose(s, 100, 30, Cyberpunk)), "\n")[0]
		return strings.Index(first, "Ai-inTUI")
	}
	short := titleCol()
	clock.Advance(10 * time.Hour)
	assert.Equal(t, short, titleCol())
}

func TestBar(t *testing.T) {
	tests := []struct {
		norm float64
		n    int
		want string
	}{
		{0, 4, "░░░░"},
		{1, 4, "████"},
		{0.5, 4, "██░░"},
		{0.3, 5, "██░░░"},
		{0.29, 5, "█░░░░"},
		{2, 3, "███"},
		{-1, 3, "░░░"},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bar(tt.norm, tt.n), "Bar(%v, %d)", tt.norm, tt.n)
	}
}

func TestResolvePalette(t *testing.T) {
	assert.Equal(t, "cyberpunk", ResolvePalette("cyberpunk", termenv.Ascii).Name)
	assert.Equal(t, "terminal", ResolvePalette("TERMINAL", termenv.TrueColor).Name)
	assert.Equal(t, "cyberpunk", ResolvePalette("auto", termenv.TrueColor).Name)
	assert.Equal(t, "cyberpunk", ResolvePalette("auto", termenv.ANSI256).Name)
	assert.Equal(t, "terminal", ResolvePalette("auto", termenv.ANSI).Name)
}

func TestPalette_AccentPerMode(t *testing.T) {
	for _, p := range Palettes {
		for _, m := range console.Modes {
			_, ok := p.Accents[m]
			assert.True(t, ok, "%s has no accent for %s", p.Name, m)
		}
	}
	assert.Equal(t, Cyberpunk.Title, Palette{Title: Cyberpunk.Title}.Accent(console.Cloud))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0s", formatUptime(0))
	assert.Equal(t, "1m5s", formatUptime(65*time.Second+400*time.Millisecond))
	assert.Equal(t, "2h0m0s", formatUptime(2*time.Hour))
	assert.Equal(t, "0s", formatUptime(-time.Second))
}

func TestCompose_LongInputKeepsTail(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newViewState(clock)

	s.BeginCommand()
	s.AppendInput([]rune(strings.Repeat("x", 120) + "TAILMARK")...)
	frame := Compose(s, 80, 24, Cyberpunk)
	out := ansi.Strip(frame)
	assert.Contains(t, out, ":> …")
	assert.Contains(t, out, "TAILMARK")
	assert.NotContains(t, out, "Esc to cancel")
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Equal(t, 80, lipgloss.Width(frame))
}

func TestPromptLine(t *testing.T) {
	prompt, hint := promptLine("help", 200)
	assert.Equal(t, ":> help", prompt)
	assert.Equal(t, commandHint, hint)

	prompt, hint = promptLine("set mode robotics", 30)
	assert.Equal(t, ":> set mode robotics", prompt)
	assert.Empty(t, hint)

	prompt, hint = promptLine("abcdefghij", 10)
	assert.Equal(t, ":> …efghij", prompt)
	assert.Empty(t, hint)

	prompt, _ = promptLine("日本語テキスト", 10)
	assert.Equal(t, ":> …キスト", prompt)
}

func TestRenderBar_EmptyCellsUsePaletteColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(prev)

	out := renderBar(0.5, 4, Cyberpunk.Bars[0], Cyberpunk)
	assert.Equal(t, "██░░", ansi.Strip(out))
	assert.Contains(t, out, "38;2;41;46;66")
}
