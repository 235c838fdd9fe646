// Package tui is the bubbletea front end: it routes keys into the console
// state, drives the generator tick and composes frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ai-intui/internal/console"
	"ai-intui/internal/telemetry"
)

const windowTitle = "Ai-inTUI"

// Messages
type tickMsg time.Time

// PaletteMsg swaps the palette at runtime, e.g. after a config reload.
type PaletteMsg struct{ Palette Palette }

// Options configures NewModel. Zero values select the defaults.
type Options struct {
	Interval time.Duration
	Palette  Palette
	Metrics  *telemetry.Metrics
	Logger   *zerolog.Logger
	Now      func() time.Time
}

// Model wraps a console.State for bubbletea.
type Model struct {
	state   *console.State
	pacer   *console.Pacer
	palette Palette
	metrics *telemetry.Metrics
	log     zerolog.Logger
	now     func() time.Time

	Width, Height int
	quitting      bool
}

// NewModel builds a model around s.
func NewModel(s *console.State, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	p := opts.Palette
	if p.Name == "" {
		p = Cyberpunk
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetrics()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return Model{
		state:   s,
		pacer:   console.NewPacer(opts.Interval, now()),
		palette: p,
		metrics: metrics,
		log:     logger.With().Str("component", "tui").Logger(),
		now:     now,
	}
}

// State exposes the wrapped console state.
func (m Model) State() *console.State { return m.state }

// Palette is the palette currently in use.
func (m Model) Palette() Palette { return m.palette }

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(windowTitle),
		m.scheduleTick(),
	)
}

// scheduleTick waits only for what is left of the current interval, so a
// key press never delays the generator.
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.pacer.Remaining(m.now()), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.log.Debug().Int("width", msg.Width).Int("height", msg.Height).Msg("resize")
	case tickMsg:
		m.tick()
		return m, m.scheduleTick()
	case PaletteMsg:
		m.palette = msg.Palette
		m.log.Info().Str("palette", msg.Palette.Name).Msg("palette changed")
	}
	return m, nil
}

// tick runs the generator once the interval has elapsed. Early wake-ups
// (tea.Tick can fire a hair before the deadline) are ignored.
func (m Model) tick() {
	if !m.pacer.Due(m.now()) {
		return
	}
	line, ok := m.state.Tick()
	m.metrics.RecordTick(ok)
	if ok {
		m.log.Debug().Str("line", line).Msg("emit")
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := Route(msg, m.state.CommandActive())
	switch a.Kind {
	case ActQuit:
		m.quitting = true
		return m, tea.Quit
	case ActSetMode:
		if a.Insert {
			m.state.AppendInput(a.Runes...)
		}
		if m.state.SetMode(a.Mode) {
			m.metrics.RecordModeChange()
			m.log.Debug().Str("mode", a.Mode.Tag()).Msg("mode switch")
		}
	case ActBeginCommand:
		m.state.BeginCommand()
	case ActCancelCommand:
		m.state.CancelCommand()
	case ActSubmitCommand:
		before := m.state.Mode()
		input := m.state.Input()
		m.state.Submit()
		m.metrics.RecordCommand()
		if m.state.Mode() != before {
			m.metrics.RecordModeChange()
		}
		m.log.Debug().Str("input", input).Str("mode", m.state.Mode().Tag()).Msg("command")
	case ActBackspace:
		m.state.Backspace()
	case ActInsert:
		m.state.AppendInput(a.Runes...)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.Width == 0 {
		return "Loading..."
	}
	start := time.Now()
	out := Compose(m.state, m.Width, m.Height, m.palette)
	m.metrics.RecordFrame(time.Since(start))
	return out
}
