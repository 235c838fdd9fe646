package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ai-intui/internal/console"
)

// Palette defines the colors the dashboard draws with.
type Palette struct {
	Name string

	Border lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
	Label  lipgloss.TerminalColor
	Value  lipgloss.TerminalColor
	Empty  lipgloss.TerminalColor

	Title   lipgloss.TerminalColor // banner "Ai-inTUI"
	ModeTxt lipgloss.TerminalColor // banner mode name
	Uptime  lipgloss.TerminalColor
	Logs    lipgloss.TerminalColor // logs title
	System  lipgloss.TerminalColor // system panel title

	// Bars cycles over the metric rows; SystemBars over the system rows.
	Bars       []lipgloss.TerminalColor
	SystemBars []lipgloss.TerminalColor

	// Accents colors the metrics title per mode.
	Accents map[console.Mode]lipgloss.TerminalColor
}

// Accent returns the metrics-title color for mode.
func (p Palette) Accent(m console.Mode) lipgloss.TerminalColor {
	if c, ok := p.Accents[m]; ok {
		return c
	}
	return p.Title
}

// Cyberpunk uses true-color hex values.
var Cyberpunk = Palette{
	Name:    "cyberpunk",
	Border:  lipgloss.Color("#3b4261"),
	Muted:   lipgloss.Color("#565f89"),
	Label:   lipgloss.Color("#a9b1d6"),
	Value:   lipgloss.Color("#ffffff"),
	Empty:   lipgloss.Color("#292e42"),
	Title:   lipgloss.Color("#00ffff"),
	ModeTxt: lipgloss.Color("#ffd866"),
	Uptime:  lipgloss.Color("#7aa2f7"),
	Logs:    lipgloss.Color("#7dcfff"),
	System:  lipgloss.Color("#ff00ff"),
	Bars: []lipgloss.TerminalColor{
		lipgloss.Color("#39ff14"),
		lipgloss.Color("#bf00ff"),
		lipgloss.Color("#00ffff"),
		lipgloss.Color("#f7768e"),
		lipgloss.Color("#ffd866"),
		lipgloss.Color("#7aa2f7"),
		lipgloss.Color("#9ece6a"),
	},
	SystemBars: []lipgloss.TerminalColor{
		lipgloss.Color("#39ff14"),
		lipgloss.Color("#bf00ff"),
		lipgloss.Color("#00ffff"),
		lipgloss.Color("#ffd866"),
	},
	Accents: map[console.Mode]lipgloss.TerminalColor{
		console.AiObservability: lipgloss.Color("#00ffff"),
		console.Robotics:        lipgloss.Color("#ffff87"),
		console.Cloud:           lipgloss.Color("#ff79c6"),
		console.DataForensics:   lipgloss.Color("#50fa7b"),
		console.Sandbox:         lipgloss.Color("#8be9fd"),
	},
}

// Terminal sticks to the 16 ANSI colors so it follows the user's scheme.
var Terminal = Palette{
	Name:    "terminal",
	Border:  lipgloss.Color("8"),
	Muted:   lipgloss.Color("8"),
	Label:   lipgloss.Color("7"),
	Value:   lipgloss.Color("15"),
	Empty:   lipgloss.Color("8"),
	Title:   lipgloss.Color("14"),
	ModeTxt: lipgloss.Color("3"),
	Uptime:  lipgloss.Color("12"),
	Logs:    lipgloss.Color("12"),
	System:  lipgloss.Color("5"),
	Bars: []lipgloss.TerminalColor{
		lipgloss.Color("10"),
		lipgloss.Color("13"),
		lipgloss.Color("6"),
		lipgloss.Color("1"),
		lipgloss.Color("3"),
		lipgloss.Color("12"),
		lipgloss.Color("2"),
	},
	SystemBars: []lipgloss.TerminalColor{
		lipgloss.Color("10"),
		lipgloss.Color("13"),
		lipgloss.Color("6"),
		lipgloss.Color("3"),
	},
	Accents: map[console.Mode]lipgloss.TerminalColor{
		console.AiObservability: lipgloss.Color("6"),
		console.Robotics:        lipgloss.Color("11"),
		console.Cloud:           lipgloss.Color("13"),
		console.DataForensics:   lipgloss.Color("10"),
		console.Sandbox:         lipgloss.Color("12"),
	},
}

// Palettes lists the built-in palettes.
var Palettes = []Palette{Cyberpunk, Terminal}

// ResolvePalette picks a palette by name. "auto" (or an unknown name) picks
// Cyberpunk on true-color or 256-color terminals and Terminal otherwise.
func ResolvePalette(name string, profile termenv.Profile) Palette {
	for _, p := range Palettes {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	if profile == termenv.TrueColor || profile == termenv.ANSI256 {
		return Cyberpunk
	}
	return Terminal
}
