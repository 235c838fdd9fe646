package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ai-intui/internal/console"
	"ai-intui/internal/layout"
)

const (
	MinWidth  = 80
	MinHeight = 24

	tooSmallNotice = "Ai-inTUI: terminal too small (min 80x24)"
	bannerHint     = "[1] AI  [2] ROB  [3] CLD  [4] DFX  [5] SBX  |  : command"
	commandHint    = "  (help / ? / mode / set mode ai|robotics|cloud|forensics|sandbox • Esc to cancel)"
)

// Compose renders one full frame of s at w x h.
func Compose(s *console.State, w, h int, p Palette) string {
	if w < MinWidth || h < MinHeight {
		return renderTooSmall(w, h, p)
	}

	rows := layout.Split(layout.Rect{Width: w, Height: h}, layout.Vertical,
		layout.Length(3), // banner
		layout.Length(9), // metrics + system
		layout.Min(6),    // logs
		layout.Length(3), // command bar
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderBanner(s, rows[0], p),
		renderMetrics(s, rows[1], p),
		renderLogs(s, rows[2], p),
		renderCommand(s, rows[3], p),
	)
}

func renderTooSmall(w, h int, p Palette) string {
	msg := lipgloss.NewStyle().Foreground(p.Title).Bold(true).Render(tooSmallNotice)
	if w <= 0 || h <= 0 {
		return msg
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}

// renderBanner lays out three independent columns so the uptime width never
// moves the centred title.
func renderBanner(s *console.State, area layout.Rect, p Palette) string {
	cols := layout.Split(area, layout.Horizontal,
		layout.Percentage(25), layout.Percentage(50), layout.Percentage(25))

	hint := lipgloss.NewStyle().Foreground(p.Label).Render(bannerHint)

	title := lipgloss.NewStyle().Foreground(p.Title).Bold(true).Render("Ai-inTUI") +
		" • " +
		lipgloss.NewStyle().Foreground(p.ModeTxt).Bold(true).Render(s.Mode().Name())

	uptime := lipgloss.NewStyle().Foreground(p.Muted).Render("uptime ") +
		lipgloss.NewStyle().Foreground(p.Uptime).Bold(true).Render(formatUptime(s.Elapsed()))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderStrip(hint, lipgloss.Left, cols[0].Width, cols[0].Height, p),
		renderStrip(title, lipgloss.Center, cols[1].Width, cols[1].Height, p),
		renderStrip(uptime, lipgloss.Right, cols[2].Width, cols[2].Height, p),
	)
}

func renderMetrics(s *console.State, area layout.Rect, p Palette) string {
	cols := layout.Split(area, layout.Horizontal, layout.Percentage(60), layout.Percentage(40))
	left, right := cols[0], cols[1]

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel("AI metrics • "+s.Mode().Name(), p.Accent(s.Mode()),
			gaugeLines(s.Gauges(), metricRow, left, p.Bars, p), left.Width, left.Height, p),
		renderPanel("system panel (fake data)", p.System,
			gaugeLines(s.SystemGauges(), systemRow, right, p.SystemBars, p), right.Width, right.Height, p),
	)
}

// gaugeLines builds one row per gauge behind a blank padding row. The
// padding row is dropped when the panel cannot fit it.
func gaugeLines(gs []console.Gauge, style gaugeStyle, area layout.Rect, colors []lipgloss.TerminalColor, p Palette) []string {
	inner := area.Inner(1)
	lines := make([]string, 0, len(gs)+1)
	if len(gs) < inner.Height {
		lines = append(lines, "")
	}
	for i, g := range gs {
		color := p.Value
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		lines = append(lines, style.row(g, inner.Width, color, p))
	}
	return lines
}

// renderLogs pins the view to the newest lines that fit.
func renderLogs(s *console.State, area layout.Rect, p Palette) string {
	inner := area.Inner(1)
	return renderPanel("logs • "+s.Mode().Tag(), p.Logs, s.Tail(inner.Height), area.Width, area.Height, p)
}

func renderCommand(s *console.State, area layout.Rect, p Palette) string {
	var line string
	if s.CommandActive() {
		prompt, hint := promptLine(s.Input(), area.Inner(1).Width)
		line = lipgloss.NewStyle().Foreground(p.Value).Render(prompt) +
			lipgloss.NewStyle().Foreground(p.Muted).Render(hint)
	} else {
		h := help.New()
		h.Styles.ShortKey = lipgloss.NewStyle().Foreground(p.Muted)
		h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(p.Muted)
		h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(p.Muted)
		h.ShortSeparator = " • "
		line = h.ShortHelpView(keys.ShortHelp())
	}
	return renderPanel("command", p.Title, []string{line}, area.Width, area.Height, p)
}

// promptLine fits ":> input" and the usage hint into width cells. The hint
// goes first; if the input alone is too wide its head is elided so the
// cursor end stays visible.
func promptLine(input string, width int) (prompt, hint string) {
	prompt = ":> " + input
	pw := runewidth.StringWidth(prompt)
	switch {
	case pw+runewidth.StringWidth(commandHint) <= width:
		return prompt, commandHint
	case pw <= width:
		return prompt, ""
	}
	return ":> …" + tail(input, width-4), ""
}

// tail returns the longest suffix of s at most n cells wide.
func tail(s string, n int) string {
	rs := []rune(s)
	w := 0
	i := len(rs)
	for i > 0 {
		rw := runewidth.RuneWidth(rs[i-1])
		if w+rw > n {
			break
		}
		w += rw
		i--
	}
	return string(rs[i:])
}
