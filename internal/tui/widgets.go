package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"ai-intui/internal/console"
)

// Bar renders norm (clamped to 0..1) as n cells, filled cells rounded to
// the nearest whole cell.
func Bar(norm float64, n int) string {
	filled := barFill(norm, n)
	return strings.Repeat("█", filled) + strings.Repeat("░", max(n-filled, 0))
}

// barFill is the number of filled cells out of n.
func barFill(norm float64, n int) int {
	if n <= 0 || math.IsNaN(norm) {
		return 0
	}
	norm = math.Min(math.Max(norm, 0), 1)
	return int(math.Round(norm * float64(n)))
}

// renderPanel draws a fully bordered w x h box with title set into the top
// border. Content lines are truncated to the interior and padded or cut to
// the interior height, so the result is always exactly w x h.
func renderPanel(title string, titleColor lipgloss.TerminalColor, lines []string, w, h int, p Palette) string {
	if w < 4 || h < 3 {
		return ""
	}
	innerW, innerH := w-2, h-2

	rows := make([]string, innerH)
	for i := range rows {
		if i < len(lines) {
			rows[i] = ansi.Truncate(lines[i], innerW, "")
		}
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(p.Border).
		Width(innerW).
		Render(strings.Join(rows, "\n"))

	return topBorder(title, titleColor, w, p) + "\n" + body
}

// topBorder builds "┌─ title ───┐" by hand so the title can carry its own
// color.
func topBorder(title string, titleColor lipgloss.TerminalColor, w int, p Palette) string {
	border := lipgloss.NewStyle().Foreground(p.Border)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)

	title = truncate(title, max(w-5, 0))
	dashes := max(w-2-(runewidth.StringWidth(title)+3), 0)
	if title == "" {
		return border.Render("┌" + strings.Repeat("─", w-2) + "┐")
	}
	return border.Render("┌─ ") +
		titleStyle.Render(title) +
		border.Render(" "+strings.Repeat("─", dashes)+"┐")
}

// renderStrip draws one banner column: content on top, a bottom rule
// underneath, exactly w x h.
func renderStrip(content string, align lipgloss.Position, w, h int, p Palette) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	rows := make([]string, max(h-1, 0))
	if len(rows) > 0 {
		rows[0] = ansi.Truncate(content, w, "")
	}
	body := lipgloss.NewStyle().
		Width(w).
		Align(align).
		Render(strings.Join(rows, "\n"))
	rule := lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", w))
	if h == 1 {
		return rule
	}
	return body + "\n" + rule
}

// gaugeStyle sizes one column of gauge rows.
type gaugeStyle struct {
	labelW, valueW int
	gap            string
	maxBar         int
}

var (
	metricRow = gaugeStyle{labelW: 15, valueW: 8, gap: "  ", maxBar: 22}
	systemRow = gaugeStyle{labelW: 12, valueW: 6, gap: " ", maxBar: 16}
)

// barLen is how many bar cells fit after label and value in width cells.
func (gs gaugeStyle) barLen(width int) int {
	fixed := gs.labelW + gs.valueW + 2*len(gs.gap)
	return min(max(width-fixed, 0), gs.maxBar)
}

func (gs gaugeStyle) row(g console.Gauge, width int, color lipgloss.TerminalColor, p Palette) string {
	label := fmt.Sprintf("%-*s", gs.labelW, truncate(g.Label, gs.labelW))
	value := fmt.Sprintf("%*s", gs.valueW, g.Text())
	return lipgloss.NewStyle().Foreground(p.Label).Render(label) +
		gs.gap +
		lipgloss.NewStyle().Foreground(p.Value).Render(value) +
		gs.gap +
		renderBar(g.Norm(), gs.barLen(width), color, p)
}

// renderBar draws filled cells in color and the remainder in p.Empty.
func renderBar(norm float64, n int, color lipgloss.TerminalColor, p Palette) string {
	filled := barFill(norm, n)
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(p.Empty).Render(strings.Repeat("░", max(n-filled, 0)))
}

func truncate(s string, n int) string { return runewidth.Truncate(s, n, "") }

// formatUptime renders whole seconds, e.g. "1m5s".
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}
