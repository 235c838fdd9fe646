// Package feed prints the dashboard's log stream as plain lines, for runs
// without a terminal UI.
package feed

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"ai-intui/internal/console"
	"ai-intui/internal/telemetry"
)

var (
	tagColors = map[string]*color.Color{
		console.AiObservability.Tag(): color.New(color.FgCyan),
		console.Robotics.Tag():        color.New(color.FgHiYellow),
		console.Cloud.Tag():           color.New(color.FgHiMagenta),
		console.DataForensics.Tag():   color.New(color.FgHiGreen),
		console.Sandbox.Tag():         color.New(color.FgHiBlue),
	}
	echoColor  = color.New(color.FgWhite, color.Bold)
	plainColor = color.New(color.Faint)
	stampColor = color.New(color.FgHiBlack)
)

// Writer prints log lines appended to a State since the previous Flush.
type Writer struct {
	out  io.Writer
	now  func() time.Time
	seen uint64
}

// NewWriter writes to out, stamping each line with now (time.Now if nil).
func NewWriter(out io.Writer, now func() time.Time) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{out: out, now: now}
}

// Flush writes every line appended since the last call and returns how many
// were written. Lines evicted before they could be flushed are skipped.
func (w *Writer) Flush(s *console.State) (int, error) {
	total := s.LogTotal()
	fresh := total - w.seen
	w.seen = total
	if fresh == 0 {
		return 0, nil
	}

	n := min(fresh, uint64(s.LogLen()))
	stamp := stampColor.Sprint(w.now().Format("15:04:05"))
	for i, line := range s.Tail(int(n)) {
		if _, err := fmt.Fprintln(w.out, stamp, colorize(line)); err != nil {
			return i, err
		}
	}
	return int(n), nil
}

func colorize(line string) string {
	if strings.HasPrefix(line, ":> ") {
		return echoColor.Sprint(line)
	}
	if tag, _, ok := strings.Cut(line, "["); ok {
		if c, ok := tagColors[tag]; ok {
			return c.Sprint(line)
		}
	}
	return plainColor.Sprint(line)
}

// Options configures Run.
type Options struct {
	Interval time.Duration
	Metrics  *telemetry.Metrics
}

// Run ticks s every interval and flushes new lines to w until ctx is done.
// It owns s for its whole lifetime.
func Run(ctx context.Context, s *console.State, w *Writer, opts Options) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = console.DefaultTickInterval
	}

	if _, err := w.Flush(s); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_, ok := s.Tick()
			if opts.Metrics != nil {
				opts.Metrics.RecordTick(ok)
			}
			if _, err := w.Flush(s); err != nil {
				return fmt.Errorf("write feed: %w", err)
			}
		}
	}
}
