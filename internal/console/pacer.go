package console

import "time"

// DefaultTickInterval is the period between synthetic log draws.
const DefaultTickInterval = 200 * time.Millisecond

// Pacer decides when a tick is due. A tick fires once at least interval has
// passed since the previous one; the next deadline is measured from when the
// tick actually ran.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

func NewPacer(interval time.Duration, start time.Time) *Pacer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Pacer{interval: interval, last: start}
}

// Due reports whether a tick should run at now and, if so, restarts the
// interval from now.
func (p *Pacer) Due(now time.Time) bool {
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// Remaining is how long an event wait may block before the next tick is due.
func (p *Pacer) Remaining(now time.Time) time.Duration {
	r := p.interval - now.Sub(p.last)
	if r < 0 {
		return 0
	}
	return r
}
