package snake

import "time"

// pacer gates board moves on elapsed time. The platform loop runs much
// faster than the snake moves, so most frames only redraw.
type pacer struct {
	last    time.Time
	started bool
}

// reset forgets the previous move so the next due check starts a new interval.
func (p *pacer) reset() {
	p.started = false
	p.last = time.Time{}
}

// due reports whether at least interval has passed since the last move.
// The first check after a reset is always due, so the snake reacts to the
// first key press without delay.
func (p *pacer) due(now time.Time, interval time.Duration) bool {
	if !p.started {
		return true
	}
	return now.Sub(p.last) >= interval
}

// mark records a move at now.
func (p *pacer) mark(now time.Time) {
	p.last = now
	p.started = true
}
