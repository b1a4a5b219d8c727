// Package loop drives a simulation at a fixed minimum tick interval.
package loop

import "time"

// Pacer decides when the next tick is due. It never sleeps; the caller
// asks it on every wake-up and steps the simulation by the returned
// elapsed time, which is the real time since the last tick rather than
// the nominal interval.
type Pacer struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewPacer creates a pacer that reports ticks no closer than interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Interval returns the minimum time between ticks.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Start marks now as the time of the last tick.
func (p *Pacer) Start(now time.Time) {
	p.last = now
	p.started = true
}

// Due reports whether a tick is due at now and, if so, how much time it
// covers. A pacer that was never started starts at now and reports nothing.
func (p *Pacer) Due(now time.Time) (time.Duration, bool) {
	if !p.started {
		p.Start(now)
		return 0, false
	}

	elapsed := now.Sub(p.last)
	if elapsed < p.interval {
		return 0, false
	}
	p.last = now
	return elapsed, true
}

// Wait returns how long until the next tick is due at now.
func (p *Pacer) Wait(now time.Time) time.Duration {
	if !p.started {
		return p.interval
	}
	return max(0, p.interval-now.Sub(p.last))
}

// Simulate runs step with fixed interval deltas until total simulated time
// has been covered or step returns false. The final step may be shorter.
// It returns the simulated time consumed.
func Simulate(total, interval time.Duration, step func(elapsed time.Duration) bool) time.Duration {
	if interval <= 0 {
		return 0
	}

	var done time.Duration
	for done < total {
		dt := min(interval, total-done)
		done += dt
		if !step(dt) {
			break
		}
	}
	return done
}
