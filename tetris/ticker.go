package tetris

import "time"

// Ticker counts gravity ticks against a monotonic clock supplied by the host.
// All times are offsets from the same host epoch.
type Ticker struct {
	last     time.Duration
	interval time.Duration

	pauseMark time.Duration
	paused    bool
}

func NewTicker(now, interval time.Duration) *Ticker {
	return &Ticker{last: now, interval: interval}
}

// Ticks returns how many whole intervals passed since the last consumed tick
// and consumes them. It returns 0 while paused.
func (t *Ticker) Ticks(now time.Duration) int {
	if t.paused || now <= t.last || t.interval <= 0 {
		return 0
	}
	n := (now - t.last) / t.interval
	t.last += n * t.interval
	return int(n)
}

// SetInterval changes the spacing of future ticks. Time already accumulated
// towards the next tick is kept.
func (t *Ticker) SetInterval(d time.Duration) { t.interval = d }

func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Paused() bool { return t.paused }

// Pause freezes the ticker at now. Pausing twice keeps the first mark.
func (t *Ticker) Pause(now time.Duration) {
	if t.paused {
		return
	}
	t.pauseMark = now
	t.paused = true
}

// Resume shifts the last tick forward by the time spent paused, so the time
// left until the next tick is what it was when Pause was called.
func (t *Ticker) Resume(now time.Duration) {
	if !t.paused {
		return
	}
	t.last += now - t.pauseMark
	t.pauseMark = 0
	t.paused = false
}
