// Package input abstracts the pad's controls: the rotary encoder, its
// debounced push button, and the keypad event queue.
package input

import "time"

// KeyEvent is one keypad edge.
type KeyEvent struct {
	Key     int
	Pressed bool
}

// Source is polled once per controller tick. EncoderPosition is a monotonic
// detent count (the controller wraps it by modulo against the profile
// count); EncoderPressed is the debounced button state; PollKey pops the
// next queued keypad event without blocking.
type Source interface {
	EncoderPosition() int
	EncoderPressed() bool
	PollKey() (KeyEvent, bool)
}

// Debouncer filters contact bounce out of a raw switch signal: a raw change
// only becomes the reported state after it has held steady for the debounce
// interval.
type Debouncer struct {
	Interval time.Duration

	state   bool
	raw     bool
	changed time.Time
}

// Update feeds a raw sample taken at now and returns the debounced state.
func (d *Debouncer) Update(raw bool, now time.Time) bool {
	if raw != d.raw {
		d.raw = raw
		d.changed = now
		return d.state
	}
	if raw != d.state && now.Sub(d.changed) >= d.Interval {
		d.state = raw
	}
	return d.state
}

// State returns the current debounced state without feeding a sample.
func (d *Debouncer) State() bool { return d.state }
