// Package rhythm tracks the musical beat grid and grades attack timing
// against it. The clock is advanced by the frame loop and read at the
// instant an attack is pressed; grading is a pure function of the distance
// to the nearest beat boundary.
package rhythm

import "math"

// Clock tracks the phase of the current song's beat cycle. It holds no
// audio state; the music layer supplies the BPM and the frame loop
// supplies elapsed time.
type Clock struct {
	bpm     float64
	elapsed float64
}

// NewClock creates a clock for the given BPM. A non-positive BPM is
// accepted and treated as "no beat grid": every offset query reports an
// unreachable distance so all attacks grade as Miss.
func NewClock(bpm float64) *Clock {
	return &Clock{bpm: bpm}
}

// BPM returns the current beats per minute.
func (c *Clock) BPM() float64 {
	return c.bpm
}

// Period returns the length of one beat cycle in seconds, or 0 when the
// clock has no valid BPM.
func (c *Clock) Period() float64 {
	if c.bpm <= 0 {
		return 0
	}
	return 60.0 / c.bpm
}

// Advance accumulates elapsed time. Called once per frame by the host.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Reset zeroes the elapsed time. The host must call this (or SetBPM) on
// every song change, otherwise the phase reads against the previous
// song's downbeat.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// SetBPM switches to a new song tempo and resets the phase so the first
// beat of the new song lands on a boundary.
func (c *Clock) SetBPM(bpm float64) {
	c.bpm = bpm
	c.elapsed = 0
}

// Elapsed returns seconds since the last reset.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Phase returns the position within the current beat cycle, in
// [0, Period). Zero when the clock has no valid BPM.
func (c *Clock) Phase() float64 {
	period := c.Period()
	if period <= 0 {
		return 0
	}
	return math.Mod(c.elapsed, period)
}

// OffsetToNearestBeat returns the distance in seconds from the current
// instant to the closest beat boundary: 0 exactly on a beat, at most half
// the period. With no valid BPM it returns +Inf so grading degrades to
// Miss instead of dividing by zero.
func (c *Clock) OffsetToNearestBeat() float64 {
	period := c.Period()
	if period <= 0 {
		return math.Inf(1)
	}
	phase := math.Mod(c.elapsed, period)
	return math.Min(phase, period-phase)
}
