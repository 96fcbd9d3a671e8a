// Package itimer measures elapsed time with the highest resolution counter the build target
// offers. A Timestamp is an opaque sample of that counter, and the difference of two
// Timestamps is an Interval. Raw counter values never leave the package, and conversion to
// seconds happens only when an Interval is read.
package itimer

import "itimer/tick"

// |||||| TIME STAMP ||||||

// Timestamp is a sample of the platform tick counter relative to an unspecified but fixed
// epoch. Timestamps are only comparable with other Timestamps taken by the same process. The
// zero value is a sentinel and not a valid sample.
type Timestamp struct {
	ticks int64
}

// Now returns the current Timestamp. It panics with an error marked tick.ErrClockUnavailable
// if the platform clock cannot be read.
func Now() Timestamp {
	return Timestamp{ticks: tick.Read()}
}

// Reset rebases t to the current instant.
func (t *Timestamp) Reset() {
	*t = Now()
}

// Begin rebases t to the current instant and returns the new value.
func (t *Timestamp) Begin() Timestamp {
	t.Reset()
	return *t
}

// End returns the Interval elapsed since t was last set. It does not modify t, so it can be
// called repeatedly against the same mark.
func (t Timestamp) End() Interval {
	return Now().Sub(t)
}

// Sub returns the Interval t-t0. The Interval is negative if t0 was sampled after t.
func (t Timestamp) Sub(t0 Timestamp) Interval {
	return Interval{ticks: t.ticks - t0.ticks}
}

// IsZero reports whether t is the zero sentinel.
func (t Timestamp) IsZero() bool {
	return t.ticks == 0
}
