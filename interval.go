package itimer

import (
	"time"

	"itimer/tick"
)

// |||||| INTERVAL ||||||

// Interval is a signed duration measured in the native ticks of the active tick source.
// Arithmetic on Intervals is exact integer arithmetic; rounding happens once, when the
// Interval is read in seconds, milliseconds or microseconds. Overflow is not checked: at
// nanosecond resolution a single Interval spans roughly 292 years.
type Interval struct {
	ticks int64
}

// FromSeconds returns the Interval closest to sec seconds.
func FromSeconds(sec float64) Interval {
	return Interval{ticks: tick.Active().Ticks(sec)}
}

// FromDuration returns the Interval closest to d.
func FromDuration(d time.Duration) Interval {
	return Interval{ticks: tick.Active().FromDuration(d)}
}

// Seconds returns the length of i in seconds.
func (i Interval) Seconds() float64 {
	return tick.Active().Seconds(i.ticks)
}

// Milliseconds returns the length of i in milliseconds.
func (i Interval) Milliseconds() float64 {
	return tick.Active().Milliseconds(i.ticks)
}

// Microseconds returns the length of i in microseconds.
func (i Interval) Microseconds() float64 {
	return tick.Active().Microseconds(i.ticks)
}

// Duration converts i to a time.Duration.
func (i Interval) Duration() time.Duration {
	return tick.Active().Duration(i.ticks)
}

func (i Interval) String() string {
	return i.Duration().String()
}

// Add returns i+j.
func (i Interval) Add(j Interval) Interval {
	return Interval{ticks: i.ticks + j.ticks}
}

// Sub returns i-j.
func (i Interval) Sub(j Interval) Interval {
	return Interval{ticks: i.ticks - j.ticks}
}

// Accumulate adds j to i in place.
func (i *Interval) Accumulate(j Interval) {
	i.ticks += j.ticks
}

// Deduct subtracts j from i in place.
func (i *Interval) Deduct(j Interval) {
	i.ticks -= j.ticks
}

// IsZero reports whether i spans no time.
func (i Interval) IsZero() bool {
	return i.ticks == 0
}

// Negative reports whether i runs backwards, as when two Timestamps are subtracted in the
// wrong order or the underlying clock was stepped back.
func (i Interval) Negative() bool {
	return i.ticks < 0
}
