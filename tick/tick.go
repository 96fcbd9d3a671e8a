// Package tick reads the fastest counter the build target offers and converts raw counter
// values into seconds. Exactly one Variant is compiled into a binary, chosen by build
// constraints on the target operating system.
package tick

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrClockUnavailable is the cause of the panic raised when the platform clock cannot be read.
// A failed read is unrecoverable: no timestamp taken afterwards can be trusted.
var ErrClockUnavailable = errors.New("tick: platform clock unavailable")

// |||||| VARIANT ||||||

// Variant describes how raw counter values map onto wall-clock time.
type Variant uint8

const (
	// Counter ticks are in arbitrary counter units and must be scaled by Frequency.
	Counter Variant = iota + 1
	// Nanosecond ticks are nanoseconds.
	Nanosecond
	// Microsecond ticks are microseconds.
	Microsecond
)

func (v Variant) String() string {
	switch v {
	case Counter:
		return "counter"
	case Nanosecond:
		return "nanosecond"
	case Microsecond:
		return "microsecond"
	default:
		return "unknown"
	}
}

// |||||| SCALE ||||||

// Scale converts tick counts of a single Variant to and from seconds. All floating point
// division in the module happens here.
type Scale struct {
	Variant Variant
	// Frequency returns counter ticks per second. Only consulted by the Counter variant, and
	// called on every conversion.
	Frequency func() float64
}

// Active returns the Scale of the tick source compiled into this build.
func Active() Scale {
	return Scale{Variant: active, Frequency: Frequency}
}

// Seconds converts ticks to seconds.
func (s Scale) Seconds(ticks int64) float64 {
	switch s.Variant {
	case Counter:
		return float64(ticks) / s.Frequency()
	case Nanosecond:
		return float64(ticks) * 1e-9
	case Microsecond:
		return float64(ticks) * 1e-6
	}
	panic(unknownVariant(s.Variant))
}

// Milliseconds converts ticks to milliseconds.
func (s Scale) Milliseconds(ticks int64) float64 {
	switch s.Variant {
	case Counter:
		return float64(ticks) / s.Frequency() * 1e3
	case Nanosecond:
		return float64(ticks) * 1e-6
	case Microsecond:
		return float64(ticks) * 1e-3
	}
	panic(unknownVariant(s.Variant))
}

// Microseconds converts ticks to microseconds.
func (s Scale) Microseconds(ticks int64) float64 {
	switch s.Variant {
	case Counter:
		return float64(ticks) / s.Frequency() * 1e6
	case Nanosecond:
		return float64(ticks) * 1e-3
	case Microsecond:
		return float64(ticks)
	}
	panic(unknownVariant(s.Variant))
}

// Duration converts ticks to a time.Duration. The fixed variants convert exactly.
func (s Scale) Duration(ticks int64) time.Duration {
	switch s.Variant {
	case Counter:
		return time.Duration(math.Round(float64(ticks) / s.Frequency() * 1e9))
	case Nanosecond:
		return time.Duration(ticks)
	case Microsecond:
		return time.Duration(ticks) * time.Microsecond
	}
	panic(unknownVariant(s.Variant))
}

// Ticks converts a second count to the nearest whole number of ticks.
func (s Scale) Ticks(sec float64) int64 {
	switch s.Variant {
	case Counter:
		return int64(math.Round(sec * s.Frequency()))
	case Nanosecond:
		return int64(math.Round(sec * 1e9))
	case Microsecond:
		return int64(math.Round(sec * 1e6))
	}
	panic(unknownVariant(s.Variant))
}

// FromDuration converts a time.Duration to ticks, rounding to the nearest tick.
func (s Scale) FromDuration(d time.Duration) int64 {
	switch s.Variant {
	case Counter:
		return int64(math.Round(d.Seconds() * s.Frequency()))
	case Nanosecond:
		return int64(d)
	case Microsecond:
		return d.Round(time.Microsecond).Microseconds()
	}
	panic(unknownVariant(s.Variant))
}

func unknownVariant(v Variant) error {
	return errors.Newf("tick: unknown variant %d", v)
}

// |||||| READ ||||||

// Read returns the current raw tick count. The count is only meaningful relative to other
// counts read by the same process. Read panics with an error marked ErrClockUnavailable if the
// platform clock fails.
func Read() int64 {
	return must(read())
}

// Frequency returns the number of ticks per second of the active tick source. For the fixed
// variants this is a constant; for Counter it queries the platform on every call.
func Frequency() float64 {
	return float64(must(frequency()))
}

func must(v int64, err error) int64 {
	if err != nil {
		panic(errors.Mark(err, ErrClockUnavailable))
	}
	return v
}
