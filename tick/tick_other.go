//go:build !linux && !windows && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !solaris

package tick

import "time"

const active = Nanosecond

// epoch anchors the runtime's monotonic clock reading.
var epoch = time.Now()

// read is offset by one so that a sample taken within the clock's resolution of epoch is never
// zero.
func read() (int64, error) {
	return time.Since(epoch).Nanoseconds() + 1, nil
}

func frequency() (int64, error) {
	return 1e9, nil
}
