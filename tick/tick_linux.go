//go:build linux

package tick

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

const active = Nanosecond

func read() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, errors.Wrap(err, "clock_gettime(CLOCK_MONOTONIC)")
	}
	return ts.Nano(), nil
}

func frequency() (int64, error) {
	return 1e9, nil
}
