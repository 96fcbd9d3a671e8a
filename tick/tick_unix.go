//go:build darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package tick

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

const active = Microsecond

// read uses gettimeofday, which follows wall-clock adjustments. Differences are only
// non-negative while the system clock is not stepped backwards.
func read() (int64, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return 0, errors.Wrap(err, "gettimeofday")
	}
	sec, nsec := tv.Unix()
	return sec*1e6 + nsec/1e3, nil
}

func frequency() (int64, error) {
	return 1e6, nil
}
