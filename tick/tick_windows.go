//go:build windows

package tick

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

const active = Counter

var (
	modkernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = modkernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = modkernel32.NewProc("QueryPerformanceFrequency")
)

func read() (int64, error) {
	var count int64
	if r, _, err := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&count))); r == 0 {
		return 0, errors.Wrap(err, "QueryPerformanceCounter")
	}
	return count, nil
}

// frequency is fixed at boot on every supported Windows release, but it is queried on each
// call so that no conversion depends on a stale cached value.
func frequency() (int64, error) {
	var freq int64
	if r, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq))); r == 0 {
		return 0, errors.Wrap(err, "QueryPerformanceFrequency")
	}
	if freq <= 0 {
		return 0, errors.Newf("QueryPerformanceFrequency returned %d", freq)
	}
	return freq, nil
}
