//go:build unix

package machine

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const ownerOnly = 0o600

func harden(path string) error {
	return os.Chmod(path, ownerOnly)
}

// unprotect restores the owner write bit on a read-only record
func unprotect(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode&0o200 != 0 {
		return nil
	}
	return os.Chmod(path, mode|0o200)
}

func ticks() (uint64, bool) {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		return 0, false
	}
	return uint64(ts.Nano()), true
}

func processClock() (time.Duration, bool) {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts)
	if err != nil {
		return 0, false
	}
	return time.Duration(ts.Nano()), true
}

func programData() string {
	return ""
}
