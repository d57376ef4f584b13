//go:build !unix && !windows

package machine

import (
	"os"
	"time"
)

func harden(path string) error {
	return os.Chmod(path, 0o600)
}

func unprotect(path string) error {
	return os.Chmod(path, 0o600)
}

func ticks() (uint64, bool) {
	return 0, false
}

func processClock() (time.Duration, bool) {
	return 0, false
}

func programData() string {
	return ""
}
