// Package machine provides the platform specific pieces of the device
// identity: where the cache record lives by default, how a file is hidden
// from casual inspection and which timing sources feed the generator.
//
// Every capability is implemented per platform family:
//
//   - Windows: %ProgramData%, hidden file attribute, GetTickCount64, process times
//   - macOS: /Users/Shared, owner-only permissions, monotonic clock, process CPU clock
//   - other unix: /var/tmp, owner-only permissions, monotonic clock, process CPU clock
package machine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"
)

// FileName is the name of the cache record in every default location
const FileName = "01K0GPRWF8NAFGZFMYSWT9K0JY.dat"

// counter backs Ticks on platforms without a tick source
var counter atomic.Uint32

// CacheLocations returns the default ordered cache locations for the current platform
func CacheLocations() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{filepath.Join(programData(), FileName)}
	case "darwin":
		return []string{filepath.Join("/Users/Shared", FileName)}
	default:
		return []string{filepath.Join("/var/tmp", FileName)}
	}
}

// Harden hides the file from casual inspection: the hidden attribute on
// Windows, owner-only read/write permissions elsewhere
func Harden(path string) error {
	return harden(path)
}

// Unprotect clears attributes that would prevent overwriting an existing
// file. A missing file is not an error.
func Unprotect(path string) error {
	_, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return unprotect(path)
}

// Ticks returns a platform tick counter truncated to 32 bits
func Ticks() uint32 {
	t, ok := ticks()
	if ok {
		return uint32(t)
	}
	return counter.Add(1) ^ uint32(time.Now().UnixNano())
}

// ProcessClock returns the CPU time consumed by the process in microseconds,
// truncated to 32 bits
func ProcessClock() uint32 {
	d, ok := processClock()
	if !ok {
		return 0
	}
	return uint32(d / time.Microsecond)
}
