//go:build windows

package machine

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const protective = windows.FILE_ATTRIBUTE_READONLY | windows.FILE_ATTRIBUTE_SYSTEM

func harden(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, windows.FILE_ATTRIBUTE_HIDDEN)
}

// unprotect clears the read-only and system attributes
func unprotect(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}

	if attrs&protective == 0 {
		return nil
	}
	return windows.SetFileAttributes(p, attrs&^protective)
}

func ticks() (uint64, bool) {
	return windows.GetTickCount64(), true
}

func processClock() (time.Duration, bool) {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return 0, false
	}
	return duration(kernel) + duration(user), true
}

// duration converts a FILETIME interval in 100ns units
func duration(ft windows.Filetime) time.Duration {
	return time.Duration((int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)) * 100)
}

// programData resolves the ProgramData known folder
func programData() string {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, windows.KF_FLAG_DEFAULT)
	if err == nil && dir != "" {
		return dir
	}
	if dir = os.Getenv("ProgramData"); dir != "" {
		return dir
	}
	return `C:\ProgramData`
}
