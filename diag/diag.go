// Package diag writes the diagnostic report left behind when the program
// terminates on a fatal error.
//
// The reason is masked with a repeating key so that it is not readable at a
// glance, and written to a randomly named file with the ".debug" extension.
// Decode reverses the mask.
package diag

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/codec"
	"github.com/valentin-kaiser/go-deviceid/logging"
)

// DefaultKey masks the report content
const DefaultKey = "gDjXkAP0Aw"

// Extension is appended to every report file name
const Extension = ".debug"

var logger = logging.GetPackageLogger("diag")

// Report masks the reason and writes it to a new file in dir.
// It returns the path of the written report.
func Report(dir, reason string) (string, error) {
	if dir == "" {
		dir = "."
	}

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return "", apperror.NewError("creating report directory failed").AddError(err)
	}

	path := filepath.Join(dir, uuid.NewString()+Extension)
	err = os.WriteFile(path, codec.Mask([]byte(reason), []byte(DefaultKey)), 0o600)
	if err != nil {
		return "", apperror.NewError("writing diagnostic report failed").AddError(err)
	}

	logger.Debug().Field("path", path).Msg("diagnostic report written")
	return path, nil
}

// Decode reads a report and returns the unmasked reason
func Decode(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", apperror.NewError("reading diagnostic report failed").AddError(err)
	}

	return string(bytes.TrimRight(codec.Mask(data, []byte(DefaultKey)), "\x00")), nil
}
