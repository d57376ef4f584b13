package identity

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/codec"
	"github.com/valentin-kaiser/go-deviceid/logging"
	"github.com/valentin-kaiser/go-deviceid/machine"
)

// maxRecord bounds how much of a cache file is read
const maxRecord = 4096

var (
	logger = logging.GetPackageLogger("identity")

	// ErrNotFound is returned by Store.Read when no location holds a valid record
	ErrNotFound = apperror.NewError("no valid identifier in any cache location")
	// ErrPersistence is returned when no location accepted the record
	ErrPersistence = apperror.NewError("identifier could not be persisted in any cache location")
)

// Store reads and writes the cache record in an ordered list of locations
type Store struct {
	locations []string
	salt      []byte
	strict    bool
}

// NewStore creates a store for the given locations and obfuscation salt
func NewStore(locations []string, salt []byte) *Store {
	return &Store{
		locations: append([]string{}, locations...),
		salt:      append([]byte{}, salt...),
	}
}

// WithStrict requires cached identifiers to pass Valid instead of only
// HasSentinels
func (s *Store) WithStrict(strict bool) *Store {
	s.strict = strict
	return s
}

// Locations returns the configured locations in order
func (s *Store) Locations() []string {
	return append([]string{}, s.locations...)
}

// Read returns the identifier of the first location holding a valid record.
// Unreadable, undecodable and malformed records are skipped.
func (s *Store) Read() (Identifier, error) {
	for i, location := range s.locations {
		id, err := s.read(location)
		if err != nil {
			logger.Debug().Err(err).Fields(logging.F("location", i), logging.F("path", location)).Msg("cache location skipped")
			continue
		}

		logger.Trace().Field("path", location).Msg("identifier read from cache")
		return id, nil
	}

	return "", ErrNotFound
}

func (s *Store) read(path string) (Identifier, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", apperror.NewError("opening cache file failed").AddError(err)
	}
	defer func() {
		_ = file.Close()
	}()

	line, err := bufio.NewReader(io.LimitReader(file, maxRecord)).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", apperror.NewError("reading cache record failed").AddError(err)
	}

	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	data, err := codec.FromHex(line)
	if err != nil {
		return "", apperror.NewError("decoding cache record failed").AddError(err)
	}

	id := Identifier(codec.Deobfuscate(data, s.salt))
	switch {
	case s.strict && !id.Valid():
		return "", apperror.NewError("cache record is not a well formed identifier")
	case !id.HasSentinels():
		return "", apperror.NewErrorf("cache record has an unexpected shape (%d bytes)", len(data))
	}

	return id, nil
}

// Write stores the identifier in the first location that accepts it. When
// every location refuses, the returned error matches ErrPersistence and
// carries the cause of each location.
func (s *Store) Write(id Identifier) error {
	record := []byte(codec.ToHex(codec.Obfuscate([]byte(id), s.salt)) + "\n")

	causes := make([]error, 0, len(s.locations))
	for i, location := range s.locations {
		err := s.write(location, record)
		if err != nil {
			logger.Warn().Err(err).Fields(logging.F("location", i), logging.F("path", location)).Msg("cache location refused the identifier")
			causes = append(causes, err)
			continue
		}

		logger.Debug().Field("path", location).Msg("identifier written to cache")
		return nil
	}

	return apperror.NewErrorf("writing identifier to %d cache locations failed", len(s.locations)).
		AddError(ErrPersistence).
		AddError(causes...)
}

func (s *Store) write(path string, record []byte) error {
	path = filepath.Clean(path)
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return apperror.NewError("creating cache directory failed").AddError(err)
	}

	info, err := os.Lstat(path)
	existed := err == nil
	if existed && info.Mode()&fs.ModeSymlink != 0 {
		// the link itself is replaced, its target is never written
		err = os.Remove(path)
		if err != nil {
			return apperror.NewError("removing symbolic link at cache location failed").AddError(err)
		}
		existed = false
	}
	if existed {
		err = machine.Unprotect(path)
		if err != nil {
			logger.Debug().Err(err).Field("path", path).Msg("clearing file protection failed")
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil && existed {
		logger.Debug().Err(err).Field("path", path).Msg("replacing existing cache file")
		rerr := os.Remove(path)
		if rerr == nil || errors.Is(rerr, fs.ErrNotExist) {
			file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		}
	}
	if err != nil {
		return apperror.NewError("opening cache file for writing failed").AddError(err)
	}

	_, err = file.Write(record)
	if err != nil {
		_ = file.Close()
		return apperror.NewError("writing cache record failed").AddError(err)
	}

	err = file.Close()
	if err != nil {
		return apperror.NewError("closing cache file failed").AddError(err)
	}

	err = machine.Harden(path)
	if err != nil {
		logger.Warn().Err(err).Field("path", path).Msg("hiding cache file failed")
	}

	return nil
}
