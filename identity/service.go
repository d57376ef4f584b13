package identity

import (
	"errors"
	"sync"

	"github.com/valentin-kaiser/go-deviceid/apperror"
	"golang.org/x/sync/singleflight"
)

// Service hands out the device identifier, creating and persisting it on
// first use
type Service struct {
	store     *Store
	generator *Generator
	group     singleflight.Group
}

var (
	std     *Service
	stdErr  error
	stdOnce sync.Once
)

// Get returns the device identifier using DefaultConfig
func Get() (Identifier, error) {
	stdOnce.Do(func() {
		std, stdErr = New(DefaultConfig())
	})
	if stdErr != nil {
		return "", stdErr
	}
	return std.Identifier()
}

// New creates a service from the configuration
func New(c *Config) (*Service, error) {
	if c == nil {
		return nil, apperror.NewError("identity configuration is nil")
	}

	err := c.Validate()
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	store := NewStore(c.Locations, []byte(c.Salt)).WithStrict(c.Strict)
	return NewService(store, NewGenerator()), nil
}

// NewService creates a service from its parts
func NewService(store *Store, generator *Generator) *Service {
	return &Service{
		store:     store,
		generator: generator,
	}
}

// Identifier returns the cached identifier or generates, persists and
// returns a new one. Concurrent callers in one process share a single
// resolution and receive the same value. The only error is one matching
// ErrPersistence.
func (s *Service) Identifier() (Identifier, error) {
	v, err, _ := s.group.Do("identifier", func() (interface{}, error) {
		return s.resolve()
	})
	if err != nil {
		return "", err
	}
	return v.(Identifier), nil
}

func (s *Service) resolve() (Identifier, error) {
	id, err := s.store.Read()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", apperror.Wrap(err)
	}

	id = s.generator.Generate()
	logger.Info().Field("locations", len(s.store.Locations())).Msg("no cached identifier, generated a new one")

	err = s.store.Write(id)
	if err != nil {
		return "", apperror.Wrap(err)
	}

	return id, nil
}
