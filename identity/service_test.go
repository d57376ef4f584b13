package identity_test

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valentin-kaiser/go-deviceid/identity"
)

// counting returns a generator whose output changes on every call
func counting() *identity.Generator {
	var n atomic.Uint32
	return identity.NewGenerator().WithEntropy(func() identity.Candidates {
		i := n.Add(1)
		return identity.Candidates{i, i * 3, i * 7, i * 11, i * 13}
	})
}

func newService(t *testing.T, locations ...string) *identity.Service {
	t.Helper()
	return identity.NewService(identity.NewStore(locations, []byte(testSalt)), counting())
}

func TestNew(t *testing.T) {
	_, err := identity.New(nil)
	require.Error(t, err)

	_, err = identity.New(&identity.Config{Salt: testSalt})
	require.Error(t, err, "locations are required")

	_, err = identity.New(&identity.Config{Locations: []string{"relative/id.dat"}, Salt: testSalt})
	require.Error(t, err, "locations must be absolute")

	_, err = identity.New(&identity.Config{Locations: []string{filepath.Join(t.TempDir(), "id.dat")}})
	require.Error(t, err, "salt is required")

	svc, err := identity.New(&identity.Config{Locations: []string{filepath.Join(t.TempDir(), "id.dat")}, Salt: testSalt})
	require.NoError(t, err)

	id, err := svc.Identifier()
	require.NoError(t, err)
	assert.True(t, id.Valid())
}

func TestDefaultConfig(t *testing.T) {
	c := identity.DefaultConfig()
	assert.Equal(t, identity.DefaultSalt, c.Salt)
	assert.False(t, c.Strict)
	require.NoError(t, c.Validate())
}

func TestIdentifierIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.dat")
	svc := newService(t, path)

	first, err := svc.Identifier()
	require.NoError(t, err)
	assert.True(t, first.Valid())

	second, err := svc.Identifier()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := newService(t, path).Identifier()
	require.NoError(t, err)
	assert.Equal(t, first, third, "a new process reads the same identifier")
}

func TestIdentifierSelfRepair(t *testing.T) {
	tests := map[string]func(t *testing.T, path string){
		"deleted": func(t *testing.T, path string) {
			require.NoError(t, os.Remove(path))
		},
		"directory removed": func(t *testing.T, path string) {
			require.NoError(t, os.RemoveAll(filepath.Dir(path)))
		},
		"corrupted": func(t *testing.T, path string) {
			require.NoError(t, os.WriteFile(path, []byte{0x00, 0x9f, 0xfe, 0x42, '\n', 0x13}, 0o600))
		},
		"truncated": func(t *testing.T, path string) {
			require.NoError(t, os.Truncate(path, 30))
		},
		"emptied": func(t *testing.T, path string) {
			require.NoError(t, os.Truncate(path, 0))
		},
	}

	for name, damage := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache", "id.dat")
			svc := newService(t, path)

			original, err := svc.Identifier()
			require.NoError(t, err)

			damage(t, path)

			repaired, err := svc.Identifier()
			require.NoError(t, err)
			assert.True(t, repaired.Valid())
			assert.NotEqual(t, original, repaired)

			again, err := svc.Identifier()
			require.NoError(t, err)
			assert.Equal(t, repaired, again, "the repaired record is used by the following call")
		})
	}
}

func TestIdentifierFallsBackToLaterLocation(t *testing.T) {
	second := filepath.Join(t.TempDir(), "id.dat")
	svc := newService(t, unwritable(t), second)

	id, err := svc.Identifier()
	require.NoError(t, err)

	stored, err := identity.NewStore([]string{second}, []byte(testSalt)).Read()
	require.NoError(t, err)
	assert.Equal(t, id, stored)
}

func TestIdentifierPersistenceFailure(t *testing.T) {
	svc := newService(t, unwritable(t), unwritable(t))

	id, err := svc.Identifier()
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrPersistence)
	assert.Empty(t, id, "no in-memory identifier is handed out")
}

func TestIdentifierConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.dat")
	svc := newService(t, path)

	const callers = 32
	results := make([]identity.Identifier, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := svc.Identifier()
			assert.NoError(t, err)
			results[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		assert.Equal(t, results[0], id)
	}

	stored, err := identity.NewStore([]string{path}, []byte(testSalt)).Read()
	require.NoError(t, err)
	assert.Equal(t, results[0], stored)
}
