package identity

import (
	"path/filepath"

	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/machine"
)

// DefaultSalt is the obfuscation salt of the cache record
const DefaultSalt = "uqZyZAhof3Kp"

// Config holds the identity settings.
// It can be registered with the config package or embedded in another
// configuration struct.
type Config struct {
	Locations []string `yaml:"locations" usage:"Ordered list of absolute cache file paths"`
	Salt      string   `yaml:"salt" usage:"Salt used to obfuscate the cache record"`
	Strict    bool     `yaml:"strict" usage:"Only accept fully well formed identifiers from the cache"`
}

// DefaultConfig returns the platform default locations and the default salt
func DefaultConfig() *Config {
	return &Config{
		Locations: machine.CacheLocations(),
		Salt:      DefaultSalt,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Locations) == 0 {
		return apperror.NewError("at least one cache location is required")
	}

	for _, location := range c.Locations {
		if !filepath.IsAbs(location) {
			return apperror.NewErrorf("cache location %q is not an absolute path", location)
		}
	}

	if c.Salt == "" {
		return apperror.NewError("salt is required")
	}

	return nil
}
