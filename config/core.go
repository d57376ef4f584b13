// Package config manages the typed configuration of a binary.
//
// A configuration struct is registered once with its default values. Every
// leaf field becomes a yaml key, a command line flag and an environment
// variable:
//
//	type Config struct {
//	    Identity identity.Config `yaml:"identity"`
//	}
//
//	identity.locations  ->  --identity-locations  ->  DEVICEID_IDENTITY_LOCATIONS
//
// Precedence is flag, environment, file, default. Values are resolved
// through spf13/viper, the file lives in flag.Path as <name>.yaml and is
// created with the defaults when missing.
//
// All configuration structs must implement the Config interface:
//
//	type Config interface {
//	    Validate() error
//	}
package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/logging"
)

var (
	logger     = logging.GetPackageLogger("config")
	mutex      = &sync.RWMutex{}
	config     Config
	configname string
	onChange   []func(o Config, n Config) error
	lastChange atomic.Int64
	store      = viper.New()
)

// Config is the interface that all configuration structs must implement
// It should contain a Validate method that checks the configuration for errors
type Config interface {
	Validate() error
}

// Register registers a configuration struct and parses its tags
// The name is used as the name of the configuration file and the prefix for the environment variables
func Register(name string, c Config) error {
	if c == nil {
		return apperror.NewError("the configuration provided is nil")
	}

	if reflect.TypeOf(c).Kind() != reflect.Ptr || reflect.TypeOf(c).Elem().Kind() != reflect.Struct {
		return apperror.NewErrorf("the configuration provided is not a pointer to a struct, got %T", c)
	}

	configname = name
	setEnvPrefix(name)

	err := parseStructTags(reflect.ValueOf(c), "")
	if err != nil {
		return apperror.Wrap(err)
	}

	set(c)
	return nil
}

// OnChange registers a function that is called when the configuration changes
func OnChange(f func(o Config, n Config) error) {
	onChange = append(onChange, f)
}

// Get returns the current configuration
func Get() Config {
	mutex.RLock()
	defer mutex.RUnlock()
	return config
}

// Read reads the configuration from the file, validates it and applies it
// If the file does not exist, it creates a new one with the default values
func Read() error {
	if config == nil {
		return apperror.NewError("no configuration registered")
	}

	err := readInConfig()
	if err != nil {
		_, serr := os.Stat(path())
		if !errors.Is(serr, fs.ErrNotExist) {
			return apperror.NewError("reading configuration file failed").AddError(err)
		}

		err = save()
		if err != nil {
			return apperror.NewError("writing default configuration file failed").AddError(err)
		}

		err = readInConfig()
		if err != nil {
			return apperror.NewError("reading configuration file after creation failed").AddError(err)
		}
	}

	change, ok := reflect.New(reflect.TypeOf(config).Elem()).Interface().(Config)
	if !ok {
		return apperror.NewErrorf("creating new instance of %T failed", config)
	}

	err = unmarshal(change)
	if err != nil {
		return apperror.NewErrorf("unmarshalling configuration data in %T failed", config).AddError(err)
	}

	err = change.Validate()
	if err != nil {
		return apperror.Wrap(err)
	}

	o := Get()
	set(change)
	for _, f := range onChange {
		err = f(o, change)
		if err != nil {
			return apperror.Wrap(err)
		}
	}

	return nil
}

// Write validates the configuration, applies it and writes it to the file
func Write(change Config) error {
	if change == nil {
		return apperror.NewError("the configuration provided is nil")
	}

	err := change.Validate()
	if err != nil {
		return apperror.Wrap(err)
	}

	o := Get()
	set(change)
	err = save()
	if err != nil {
		return apperror.Wrap(err)
	}

	for _, f := range onChange {
		err = f(o, change)
		if err != nil {
			return apperror.Wrap(err)
		}
	}

	return nil
}

// Watch watches the configuration file for changes and re-reads it
// Changes within 1 second of the previous one are ignored, editors tend to
// write a file several times when saving
func Watch() {
	watch(func(_ fsnotify.Event) {
		if time.Now().UnixMilli()-lastChange.Load() < 1000 {
			return
		}
		lastChange.Store(time.Now().UnixMilli())
		err := Read()
		if err != nil {
			logger.Error().Err(err).Msg("failed to read configuration")
			return
		}
		logger.Info().Field("file", store.ConfigFileUsed()).Msg("configuration reloaded")
	})
}

// Reset clears the global state of the config package
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	config = nil
	configname = ""
	onChange = nil
	lastChange.Store(0)
	store = viper.New()
}

// Changed checks if two configuration values are different by comparing their reflection values.
func Changed(o, n any) bool {
	if o == nil && n == nil {
		return false
	}

	if o == nil || n == nil {
		return true
	}

	ov := reflect.ValueOf(o)
	nv := reflect.ValueOf(n)

	if ov.Kind() == reflect.Ptr && !ov.IsNil() {
		ov = ov.Elem()
	}
	if nv.Kind() == reflect.Ptr && !nv.IsNil() {
		nv = nv.Elem()
	}

	if ov.Kind() != nv.Kind() {
		return true
	}

	return !reflect.DeepEqual(ov.Interface(), nv.Interface())
}

// set applies the configuration to the global variable
func set(appConfig Config) {
	mutex.Lock()
	defer mutex.Unlock()
	config = appConfig
}
