package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/flag"

	"gopkg.in/yaml.v2"
)

// path returns the location of the configuration file
func path() string {
	return filepath.Join(flag.Path, configname+".yaml")
}

func readInConfig() error {
	mutex.Lock()
	defer mutex.Unlock()

	if configname == "" {
		return apperror.NewError("config name must be set")
	}

	store.SetConfigFile(path())
	store.SetConfigType("yaml")
	return store.ReadInConfig()
}

func watch(onChange func(fsnotify.Event)) {
	mutex.Lock()
	defer mutex.Unlock()

	store.OnConfigChange(onChange)
	store.WatchConfig()
}

// save writes the current configuration to the file
func save() error {
	err := os.MkdirAll(flag.Path, 0750)
	if err != nil {
		return apperror.NewError("creating configuration directory failed").AddError(err)
	}

	mutex.RLock()
	data, err := yaml.Marshal(config)
	mutex.RUnlock()
	if err != nil {
		return apperror.NewError("marshalling configuration data failed").AddError(err)
	}

	file, err := os.OpenFile(filepath.Clean(path()), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return apperror.NewError("opening configuration file failed").AddError(err)
	}

	_, err = file.Write(data)
	if err != nil {
		_ = file.Close()
		return apperror.NewError("writing configuration data to file failed").AddError(err)
	}

	err = file.Close()
	if err != nil {
		return apperror.NewError("closing configuration file failed").AddError(err)
	}

	return nil
}
