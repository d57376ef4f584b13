// Command deviceid prints the persistent identifier of this machine.
//
// On the first run the identifier is generated and written to the first
// writable cache location, every following run reads it back. When the
// identifier cannot be persisted anywhere the command leaves a diagnostic
// report in the data directory and exits with status 1.
//
//	deviceid [--path ./data] [--identity-locations /var/tmp/id.dat,...]
//	deviceid --decode ./data/<report>.debug
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/config"
	"github.com/valentin-kaiser/go-deviceid/diag"
	"github.com/valentin-kaiser/go-deviceid/flag"
	"github.com/valentin-kaiser/go-deviceid/identity"
	"github.com/valentin-kaiser/go-deviceid/logging"
	"github.com/valentin-kaiser/go-deviceid/logging/log"
	"github.com/valentin-kaiser/go-deviceid/version"
)

// Config is the configuration of the deviceid command, stored in
// <path>/deviceid.yaml
type Config struct {
	Identity identity.Config `yaml:"identity"`
	Log      LogConfig       `yaml:"log"`
}

// LogConfig selects the log level and the optional rotating log file
type LogConfig struct {
	Level string             `yaml:"level" usage:"Log level (trace, debug, info, warn, error, disabled)"`
	File  logging.FileConfig `yaml:"file"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return c.Identity.Validate()
}

func defaults() *Config {
	return &Config{
		Identity: *identity.DefaultConfig(),
		Log: LogConfig{
			Level: logging.WarnLevel.String(),
			File: logging.FileConfig{
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
		},
	}
}

var (
	decode string
	exit   = os.Exit
)

func main() {
	err := config.Register("deviceid", defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: %v\n", err)
		exit(1)
		return
	}

	flag.Register("decode", &decode, "Decodes a diagnostic report and prints its content")
	flag.Init()

	if flag.Version {
		r := version.Get()
		fmt.Fprintf(os.Stdout, "deviceid %s (%s) built %s, %s %s\n", version.String(), r.GitShort, r.BuildDate, r.GoVersion, r.Platform)
		exit(0)
		return
	}

	if decode != "" {
		reason, err := diag.Decode(decode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL ERROR: %v\n", err)
			exit(1)
			return
		}
		fmt.Fprintln(os.Stdout, reason)
		exit(0)
		return
	}

	config.OnChange(func(_ config.Config, n config.Config) error {
		c, ok := n.(*Config)
		if !ok {
			return apperror.NewErrorf("unexpected configuration type %T", n)
		}
		setupLogging(c.Log)
		return nil
	})

	err = config.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: %v\n", err)
		exit(1)
		return
	}

	c, ok := config.Get().(*Config)
	if !ok {
		fmt.Fprintf(os.Stderr, "FATAL ERROR: unexpected configuration type %T\n", config.Get())
		exit(1)
		return
	}

	exit(run(&c.Identity, flag.Path, os.Stdout, os.Stderr))
}

// setupLogging installs the zerolog console adapter, adding the rotating
// log file when one is configured
func setupLogging(c LogConfig) {
	var adapter logging.Adapter
	file := logging.NewFileWriter(flag.Path, c.File)
	if file != nil {
		adapter = logging.NewConsoleAdapter(file)
	} else {
		adapter = logging.NewConsoleAdapter(nil)
	}

	level := logging.ParseLevel(c.Level)
	if flag.Debug {
		level = logging.DebugLevel
		logging.SetDebug(true)
	}

	logging.SetGlobalAdapter(adapter.SetLevel(level))
	log.Debug().Field("version", version.GitTag).Field("path", flag.Path).Msg("logging configured")
}

// run prints the identifier and returns the exit status. On failure it
// writes a diagnostic report into dir.
func run(c *identity.Config, dir string, stdout, stderr io.Writer) int {
	svc, err := identity.New(c)
	if err == nil {
		var id identity.Identifier
		id, err = svc.Identifier()
		if err == nil {
			fmt.Fprintln(stdout, id)
			return 0
		}
	}

	log.Error().Err(err).Msg("device identifier unavailable")

	path, rerr := diag.Report(dir, err.Error())
	if rerr != nil {
		log.Error().Err(rerr).Msg("writing diagnostic report failed")
	} else {
		log.Info().Field("report", path).Msg("diagnostic report written")
	}

	fmt.Fprintf(stderr, "FATAL ERROR: %v\n", err)
	return 1
}
