package logging

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig describes a rotating log file
type FileConfig struct {
	Name       string `yaml:"name" usage:"Log file name inside the data directory, empty disables file logging"`
	MaxSize    int    `yaml:"max-size" usage:"Maximum size in megabytes before the log file is rotated"`
	MaxBackups int    `yaml:"max-backups" usage:"Number of rotated log files to keep"`
	MaxAge     int    `yaml:"max-age" usage:"Number of days to keep rotated log files"`
	Compress   bool   `yaml:"compress" usage:"Compress rotated log files"`
}

// NewFileWriter returns a rotating writer for the log file in dir.
// It returns nil when no file name is configured.
func NewFileWriter(dir string, c FileConfig) *lumberjack.Logger {
	if c.Name == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, c.Name),
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}
