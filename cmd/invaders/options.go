package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// options are the runtime settings layered from flags and environment.
type options struct {
	FPS        int    `mapstructure:"fps"`
	Seed       int64  `mapstructure:"seed"`
	ConfigPath string `mapstructure:"config"`
	LogFile    string `mapstructure:"log-file"`
	LogLevel   string `mapstructure:"log-level"`
	Mute       bool   `mapstructure:"mute"`
}

func loadOptions() (options, error) {
	var opts options
	if err := viper.Unmarshal(&opts); err != nil {
		return options{}, fmt.Errorf("failed to read options: %w", err)
	}
	return opts, nil
}

// newLogger builds the logger. The terminal belongs to the game, so logs go
// to a file or nowhere. The returned closer must be called on exit.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           lvl,
	})
	return logger, f, nil
}
