// Package config loads and validates elapsed settings
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		prompted      bool
	}

	// DisplayConfig controls how elapsed times are rendered.
	DisplayConfig struct {
		Milliseconds   bool `mapstructure:"milliseconds"`
		FullFormat     bool `mapstructure:"full_format"`
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SettingsConfig holds behavioural settings.
	SettingsConfig struct {
		// Cmd is executed after a repeat is recorded
		Cmd        string `mapstructure:"cmd"`
		AutoResume bool   `mapstructure:"auto_resume"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		RemindEvery time.Duration `mapstructure:"remind_every"`
		Enabled     bool          `mapstructure:"enabled"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		StartTime time.Time
		Title     string
		Discard   bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies the options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// TimeFormat returns the clock layout for wall-clock times.
func (c *Config) TimeFormat() string {
	if c.Display.TwentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}
