package config

import (
	"time"

	"github.com/kballard/go-shellquote"
)

var (
	minRemindInterval = 1 * time.Minute
	maxRemindInterval = 24 * time.Hour
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateNotifications(); err != nil {
		return err
	}

	return c.validateSettings()
}

func (c *Config) validateNotifications() error {
	d := c.Notifications.RemindEvery
	if d == 0 {
		return nil
	}

	if d < minRemindInterval || d > maxRemindInterval {
		return errInvalidRemindInterval.Fmt(
			minRemindInterval,
			maxRemindInterval,
			d,
		)
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.Cmd == "" {
		return nil
	}

	if _, err := shellquote.Split(c.Settings.Cmd); err != nil {
		return errInvalidCmd.Wrap(err)
	}

	return nil
}
