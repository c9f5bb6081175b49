package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyMilliseconds       = "display.milliseconds"
	keyFullFormat         = "display.full_format"
	keyDarkTheme          = "display.dark_theme"
	keyTwentyFourHour     = "display.24hr_clock"
	keyAutoResume         = "settings.auto_resume"
	keyCmd                = "settings.cmd"
	keyNotifyEnabled      = "notifications.enabled"
	keyNotifyRemindEvery  = "notifications.remind_every"
	defaultRemindInterval = "30m"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if c.prompted {
			v.Set(keyFullFormat, c.Display.FullFormat)
			v.Set(keyMilliseconds, c.Display.Milliseconds)
			v.Set(keyAutoResume, c.Settings.AutoResume)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyMilliseconds, false)
	v.SetDefault(keyFullFormat, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyAutoResume, false)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyNotifyRemindEvery, defaultRemindInterval)
}
