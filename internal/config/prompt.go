package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FullFormat   bool
	Milliseconds bool
	AutoResume   bool
}

// WithPromptConfig returns an Option that asks for the main display settings
// when no config file exists yet. It must precede WithViperConfig so that the
// answers are written to the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	_ = putils.BulletListFromString(`Answer the prompts below to configure elapsed for the first time.
Edit the config file with 'elapsed edit-config' to change any settings later.`, " ").
		Render()

	pterm.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Always show hours (HH:MM:SS)?").
				Value(&opts.FullFormat),
			huh.NewConfirm().
				Title("Show tenths of a second?").
				Value(&opts.Milliseconds),
			huh.NewConfirm().
				Title("Resume paused timers automatically when watching?").
				Value(&opts.AutoResume),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.FullFormat = opts.FullFormat
	c.Display.Milliseconds = opts.Milliseconds
	c.Settings.AutoResume = opts.AutoResume
	c.prompted = true
}
