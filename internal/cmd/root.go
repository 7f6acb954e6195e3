package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/inkan-dev/inkan/internal/config"
	"github.com/inkan-dev/inkan/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	OnceOff     string           `name:"config" short:"c" help:"Template definition file to use for this invocation only" placeholder:"PATH"`
	Prompt      string           `help:"Ask for missing values interactively" enum:"enable,disable" default:"enable" env:"INKAN_PROMPT"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Checkout  CheckoutCmd  `cmd:"" help:"Create or switch to a branch and record its context"`
	Context   ContextCmd   `cmd:"" aliases:"record-context" help:"Record context for the current branch"`
	Commit    CommitCmd    `cmd:"" help:"Commit using a rendered commit template"`
	Config    ConfigCmd    `cmd:"" help:"Manage template definitions (show, add, set, reset)"`
	Templates TemplatesCmd `cmd:"" help:"List the commit templates of the current configuration"`
	Settings  SettingsCmd  `cmd:"" help:"Manage settings (meta, set)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only apply while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("INKAN_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("INKAN_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Prompt == config.PromptEnable {
			if _, hasEnv := os.LookupEnv("INKAN_PROMPT"); !hasEnv {
				if c.settings.Prompt != "" {
					c.Prompt = c.settings.Prompt
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	logging.Logger.Debug("CLI configured",
		"prompt", c.Prompt,
		"once_off", c.OnceOff,
		"max_log_files", c.MaxLogFiles)

	// Created after logging so GORM's logger has a destination
	container, err := NewContainer(c.Prompt == config.PromptEnable)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
