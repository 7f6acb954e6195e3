package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/theme"
)

// ConfigCmd manages template definitions
type ConfigCmd struct {
	Show  ConfigShowCmd  `cmd:"" help:"Show registered configurations" default:"1"`
	Add   ConfigAddCmd   `cmd:"" help:"Register a template definition and make it active"`
	Set   ConfigSetCmd   `cmd:"" help:"Switch the active configuration"`
	Reset ConfigResetCmd `cmd:"" help:"Switch back to the default configuration"`
}

// ConfigShowCmd lists registered configurations
type ConfigShowCmd struct{}

// Run executes the show command
func (c *ConfigShowCmd) Run(cli *CLI) error {
	overview, err := cli.Container.ConfigurationService.Show(context.Background(), cli.OnceOff)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, entry := range overview.Entries {
		cfg := entry.Configuration
		status := theme.DisabledStyle.Render(string(cfg.Status))
		if cfg.IsActive() {
			status = theme.ActiveStyle.Render(string(cfg.Status))
		}

		path := theme.PathStyle.Render(cfg.Path)
		if !entry.Readable {
			path = theme.WarningStyle.Render(cfg.Path + " (unreadable)")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", theme.NameStyle.Render(cfg.Key.String()), status, path)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if overview.Overridden() {
		fmt.Println()
		fmt.Println(theme.WarningStyle.Render(fmt.Sprintf(
			"Active configuration %s is overridden by %s configuration %s",
			overview.Persisted.Key, overview.Effective.Key, overview.Effective.Path)))
	}

	return nil
}

// ConfigAddCmd registers a user template definition
type ConfigAddCmd struct {
	Name string `arg:"" help:"Configuration name"`
	Path string `arg:"" help:"Path to the template definition file"`
}

// Run executes the add command
func (c *ConfigAddCmd) Run(cli *CLI) error {
	active, err := cli.Container.ConfigurationService.Add(context.Background(), c.Name, c.Path)
	if err != nil {
		return err
	}

	printActive(active)
	return nil
}

// ConfigSetCmd switches the active configuration
type ConfigSetCmd struct {
	Name string `arg:"" optional:"" help:"Configuration name (selected interactively when omitted)"`
}

// Run executes the set command
func (c *ConfigSetCmd) Run(cli *CLI) error {
	active, err := cli.Container.ConfigurationService.Set(context.Background(), c.Name)
	if err != nil {
		return err
	}

	printActive(active)
	return nil
}

// ConfigResetCmd switches back to the default configuration
type ConfigResetCmd struct{}

// Run executes the reset command
func (c *ConfigResetCmd) Run(cli *CLI) error {
	active, err := cli.Container.ConfigurationService.Reset(context.Background())
	if err != nil {
		return err
	}

	printActive(active)
	return nil
}

func printActive(cfg *domain.NamedConfiguration) {
	fmt.Printf("Active configuration: %s %s\n",
		theme.ActiveStyle.Render(cfg.Key.String()),
		theme.PathStyle.Render(cfg.Path))
}
