package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/inkan-dev/inkan/internal/cmd"
	"github.com/inkan-dev/inkan/internal/config"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/theme"
	"github.com/inkan-dev/inkan/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load settings from ~/.inkan/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("inkan"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	runErr := ctx.Run()
	if err := cli.Close(); err != nil {
		logging.Logger.Warn("Failed to close resources", "error", err)
	}

	if runErr != nil {
		logging.Logger.Error("Command failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "%s %v\n", theme.ErrorStyle.Render("error:"), runErr)
		return 1
	}
	return 0
}
