package cmd

import (
	"context"

	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/services"
)

// CommitCmd commits using a rendered commit template
type CommitCmd struct {
	Template string `arg:"" optional:"" help:"Commit template name (selected interactively when omitted)"`
	Ticket   string `short:"t" help:"Ticket number (defaults to the recorded branch context)"`
	Scope    string `short:"s" help:"Scope (defaults to the recorded branch context)"`
	Link     string `short:"l" help:"Link (defaults to the recorded branch context)"`
	Message  string `short:"m" help:"Commit message (prompted when omitted)"`
}

// Run executes the commit command
func (c *CommitCmd) Run(cli *CLI) error {
	ctx := context.Background()

	resolved, err := cli.Container.ConfigurationService.Resolve(ctx, cli.OnceOff)
	if err != nil {
		return err
	}

	result, err := cli.Container.CommitService.Commit(ctx, services.CommitParams{
		Definition:   resolved.Definition,
		Link:         c.Link,
		Message:      c.Message,
		Scope:        c.Scope,
		TemplateName: c.Template,
		Ticket:       c.Ticket,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Commit finished", "template", result.TemplateName, "file", result.TemplatePath)
	return nil
}
