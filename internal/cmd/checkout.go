package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkan-dev/inkan/internal/services"
	"github.com/inkan-dev/inkan/internal/template"
	"github.com/inkan-dev/inkan/internal/theme"
)

// CheckoutCmd creates or switches to a branch and records its context
type CheckoutCmd struct {
	Name   string `arg:"" optional:"" help:"Branch name (composed from the branch template when omitted)"`
	Ticket string `short:"t" help:"Ticket number (defaults to the branch name)"`
	Scope  string `short:"s" help:"Scope of the change"`
	Link   string `short:"l" help:"Link to the ticket"`
}

// Run executes the checkout command
func (c *CheckoutCmd) Run(cli *CLI) error {
	ctx := context.Background()

	// The branch template is only needed to compose a missing name
	var def *template.Definition
	if strings.TrimSpace(c.Name) == "" {
		resolved, err := cli.Container.ConfigurationService.Resolve(ctx, cli.OnceOff)
		if err != nil {
			return err
		}
		def = resolved.Definition
	}

	result, err := cli.Container.BranchService.Checkout(ctx, services.CheckoutParams{
		BranchName: c.Name,
		Definition: def,
		Link:       c.Link,
		Scope:      c.Scope,
		Ticket:     c.Ticket,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Switched to %s (ticket %s)\n",
		theme.NameStyle.Render(result.Branch),
		theme.NormalStyle.Render(result.Context.Ticket))
	return nil
}
