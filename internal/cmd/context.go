package cmd

import (
	"context"
	"fmt"

	"github.com/inkan-dev/inkan/internal/services"
	"github.com/inkan-dev/inkan/internal/theme"
)

// ContextCmd records context for the current branch
type ContextCmd struct {
	Ticket string `arg:"" optional:"" help:"Ticket number (defaults to the branch name)"`
	Scope  string `short:"s" help:"Scope of the change"`
	Link   string `short:"l" help:"Link to the ticket"`
}

// Run executes the context command
func (c *ContextCmd) Run(cli *CLI) error {
	result, err := cli.Container.BranchService.RecordContext(context.Background(), services.RecordContextParams{
		Link:   c.Link,
		Scope:  c.Scope,
		Ticket: c.Ticket,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded context for %s (ticket %s)\n",
		theme.NameStyle.Render(result.Branch),
		theme.NormalStyle.Render(result.Context.Ticket))
	return nil
}
