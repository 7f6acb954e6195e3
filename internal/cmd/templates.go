package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/inkan-dev/inkan/internal/theme"
)

// TemplatesCmd lists the commit templates of the resolved configuration
type TemplatesCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the templates command
func (t *TemplatesCmd) Run(cli *CLI) error {
	summaries, resolved, err := cli.Container.ConfigurationService.Templates(context.Background(), cli.OnceOff)
	if err != nil {
		return err
	}

	if t.Format == "json" {
		output := make([]map[string]string, 0, len(summaries))
		for _, s := range summaries {
			output = append(output, map[string]string{
				"name":        s.Name,
				"description": s.Description,
				"content":     s.Content,
			})
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s %s\n\n",
		theme.TitleStyle.Render("Templates from "+resolved.Configuration.Key.String()),
		theme.PathStyle.Render(resolved.Configuration.Path))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\n", theme.NameStyle.Render(s.Name), theme.DescriptionStyle.Render(s.Description))
	}
	return w.Flush()
}
