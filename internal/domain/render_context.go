package domain

import "strings"

// Placeholder names understood by commit and branch templates
const (
	PlaceholderLink    = "link"
	PlaceholderMessage = "message"
	PlaceholderScope   = "scope"
	PlaceholderTicket  = "ticket_num"
)

// RenderContext is the set of values substituted into a template.
// An empty or whitespace-only field is absent.
type RenderContext struct {
	Link    string
	Message string
	Scope   string
	Ticket  string
}

// Merge builds a commit-time context. Each field is resolved independently:
// the explicit value wins, then the stored branch value, otherwise absent.
// Message has no stored counterpart.
func Merge(explicit RenderContext, branch *BranchContext) RenderContext {
	merged := RenderContext{
		Link:    strings.TrimSpace(explicit.Link),
		Message: strings.TrimSpace(explicit.Message),
		Scope:   strings.TrimSpace(explicit.Scope),
		Ticket:  strings.TrimSpace(explicit.Ticket),
	}

	if branch == nil {
		return merged
	}

	merged.Link = firstPresent(merged.Link, branch.Link)
	merged.Scope = firstPresent(merged.Scope, branch.Scope)
	merged.Ticket = firstPresent(merged.Ticket, branch.Ticket)

	return merged
}

// Values maps the context onto placeholder names
func (c RenderContext) Values() map[string]string {
	return map[string]string{
		PlaceholderLink:    c.Link,
		PlaceholderMessage: c.Message,
		PlaceholderScope:   c.Scope,
		PlaceholderTicket:  c.Ticket,
	}
}

func firstPresent(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return strings.TrimSpace(fallback)
}
