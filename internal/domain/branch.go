package domain

import (
	"fmt"
	"strings"
	"time"
)

// BranchContext is the ticket/scope/link metadata recorded for one repository+branch pair
type BranchContext struct {
	Created time.Time
	Data    []byte // Reserved, never interpreted
	Link    string
	Name    string // Primary key, see BranchContextName
	Scope   string
	Ticket  string
}

// BranchContextName derives the primary key for a branch within a repository.
// Both parts are trimmed so lookups tolerate surrounding whitespace from git output.
func BranchContextName(branch, repo string) string {
	return fmt.Sprintf("%s-%s", strings.TrimSpace(repo), strings.TrimSpace(branch))
}

// NewBranchContext creates the context for a branch, defaulting the ticket to the branch name
func NewBranchContext(branch, repo, ticket, scope, link string) BranchContext {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		ticket = strings.TrimSpace(branch)
	}

	return BranchContext{
		Created: time.Now().UTC(),
		Link:    strings.TrimSpace(link),
		Name:    BranchContextName(branch, repo),
		Scope:   strings.TrimSpace(scope),
		Ticket:  ticket,
	}
}
