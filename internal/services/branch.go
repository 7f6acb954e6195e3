package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/ports"
	"github.com/inkan-dev/inkan/internal/template"
)

// BranchService creates branches and records their context
type BranchService struct {
	branchRepo ports.ContextStore
	gitRepo    ports.GitRepository
	prompter   ports.Prompter
}

// NewBranchService creates a new BranchService
func NewBranchService(
	branchRepo ports.ContextStore,
	gitRepo ports.GitRepository,
	prompter ports.Prompter,
) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
		gitRepo:    gitRepo,
		prompter:   prompter,
	}
}

// Checkout creates the branch, or switches to it when it already exists,
// and records its context
func (s *BranchService) Checkout(ctx context.Context, params CheckoutParams) (*BranchResult, error) {
	logging.Logger.Info("Checking out branch",
		"branch", params.BranchName,
		"ticket", params.Ticket,
		"scope", params.Scope)

	name, err := s.branchName(params)
	if err != nil {
		return nil, err
	}

	repo, err := s.gitRepo.RepositoryName()
	if err != nil {
		return nil, err
	}

	if err := s.gitRepo.Checkout(name, true); err != nil {
		logging.Logger.Debug("Branch creation failed, switching to existing branch", "branch", name, "error", err)
		if err := s.gitRepo.Checkout(name, false); err != nil {
			return nil, err
		}
	}

	branch := domain.NewBranchContext(name, repo, params.Ticket, params.Scope, params.Link)
	if err := s.branchRepo.PersistBranch(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to record branch context: %w", err)
	}

	logging.Logger.Info("Branch context recorded", "name", branch.Name, "ticket", branch.Ticket)
	return &BranchResult{Branch: name, Context: branch}, nil
}

// RecordContext records context for the current branch
func (s *BranchService) RecordContext(ctx context.Context, params RecordContextParams) (*BranchResult, error) {
	logging.Logger.Info("Recording context", "ticket", params.Ticket, "scope", params.Scope)

	branchName, err := s.gitRepo.BranchName()
	if err != nil {
		return nil, err
	}

	repo, err := s.gitRepo.RepositoryName()
	if err != nil {
		return nil, err
	}

	branch := domain.NewBranchContext(branchName, repo, params.Ticket, params.Scope, params.Link)
	if err := s.branchRepo.PersistBranch(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to record branch context: %w", err)
	}

	logging.Logger.Info("Branch context recorded", "name", branch.Name, "ticket", branch.Ticket)
	return &BranchResult{Branch: branchName, Context: branch}, nil
}

// branchName returns the explicit name, a name composed from the branch
// template, or a name typed by the user, in that order
func (s *BranchService) branchName(params CheckoutParams) (string, error) {
	if name := strings.TrimSpace(params.BranchName); name != "" {
		if err := s.gitRepo.ValidateBranchName(name); err != nil {
			return "", err
		}
		return name, nil
	}

	if params.Definition != nil && params.Definition.HasBranchTemplate() {
		values := domain.RenderContext{
			Link:   params.Link,
			Scope:  params.Scope,
			Ticket: params.Ticket,
		}.Values()

		rendered := template.Render(params.Definition.Branch.Content, values)
		if rendered != "" {
			name, err := s.gitRepo.SanitizeBranchName(rendered)
			if err != nil {
				return "", err
			}
			logging.Logger.Debug("Branch name composed from template", "rendered", rendered, "name", name)
			return name, nil
		}
	}

	if !s.prompter.Enabled() {
		return "", domain.NewRequiredError("branch")
	}

	input, err := s.prompter.Input("Branch name")
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(input)
	if name == "" {
		return "", domain.NewRequiredError("branch")
	}
	if err := s.gitRepo.ValidateBranchName(name); err != nil {
		return "", err
	}

	return name, nil
}
