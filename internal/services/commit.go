package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/ports"
	"github.com/inkan-dev/inkan/internal/template"
)

// CommitService renders commit templates and commits with them
type CommitService struct {
	branchRepo ports.BranchContextReader
	gitRepo    ports.GitRepository
	prompter   ports.Prompter
}

// NewCommitService creates a new CommitService
func NewCommitService(
	branchRepo ports.BranchContextReader,
	gitRepo ports.GitRepository,
	prompter ports.Prompter,
) *CommitService {
	return &CommitService{
		branchRepo: branchRepo,
		gitRepo:    gitRepo,
		prompter:   prompter,
	}
}

// Commit renders the selected template with the merged context, writes it to
// the commit template file and runs git commit with it
func (s *CommitService) Commit(ctx context.Context, params CommitParams) (*CommitResult, error) {
	if params.Definition == nil {
		return nil, errors.New("no template definition loaded")
	}

	name, err := s.templateName(params)
	if err != nil {
		return nil, err
	}

	tmpl, err := params.Definition.Template(name)
	if err != nil {
		return nil, err
	}

	message := params.Message
	if strings.TrimSpace(message) == "" && s.prompter.Enabled() {
		message, err = s.prompter.Input("Commit message")
		if err != nil {
			return nil, err
		}
	}

	stored, err := s.storedContext(ctx)
	if err != nil {
		return nil, err
	}

	rc := domain.Merge(domain.RenderContext{
		Link:    params.Link,
		Message: message,
		Scope:   params.Scope,
		Ticket:  params.Ticket,
	}, stored)

	rendered := template.Render(tmpl.Content, rc.Values())
	logging.Logger.Debug("Commit message rendered", "template", name, "message", rendered)

	path, err := s.gitRepo.TemplateFilePath()
	if err != nil {
		return nil, err
	}

	if err := s.gitRepo.WriteCommitMessageFile(path, rendered); err != nil {
		return nil, err
	}

	// An untouched template aborts git commit unless empty messages are allowed
	if err := s.gitRepo.CommitWithTemplate(path, rc.Message != ""); err != nil {
		return nil, err
	}

	logging.Logger.Info("Committed", "template", name)
	return &CommitResult{
		Message:      rendered,
		TemplateName: name,
		TemplatePath: path,
	}, nil
}

func (s *CommitService) templateName(params CommitParams) (string, error) {
	if name := strings.TrimSpace(params.TemplateName); name != "" {
		return name, nil
	}

	if !s.prompter.Enabled() {
		return "", domain.NewRequiredError("template")
	}

	names := params.Definition.Names()
	options := make([]ports.SelectOption, 0, len(names))
	for _, name := range names {
		label := name
		if desc := params.Definition.Commit[name].Description; desc != "" {
			label = fmt.Sprintf("%s: %s", name, desc)
		}
		options = append(options, ports.SelectOption{Label: label, Value: name})
	}

	return s.prompter.Select("Select commit template", options)
}

// storedContext returns the recorded context of the current branch, or nil
// when none was recorded
func (s *CommitService) storedContext(ctx context.Context) (*domain.BranchContext, error) {
	branchName, err := s.gitRepo.BranchName()
	if err != nil {
		return nil, err
	}

	repo, err := s.gitRepo.RepositoryName()
	if err != nil {
		return nil, err
	}

	stored, err := s.branchRepo.GetBranch(ctx, branchName, repo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logging.Logger.Debug("No context recorded for branch", "branch", branchName, "repo", repo)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read branch context: %w", err)
	}

	return stored, nil
}
