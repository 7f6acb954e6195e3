package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/ports"
	portsmocks "github.com/inkan-dev/inkan/internal/ports/mocks"
	"github.com/inkan-dev/inkan/internal/template"
)

const templatePath = "/repo/.git/INKAN_COMMIT_TEMPLATE"

func commitDefinition() *template.Definition {
	return &template.Definition{
		Commit: map[string]template.CommitTemplate{
			"fix": {
				Description: "Bug fix",
				Content:     "fix({scope}): [{ticket_num}] {message}\n- done? [ ]",
			},
			"feat": {
				Content: "feat: {message} {link}",
			},
		},
	}
}

func newCommitService(t *testing.T) (*CommitService, *portsmocks.MockContextStore, *portsmocks.MockGitRepository, *portsmocks.MockPrompter) {
	store := portsmocks.NewMockContextStore(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	prompter := portsmocks.NewMockPrompter(t)
	return NewCommitService(store, gitRepo, prompter), store, gitRepo, prompter
}

func expectCurrentBranch(gitRepo *portsmocks.MockGitRepository) {
	gitRepo.EXPECT().BranchName().Return("ABC-1-login", nil)
	gitRepo.EXPECT().RepositoryName().Return("inkan", nil)
}

func TestCommitService_Commit(t *testing.T) {
	stored := &domain.BranchContext{
		Created: time.Now().UTC(),
		Link:    "https://x/1",
		Name:    "inkan-ABC-1-login",
		Scope:   "auth",
		Ticket:  "ABC-1",
	}

	tests := []struct {
		name     string
		params   CommitParams
		stored   *domain.BranchContext
		storeErr error
		want     string
	}{
		{
			name:   "stored context fills the gaps",
			params: CommitParams{TemplateName: "fix", Message: "add tests"},
			stored: stored,
			want:   "fix(auth): [ABC-1] add tests\n- done? [ ]",
		},
		{
			name:   "explicit values win per field",
			params: CommitParams{TemplateName: "fix", Message: "add tests", Ticket: "XYZ-2"},
			stored: stored,
			want:   "fix(auth): [XYZ-2] add tests\n- done? [ ]",
		},
		{
			name:     "no recorded context",
			params:   CommitParams{TemplateName: "fix", Message: "add tests"},
			storeErr: domain.NewNotFoundError("branch inkan-ABC-1-login"),
			want:     "fix: add tests\n- done? [ ]",
		},
		{
			name:   "explicit link",
			params: CommitParams{TemplateName: "feat", Message: "login", Link: "https://x/2"},
			stored: stored,
			want:   "feat: login https://x/2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, gitRepo, _ := newCommitService(t)
			expectCurrentBranch(gitRepo)
			store.EXPECT().GetBranch(mock.Anything, "ABC-1-login", "inkan").Return(tt.stored, tt.storeErr)
			gitRepo.EXPECT().TemplateFilePath().Return(templatePath, nil)
			gitRepo.EXPECT().WriteCommitMessageFile(templatePath, tt.want).Return(nil)
			gitRepo.EXPECT().CommitWithTemplate(templatePath, true).Return(nil)

			tt.params.Definition = commitDefinition()
			result, err := service.Commit(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Message)
			assert.Equal(t, tt.params.TemplateName, result.TemplateName)
			assert.Equal(t, templatePath, result.TemplatePath)
		})
	}
}

func TestCommitService_CommitStoreFailure(t *testing.T) {
	service, store, gitRepo, _ := newCommitService(t)
	expectCurrentBranch(gitRepo)
	store.EXPECT().GetBranch(mock.Anything, "ABC-1-login", "inkan").
		Return(nil, domain.NewCorruptedError("branch.created", assert.AnError))

	_, err := service.Commit(context.Background(), CommitParams{
		Definition:   commitDefinition(),
		TemplateName: "fix",
		Message:      "add tests",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorrupted)
}

func TestCommitService_CommitUnknownTemplate(t *testing.T) {
	service, _, _, _ := newCommitService(t)

	_, err := service.Commit(context.Background(), CommitParams{
		Definition:   commitDefinition(),
		TemplateName: "nope",
		Message:      "add tests",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestCommitService_CommitTemplateRequired(t *testing.T) {
	service, _, _, prompter := newCommitService(t)
	prompter.EXPECT().Enabled().Return(false)

	_, err := service.Commit(context.Background(), CommitParams{Definition: commitDefinition(), Message: "x"})

	assert.ErrorIs(t, err, domain.ErrRequired)
}

func TestCommitService_CommitInteractive(t *testing.T) {
	service, store, gitRepo, prompter := newCommitService(t)
	prompter.EXPECT().Enabled().Return(true)
	prompter.EXPECT().Select("Select commit template", []ports.SelectOption{
		{Label: "feat", Value: "feat"},
		{Label: "fix: Bug fix", Value: "fix"},
	}).Return("feat", nil)
	prompter.EXPECT().Input("Commit message").Return("typed message", nil)
	expectCurrentBranch(gitRepo)
	store.EXPECT().GetBranch(mock.Anything, "ABC-1-login", "inkan").Return(nil, domain.NewNotFoundError("branch"))
	gitRepo.EXPECT().TemplateFilePath().Return(templatePath, nil)
	gitRepo.EXPECT().WriteCommitMessageFile(templatePath, "feat: typed message").Return(nil)
	gitRepo.EXPECT().CommitWithTemplate(templatePath, true).Return(nil)

	result, err := service.Commit(context.Background(), CommitParams{Definition: commitDefinition()})

	require.NoError(t, err)
	assert.Equal(t, "feat", result.TemplateName)
}

func TestCommitService_CommitWithoutMessageOpensEditor(t *testing.T) {
	service, store, gitRepo, prompter := newCommitService(t)
	prompter.EXPECT().Enabled().Return(false)
	expectCurrentBranch(gitRepo)
	store.EXPECT().GetBranch(mock.Anything, "ABC-1-login", "inkan").Return(nil, domain.NewNotFoundError("branch"))
	gitRepo.EXPECT().TemplateFilePath().Return(templatePath, nil)
	gitRepo.EXPECT().WriteCommitMessageFile(templatePath, "feat:").Return(nil)
	gitRepo.EXPECT().CommitWithTemplate(templatePath, false).Return(nil)

	result, err := service.Commit(context.Background(), CommitParams{Definition: commitDefinition(), TemplateName: "feat"})

	require.NoError(t, err)
	assert.Equal(t, "feat:", result.Message)
}

func TestCommitService_CommitPromptCancelled(t *testing.T) {
	service, _, _, prompter := newCommitService(t)
	prompter.EXPECT().Enabled().Return(true)
	prompter.EXPECT().Input("Commit message").Return("", domain.NewCancelledError())

	_, err := service.Commit(context.Background(), CommitParams{Definition: commitDefinition(), TemplateName: "feat"})

	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestCommitService_CommitGitFailure(t *testing.T) {
	service, store, gitRepo, _ := newCommitService(t)
	expectCurrentBranch(gitRepo)
	store.EXPECT().GetBranch(mock.Anything, "ABC-1-login", "inkan").Return(nil, domain.NewNotFoundError("branch"))
	gitRepo.EXPECT().TemplateFilePath().Return(templatePath, nil)
	gitRepo.EXPECT().WriteCommitMessageFile(templatePath, "feat: x").Return(nil)
	gitRepo.EXPECT().CommitWithTemplate(templatePath, true).
		Return(&domain.GitError{Op: "commit", Err: assert.AnError})

	_, err := service.Commit(context.Background(), CommitParams{
		Definition:   commitDefinition(),
		TemplateName: "feat",
		Message:      "x",
	})

	assert.ErrorIs(t, err, domain.ErrGit)
}
