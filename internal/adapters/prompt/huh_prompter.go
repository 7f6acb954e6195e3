package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/ports"
	"github.com/inkan-dev/inkan/internal/theme"
)

// Compile-time interface check
var _ ports.Prompter = (*HuhPrompter)(nil)

// HuhPrompter implements ports.Prompter with huh forms
type HuhPrompter struct {
	enabled bool
}

// NewHuhPrompter creates a prompter. Prompts are only shown when enabled
// is true and stdin is a terminal.
func NewHuhPrompter(enabled bool) *HuhPrompter {
	return &HuhPrompter{
		enabled: enabled && IsInteractive(),
	}
}

// IsInteractive reports whether stdin is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Enabled reports whether prompts may be shown
func (p *HuhPrompter) Enabled() bool {
	return p.enabled
}

// Input asks for a single line of text
func (p *HuhPrompter) Input(title string) (string, error) {
	if !p.enabled {
		return "", domain.NewRequiredError(title)
	}

	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	).WithTheme(theme.FormTheme())

	if err := form.Run(); err != nil {
		return "", mapFormError(err)
	}

	logging.Logger.Debug("Prompt answered", "title", title)
	return value, nil
}

// Select asks the user to pick one of the options and returns its value
func (p *HuhPrompter) Select(title string, options []ports.SelectOption) (string, error) {
	if !p.enabled {
		return "", domain.NewRequiredError(title)
	}
	if len(options) == 0 {
		return "", domain.NewInputValidationError(title, "no options to choose from")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&selected),
		),
	).WithTheme(theme.FormTheme())

	if err := form.Run(); err != nil {
		return "", mapFormError(err)
	}

	logging.Logger.Debug("Option selected", "title", title, "value", selected)
	return selected, nil
}

func mapFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return domain.NewCancelledError()
	}
	return fmt.Errorf("prompt failed: %w", err)
}
