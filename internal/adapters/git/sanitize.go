package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
)

// composedBranchNameChars matches the characters allowed in branch names
// composed from a branch template
var composedBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// invalidBranchNameChars matches runs of characters replaced with '-' when a
// branch name is composed from context: git-prohibited characters, shell
// metacharacters and template punctuation
var invalidBranchNameChars = regexp.MustCompile(`[\s~^:?*\[\]\\{}#@()&|;<>$` + "`" + `'"!,=+%]+`)

var (
	consecutiveHyphens = regexp.MustCompile(`-{2,}`)
	hyphenAroundSlash  = regexp.MustCompile(`-*/-*`)
)

// branchNameRule rejects a name when check reports true
type branchNameRule struct {
	check   func(string) bool
	message string
}

// branchNameRules follow git check-ref-format --branch
var branchNameRules = []branchNameRule{
	{func(n string) bool { return n == "" }, "branch name cannot be empty"},
	{func(n string) bool { return n == "@" }, "branch name cannot be '@'"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "branch name cannot start with '-'"},
	{func(n string) bool { return strings.HasPrefix(n, "/") }, "branch name cannot start with '/'"},
	{func(n string) bool { return strings.HasSuffix(n, "/") }, "branch name cannot end with '/'"},
	{func(n string) bool { return strings.HasSuffix(n, ".") }, "branch name cannot end with '.'"},
	{func(n string) bool { return strings.Contains(n, "..") }, "branch name cannot contain '..'"},
	{func(n string) bool { return strings.Contains(n, "//") }, "branch name cannot contain '//'"},
	{func(n string) bool { return strings.Contains(n, "@{") }, "branch name cannot contain '@{'"},
	{hasHiddenOrLockComponent, "branch name components cannot start with '.' or end with '.lock'"},
	{func(n string) bool { return strings.IndexFunc(n, unicode.IsControl) >= 0 }, "branch name cannot contain control characters"},
	{func(n string) bool { return strings.ContainsAny(n, " ~^:?*[\\") }, "branch name cannot contain spaces or any of ~ ^ : ? * [ \\"},
}

func hasHiddenOrLockComponent(name string) bool {
	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") || strings.HasSuffix(component, ".lock") {
			return true
		}
	}
	return false
}

// validateBranchName checks a user supplied branch name against git's ref rules
func validateBranchName(name string) error {
	for _, rule := range branchNameRules {
		if rule.check(name) {
			return domain.NewInputValidationError("branch", rule.message)
		}
	}
	return nil
}

// validateComposedBranchName additionally restricts composed names to
// characters that never need shell quoting
func validateComposedBranchName(name string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}
	if !composedBranchNameChars.MatchString(name) {
		return domain.NewInputValidationError("branch",
			"branch name contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)")
	}
	return nil
}

// sanitizeBranchName turns text rendered from a branch template into a valid
// branch name. Case is preserved so ticket identifiers stay recognisable.
func sanitizeBranchName(name string) (string, error) {
	logging.Logger.Debug("Sanitizing branch name", "input", name)

	result := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	result = invalidBranchNameChars.ReplaceAllString(result, "-")
	result = strings.ReplaceAll(result, "..", "-")
	for strings.Contains(result, "//") || strings.Contains(result, "/.") || strings.Contains(result, ".lock/") {
		result = strings.ReplaceAll(result, "//", "/")
		result = strings.ReplaceAll(result, "/.", "/")
		result = strings.ReplaceAll(result, ".lock/", "/")
	}
	result = consecutiveHyphens.ReplaceAllString(result, "-")
	result = hyphenAroundSlash.ReplaceAllString(result, "/")

	result = strings.TrimLeft(result, "./-")
	for {
		trimmed := strings.TrimRight(strings.TrimSuffix(result, ".lock"), "./-")
		if trimmed == result {
			break
		}
		result = trimmed
	}

	if err := validateComposedBranchName(result); err != nil {
		return "", fmt.Errorf("cannot build a branch name from %q: %w", name, err)
	}

	logging.Logger.Info("Branch name sanitized", "input", name, "output", result)
	return result, nil
}
