package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies inkan exited with 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"inkan exited with %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies inkan exited with a non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"inkan unexpectedly succeeded.\nStdout: %s", result.Stdout)
}

// AssertExitCode verifies inkan exited with the given code.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"inkan exited with %d, want %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, expected, result.Stdout, result.Stderr)
}

// AssertCommandError verifies inkan failed with exit code 1 and reported an
// "error:" line on stderr mentioning expected.
func AssertCommandError(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	AssertExitCode(tb, result, 1)

	for _, line := range strings.Split(result.Stderr, "\n") {
		if strings.HasPrefix(line, "error:") && strings.Contains(line, expected) {
			return
		}
	}
	assert.Fail(tb, "missing error line",
		"no stderr line starting with \"error:\" mentions %q.\nStderr: %s", expected, result.Stderr)
}

// AssertStdoutContains verifies stdout mentions expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "Stdout: %s", result.Stdout)
}

// AssertStdoutNotContains verifies stdout does not mention unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "Stdout: %s", result.Stdout)
}

// AssertStderrContains verifies stderr mentions expected.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Stderr: %s", result.Stderr)
}

// AssertQuiet verifies a successful command wrote nothing to stderr, so no
// warning or debug notice leaked into the output.
func AssertQuiet(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertSuccess(tb, result)
	assert.Empty(tb, strings.TrimSpace(result.Stderr), "Stderr: %s", result.Stderr)
}

// AssertValidJSON unmarshals stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"stdout is not JSON.\nStdout: %s", result.Stdout)
}

// AssertTemplateListed verifies stdout is the JSON output of
// "inkan templates --format json" and lists the named template.
// It returns the template entry.
func AssertTemplateListed(tb testing.TB, result CommandResult, name string) map[string]string {
	tb.Helper()
	var templates []map[string]string
	AssertValidJSON(tb, result, &templates)

	for _, entry := range templates {
		if entry["name"] == name {
			return entry
		}
	}
	require.Failf(tb, "template not listed", "template %q missing from %s", name, result.Stdout)
	return nil
}
