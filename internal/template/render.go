// Package template renders commit and branch templates by substituting
// named placeholders and loads template definition documents.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/inkan-dev/inkan/internal/logging"
)

// wrapper is a decoration that is removed together with an absent placeholder
type wrapper struct {
	open  string
	close string
}

// Checked in order: decorated forms first, bare token last.
var wrappers = []wrapper{
	{open: "(", close: ")"},
	{open: "[", close: "]"},
	{open: "{", close: "}"},
	{open: "", close: ""},
}

const joiners = `[-_/]`

// Render substitutes every named value into tmpl. Present values (non-empty
// after trimming) replace their {name} token, absent values remove the token
// with its wrapper and any dangling joiner. Tokens for names not in values are
// left untouched. Inserted values are never re-scanned for placeholders.
// Trailing spaces and tabs are stripped from every line.
func Render(tmpl string, values map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	// Present values go in as sentinels first so that the text of one value can
	// never be matched by another placeholder's removal rules.
	inserted := make(map[string]string)
	result := tmpl
	for i, name := range names {
		value := strings.TrimSpace(values[name])
		if value == "" {
			continue
		}
		sentinel := fmt.Sprintf("\x00%d\x00", i)
		inserted[sentinel] = value
		result = strings.ReplaceAll(result, token(name), sentinel)
		logging.Logger.Debug("Placeholder replaced", "placeholder", name)
	}

	for _, name := range names {
		if strings.TrimSpace(values[name]) != "" {
			continue
		}
		result = Remove(result, name)
		logging.Logger.Debug("Placeholder removed", "placeholder", name)
	}

	for sentinel, value := range inserted {
		result = strings.ReplaceAll(result, sentinel, value)
	}

	return strings.TrimSpace(trimLineEnds(result))
}

// trimLineEnds drops the horizontal whitespace a removal can leave at the end of a line
func trimLineEnds(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// Remove deletes every occurrence of the {name} placeholder together with its
// wrapper. Joiners (-, _, /) are handled as follows:
//
//	a-{x}-b  -> a-b   joined on both sides keeps the left joiner
//	a-{x} b  -> a b   joiner before a word boundary is dropped
//	a {x}-b  -> a b   joiner after a word boundary is dropped
//
// A single space or tab following the placeholder is consumed with it.
// Removal repeats until no occurrence is left, so nested text such as
// "{{x}x}" cannot reintroduce the token.
func Remove(text, name string) string {
	rules := make([]removalRule, 0, len(wrappers)*4)
	for _, w := range wrappers {
		rules = append(rules, removalRules(w, name)...)
	}

	// Restart from the first rule after every change so a joiner shared by two
	// adjacent placeholders is handled by the joined rule, not the bare one.
	for {
		changed := false
		for _, rule := range rules {
			if next := rule.re.ReplaceAllString(text, rule.repl); next != text {
				text = next
				changed = true
				break
			}
		}
		if !changed {
			return text
		}
	}
}

type removalRule struct {
	re   *regexp.Regexp
	repl string
}

func removalRules(w wrapper, name string) []removalRule {
	t := regexp.QuoteMeta(w.open + token(name) + w.close)
	return []removalRule{
		{re: regexp.MustCompile(`(` + joiners + `)` + t + joiners), repl: "${1}"},
		{re: regexp.MustCompile(`(?m)` + joiners + t + `([ \t]|$)`), repl: "${1}"},
		{re: regexp.MustCompile(`(?m)(^|[ \t])` + t + joiners), repl: "${1}"},
		{re: regexp.MustCompile(t + `[ \t]?`), repl: ""},
	}
}

func token(name string) string {
	return "{" + name + "}"
}
