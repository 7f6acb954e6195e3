package template

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
)

// Definition is a template definition document
type Definition struct {
	Branch *BranchTemplate           `yaml:"branch,omitempty"`
	Commit map[string]CommitTemplate `yaml:"commit"`
}

// CommitTemplate is a named commit message template
type CommitTemplate struct {
	Content     string `yaml:"content"`
	Description string `yaml:"description"`
}

// BranchTemplate composes a branch name from context fields
type BranchTemplate struct {
	Content string `yaml:"content"`
}

// LoadDefinition reads and parses the template definition at path
func LoadDefinition(path string) (*Definition, error) {
	logging.Logger.Debug("Loading template definition", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Message: "failed to read template definition", Err: err}
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Message: "failed to parse template definition, please ensure yaml is valid", Err: err}
	}

	logging.Logger.Debug("Template definition loaded", "path", path, "templates", len(def.Commit))
	return def, nil
}

// ParseDefinition decodes a template definition document
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if len(def.Commit) == 0 {
		return nil, fmt.Errorf("no commit templates defined")
	}
	return &def, nil
}

// Template returns the commit template with the given name
func (d *Definition) Template(name string) (CommitTemplate, error) {
	tmpl, ok := d.Commit[name]
	if !ok {
		return CommitTemplate{}, domain.NewTemplateNotFoundError(name)
	}
	return tmpl, nil
}

// Names returns the commit template names in sorted order
func (d *Definition) Names() []string {
	names := make([]string, 0, len(d.Commit))
	for name := range d.Commit {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasBranchTemplate reports whether branch names can be composed from context
func (d *Definition) HasBranchTemplate() bool {
	return d.Branch != nil && d.Branch.Content != ""
}
