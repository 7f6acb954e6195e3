package template

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkan-dev/inkan/internal/logging"
)

//go:embed defaults/*.yml
var defaultsFS embed.FS

// Bundled definition file names
const (
	ConventionalFile = "conventional.yml"
	DefaultFile      = "default.yml"
)

// MaterializeDefaults checks and writes the bundled definitions into dir,
// replacing older copies, and returns the default and conventional file paths.
func MaterializeDefaults(dir string) (defaultPath, conventionalPath string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create templates directory: %w", err)
	}

	paths := make(map[string]string, 2)
	for _, name := range []string{DefaultFile, ConventionalFile} {
		data, err := defaultsFS.ReadFile("defaults/" + name)
		if err != nil {
			return "", "", fmt.Errorf("failed to read bundled template %s: %w", name, err)
		}
		if _, err := ParseDefinition(data); err != nil {
			return "", "", fmt.Errorf("bundled template %s is invalid: %w", name, err)
		}

		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, data, 0644); err != nil {
			return "", "", fmt.Errorf("failed to write template %s: %w", target, err)
		}
		paths[name] = target
	}

	logging.Logger.Debug("Bundled templates written", "dir", dir)
	return paths[DefaultFile], paths[ConventionalFile], nil
}
