package paths

import (
	"os"
	"path/filepath"
)

// LocalConfigFile is the per-repository template definition found at the git root
const LocalConfigFile = ".inkan.yml"

// GetInkanHome returns INKAN_HOME or ~/.inkan default
func GetInkanHome() string {
	inkanHome := os.Getenv("INKAN_HOME")
	if inkanHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".inkan"
		}
		return filepath.Join(homeDir, ".inkan")
	}
	return ExpandPath(inkanHome)
}

// GetDBPath returns $INKAN_HOME/inkan.db
func GetDBPath() string {
	return filepath.Join(GetInkanHome(), "inkan.db")
}

// GetTemplatesPath returns $INKAN_HOME/templates
func GetTemplatesPath() string {
	return filepath.Join(GetInkanHome(), "templates")
}

// GetSettingsPath returns $INKAN_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetInkanHome(), "settings.json")
}

// GetLocalConfigPath returns the local template definition path for a repository root
func GetLocalConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, LocalConfigFile)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
