package services

import (
	"strings"

	"github.com/inkan-dev/inkan/internal/domain"
	"github.com/inkan-dev/inkan/internal/logging"
	"github.com/inkan-dev/inkan/internal/paths"
)

// ResolveConfiguration picks the configuration backing the current invocation.
// Priority: once-off path, then the local file at the repository root, then the
// persisted active configuration. An empty repoRoot skips the local lookup.
// A persisted local key is only valid while the local file exists.
func ResolveConfiguration(onceOff, repoRoot string, persisted domain.NamedConfiguration) (domain.NamedConfiguration, error) {
	if strings.TrimSpace(onceOff) != "" {
		path, err := domain.ResolveAbsolutePath(paths.ExpandPath(strings.TrimSpace(onceOff)), domain.PathFile)
		if err != nil {
			return domain.NamedConfiguration{}, &domain.ConfigError{
				Path:    onceOff,
				Message: "invalid once-off configuration",
				Err:     err,
			}
		}

		logging.Logger.Debug("Using once-off configuration", "path", path)
		return domain.NamedConfiguration{Key: domain.OnceKey, Path: path, Status: domain.ConfigActive}, nil
	}

	if repoRoot != "" {
		local := paths.GetLocalConfigPath(repoRoot)
		if domain.IsFile(local) {
			path, err := domain.ResolveAbsolutePath(local, domain.PathFile)
			if err != nil {
				return domain.NamedConfiguration{}, &domain.ConfigError{
					Path:    local,
					Message: "invalid local configuration",
					Err:     err,
				}
			}

			logging.Logger.Debug("Using local configuration", "path", path, "persisted", persisted.Key.String())
			return domain.NamedConfiguration{Key: domain.LocalKey, Path: path, Status: domain.ConfigActive}, nil
		}
	}

	if persisted.Key.Kind == domain.ConfigLocal {
		return domain.NamedConfiguration{}, &domain.ConfigError{
			Path:    persisted.Path,
			Message: "local configuration is active but no local file was found",
		}
	}

	logging.Logger.Debug("Using persisted configuration", "key", persisted.Key.String(), "path", persisted.Path)
	return persisted, nil
}
