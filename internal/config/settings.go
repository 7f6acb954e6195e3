package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/inkan-dev/inkan/internal/paths"
)

// Prompt modes
const (
	PromptDisable = "disable"
	PromptEnable  = "enable"
)

// Settings represents the structure of $INKAN_HOME/settings.json
type Settings struct {
	Debug       *bool  `json:"debug,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
}

// Validate checks settings values that have a closed set of options
func (s *Settings) Validate() error {
	switch s.Prompt {
	case "", PromptEnable, PromptDisable:
		return nil
	default:
		return fmt.Errorf("invalid prompt '%s' (expected %s or %s)", s.Prompt, PromptEnable, PromptDisable)
	}
}

// LoadSettings loads settings from $INKAN_HOME/settings.json (or ~/.inkan/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $INKAN_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(paths.GetInkanHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Set assigns a settings value from its string form, keyed by JSON name
func (s *Settings) Set(key, value string) error {
	switch key {
	case "debug":
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid debug value '%s': %w", value, err)
		}
		s.Debug = &debug
	case "max_log_files":
		maxLogFiles, err := strconv.Atoi(value)
		if err != nil || maxLogFiles < 0 {
			return fmt.Errorf("invalid max_log_files value '%s' (expected a non-negative integer)", value)
		}
		s.MaxLogFiles = &maxLogFiles
	case "prompt":
		s.Prompt = value
	default:
		return fmt.Errorf("unknown setting '%s'", key)
	}

	return s.Validate()
}
