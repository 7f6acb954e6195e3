package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("INKAN_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.Debug)
	assert.Nil(t, settings.MaxLogFiles)
	assert.Empty(t, settings.Prompt)
}

func TestLoadSettings_RoundTrip(t *testing.T) {
	t.Setenv("INKAN_HOME", filepath.Join(t.TempDir(), "home"))

	debug := true
	maxLogFiles := 5
	require.NoError(t, SaveSettings(&Settings{Debug: &debug, MaxLogFiles: &maxLogFiles, Prompt: PromptDisable}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, PromptDisable, settings.Prompt)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"malformed json", "{", "invalid settings.json"},
		{"unknown prompt mode", `{"prompt": "sometimes"}`, "invalid prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("INKAN_HOME", home)
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(tt.content), 0644))

			_, err := LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Equal(t, PromptEnable, example["prompt"])
}

func TestSettings_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, s *Settings)
	}{
		{"debug", "debug", "true", false, func(t *testing.T, s *Settings) {
			require.NotNil(t, s.Debug)
			assert.True(t, *s.Debug)
		}},
		{"max log files", "max_log_files", "20", false, func(t *testing.T, s *Settings) {
			require.NotNil(t, s.MaxLogFiles)
			assert.Equal(t, 20, *s.MaxLogFiles)
		}},
		{"prompt", "prompt", PromptDisable, false, func(t *testing.T, s *Settings) {
			assert.Equal(t, PromptDisable, s.Prompt)
		}},
		{"invalid bool", "debug", "maybe", true, nil},
		{"negative max log files", "max_log_files", "-1", true, nil},
		{"invalid prompt", "prompt", "sometimes", true, nil},
		{"unknown key", "colour", "red", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Settings
			err := s.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, &s)
		})
	}
}
