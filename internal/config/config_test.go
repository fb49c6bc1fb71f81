package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"backend": "gemini",
		"api_key": "test-key",
		"database_url": "postgres://localhost/resumes",
		"parallelism": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, BackendGemini, cfg.Backend)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid empty", Config{}, ""},
		{"valid full", Config{Backend: BackendRules, LogFormat: "pretty", Parallelism: 2, DefaultRegion: "MY"}, ""},
		{"unknown backend", Config{Backend: "openai"}, "unknown backend"},
		{"bad log format", Config{LogFormat: "xml"}, "log_format"},
		{"negative parallelism", Config{Parallelism: -1}, "parallelism"},
		{"bad region", Config{DefaultRegion: "MYS"}, "default_region"},
		{"missing profile", Config{Profile: "/nonexistent/profile.yaml"}, "profile file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Backend:     BackendGemini,
		APIKey:      "default-key",
		DatabaseURL: "postgres://default",
		Parallelism: 4,
	}

	partial := Config{
		Backend: BackendRules,
		Verbose: true,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, BackendRules, merged.Backend)
	assert.True(t, merged.Verbose)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://default", merged.DatabaseURL)
	assert.Equal(t, 4, merged.Parallelism)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_BACKEND", "gemini")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("RESUME_PARALLELISM", "3")
	t.Setenv("DATABASE_URL", "")

	cfg := FromEnv()
	assert.Equal(t, "gemini", cfg.Backend)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 3, cfg.Parallelism)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestEffectiveBackend(t *testing.T) {
	assert.Equal(t, BackendRules, (&Config{}).EffectiveBackend())
	assert.Equal(t, BackendGemini, (&Config{Backend: BackendGemini}).EffectiveBackend())
}
