package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"profile": "",
		"database_url": "postgres://localhost:5432/jobfit",
		"port": 8080,
		"similarity_threshold": 0.8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost:5432/jobfit", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.8, cfg.SimilarityThreshold)
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

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Port: 8080, SimilarityThreshold: 0.7},
		},
		{
			name:    "threshold above one",
			cfg:     Config{SimilarityThreshold: 1.5},
			wantErr: "similarity_threshold",
		},
		{
			name:    "negative bonus",
			cfg:     Config{DesiredSkillBonus: -0.1},
			wantErr: "desired_skill_bonus",
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: 70000},
			wantErr: "port",
		},
		{
			name:    "negative ttl",
			cfg:     Config{CacheTTLHours: -1},
			wantErr: "cache_ttl_hours",
		},
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

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := Config{Job: "/nonexistent/job.json"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Profile: "profile.json", Port: 9090}
	defaults := Config{
		Profile:             "default_profile.json",
		DatabaseURL:         "postgres://localhost/jobfit",
		Port:                8080,
		SimilarityThreshold: 0.85,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win
	assert.Equal(t, "profile.json", merged.Profile)
	assert.Equal(t, 9090, merged.Port)

	// Gaps filled from defaults
	assert.Equal(t, "postgres://localhost/jobfit", merged.DatabaseURL)
	assert.Equal(t, 0.85, merged.SimilarityThreshold)
}

func TestMergeWithDefaults_ThresholdFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 0.7, merged.SimilarityThreshold)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/jobfit")
	t.Setenv("REDIS_URL", "redis://env:6379")

	cfg := Config{DatabaseURL: "postgres://explicit/jobfit"}
	cfg.FromEnv()

	// Explicit value wins over environment
	assert.Equal(t, "postgres://explicit/jobfit", cfg.DatabaseURL)
	assert.Equal(t, "redis://env:6379", cfg.RedisURL)
}
