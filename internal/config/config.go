// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the runtime configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags and environment variables.
type Config struct {
	// Paths
	Job     string `json:"job,omitempty"`     // Path to job posting JSON file
	Profile string `json:"profile,omitempty"` // Path to user profile JSON file

	// Services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis connection URL for the score cache
	Port        int    `json:"port,omitempty"`         // HTTP server port

	// Behavior
	APIKey              string  `json:"api_key,omitempty"`              // Gemini API key for LLM skill extraction
	Model               string  `json:"model,omitempty"`                // Gemini model name
	Verbose             bool    `json:"verbose,omitempty"`              // Print the full criterion breakdown
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty"` // Fuzzy skill match cutoff (0.0-1.0)
	DesiredSkillBonus   float64 `json:"desired_skill_bonus,omitempty"`  // Fraction of skill shortfall recoverable via desired skills
	CacheTTLHours       int     `json:"cache_ttl_hours,omitempty"`      // Cached score lifetime
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills service fields from environment variables. Values already set
// on the config win over the environment.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("config error: 'similarity_threshold' must be between 0.0 and 1.0")
	}
	if c.DesiredSkillBonus < 0 || c.DesiredSkillBonus > 1 {
		return fmt.Errorf("config error: 'desired_skill_bonus' must be between 0.0 and 1.0")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}

	// Float fields
	if result.SimilarityThreshold == 0 {
		if defaults.SimilarityThreshold > 0 {
			result.SimilarityThreshold = defaults.SimilarityThreshold
		} else {
			result.SimilarityThreshold = 0.7
		}
	}
	if result.DesiredSkillBonus == 0 && defaults.DesiredSkillBonus > 0 {
		result.DesiredSkillBonus = defaults.DesiredSkillBonus
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
