// Package config loads the JSON configuration shared by the CLI and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/parsing"
)

// DefaultPort is the HTTP port used when none is configured
const DefaultPort = 8080

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; CLI flags and environment variables fill the rest.
type Config struct {
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // overrides the standard-tier model
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
	Template    string `json:"template,omitempty"` // markdown template for text-origin output

	Parsing Parsing `json:"parsing,omitempty"`
}

// Parsing tunes the résumé normalization heuristics
type Parsing struct {
	HeaderLines      int                 `json:"header_lines,omitempty"`
	SectionKeywords  map[string][]string `json:"section_keywords,omitempty"`
	SkillDenylist    []string            `json:"skill_denylist,omitempty"`
	SkillBucketRatio float64             `json:"skill_bucket_ratio,omitempty"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks value ranges and that referenced files exist
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Parsing.HeaderLines < 0 {
		return fmt.Errorf("config error: 'parsing.header_lines' must be non-negative")
	}
	if r := c.Parsing.SkillBucketRatio; r < 0 || r > 1 {
		return fmt.Errorf("config error: 'parsing.skill_bucket_ratio' must be between 0 and 1")
	}
	if len(c.Parsing.SectionKeywords) > 0 {
		if _, err := parsing.KeywordsFromConfig(c.Parsing.SectionKeywords); err != nil {
			return fmt.Errorf("config error: 'parsing.section_keywords': %w", err)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	if result.Parsing.HeaderLines == 0 {
		result.Parsing.HeaderLines = defaults.Parsing.HeaderLines
	}
	if len(result.Parsing.SectionKeywords) == 0 {
		result.Parsing.SectionKeywords = defaults.Parsing.SectionKeywords
	}
	if len(result.Parsing.SkillDenylist) == 0 {
		result.Parsing.SkillDenylist = defaults.Parsing.SkillDenylist
	}
	if result.Parsing.SkillBucketRatio == 0 {
		result.Parsing.SkillBucketRatio = defaults.Parsing.SkillBucketRatio
	}

	return result
}

// ParserOptions converts the parsing block into parser options
func (c *Config) ParserOptions() (parsing.Options, error) {
	opts := parsing.DefaultOptions()
	if c.Parsing.HeaderLines > 0 {
		opts.HeaderLines = c.Parsing.HeaderLines
	}
	opts.SkillDenylist = c.Parsing.SkillDenylist
	if len(c.Parsing.SectionKeywords) > 0 {
		keywords, err := parsing.KeywordsFromConfig(c.Parsing.SectionKeywords)
		if err != nil {
			return parsing.Options{}, err
		}
		opts.Keywords = keywords
	}
	return opts, nil
}

// BucketStrategy returns the skill bucket split used when a json-origin record
// has no recorded bucket sizes
func (c *Config) BucketStrategy() cvjson.BucketStrategy {
	return cvjson.SixtyForty{Ratio: c.Parsing.SkillBucketRatio}
}
