package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/cv",
		"port": 9090,
		"verbose": true,
		"parsing": {
			"header_lines": 12,
			"section_keywords": {"skills": ["stack"]},
			"skill_denylist": ["misc"],
			"skill_bucket_ratio": 0.5
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 12, cfg.Parsing.HeaderLines)
	assert.Equal(t, map[string][]string{"skills": {"stack"}}, cfg.Parsing.SectionKeywords)
	assert.Equal(t, []string{"misc"}, cfg.Parsing.SkillDenylist)
	assert.InDelta(t, 0.5, cfg.Parsing.SkillBucketRatio, 1e-9)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		errMsg string
	}{
		{"empty path", func(*testing.T) string { return "" }, "config path is empty"},
		{"missing file", func(*testing.T) string { return "/nonexistent/path/config.json" }, "failed to read config file"},
		{"invalid JSON", func(t *testing.T) string { return writeConfig(t, `{ invalid json }`) }, "failed to parse config JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{"zero config", Config{}, ""},
		{"port out of range", Config{Port: 70000}, "'port'"},
		{"negative header lines", Config{Parsing: Parsing{HeaderLines: -1}}, "header_lines"},
		{"ratio above one", Config{Parsing: Parsing{SkillBucketRatio: 1.5}}, "skill_bucket_ratio"},
		{"unknown section", Config{Parsing: Parsing{SectionKeywords: map[string][]string{"hobbies": {"fun"}}}}, "section_keywords"},
		{"known section", Config{Parsing: Parsing{SectionKeywords: map[string][]string{"education": {"studies"}}}}, ""},
		{"missing template", Config{Template: "/nonexistent/resume.md.tmpl"}, "template file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://file", Parsing: Parsing{HeaderLines: 5}}
	defaults := Config{
		APIKey:      "env-key",
		DatabaseURL: "postgres://env",
		Parsing:     Parsing{HeaderLines: 10, SkillDenylist: []string{"misc"}},
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "postgres://file", merged.DatabaseURL)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, 5, merged.Parsing.HeaderLines)
	assert.Equal(t, []string{"misc"}, merged.Parsing.SkillDenylist)
	assert.Empty(t, cfg.APIKey, "receiver must not change")
}

func TestParserOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := (&Config{}).ParserOptions()
		require.NoError(t, err)
		assert.Equal(t, parsing.DefaultHeaderLines, opts.HeaderLines)
		assert.Nil(t, opts.Keywords)
	})

	t.Run("custom keywords drive the parser", func(t *testing.T) {
		cfg := &Config{Parsing: Parsing{SectionKeywords: map[string][]string{"skills": {"stack"}}}}
		opts, err := cfg.ParserOptions()
		require.NoError(t, err)
		require.NotNil(t, opts.Keywords)

		res := parsing.NewParser(opts).Parse("## Stack\nGo, SQL")
		assert.Equal(t, []string{"Go", "SQL"}, res.Content.Skills)
	})

	t.Run("unknown section", func(t *testing.T) {
		cfg := &Config{Parsing: Parsing{SectionKeywords: map[string][]string{"hobbies": {"fun"}}}}
		_, err := cfg.ParserOptions()
		assert.Error(t, err)
	})
}

func TestBucketStrategy(t *testing.T) {
	cfg := &Config{Parsing: Parsing{SkillBucketRatio: 0.5}}

	strategy := cfg.BucketStrategy()

	assert.Equal(t, cvjson.SixtyForty{Ratio: 0.5}, strategy)
	split := strategy.Split([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "b"}, split.Technical)
}
