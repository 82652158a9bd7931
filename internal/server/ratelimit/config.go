package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits requests to Limit per Window with an optional Burst capacity
type Rule struct {
	Method string
	// Path matches exactly, or as a prefix when it ends with "/"
	Path   string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the limiter settings
type Config struct {
	Enabled bool
	Default Rule
	Rules   []Rule
}

// DefaultConfig limits parsing and writes more tightly than reads.
// Health checks are never limited.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Default: Rule{Limit: 600, Window: time.Minute},
		Rules: []Rule{
			{Method: "GET", Path: "/health"},
			{Method: "POST", Path: "/v1/cv/", Limit: 120, Window: time.Minute, Burst: 20},
			{Method: "PUT", Path: "/v1/cv/", Limit: 60, Window: time.Minute, Burst: 10},
			{Method: "POST", Path: "/v1/profiles/", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// FromEnv overrides DefaultConfig with RATE_LIMIT_ENABLED,
// RATE_LIMIT_DEFAULT_LIMIT and RATE_LIMIT_DEFAULT_WINDOW
func FromEnv() Config {
	cfg := DefaultConfig()
	if v, err := strconv.ParseBool(os.Getenv("RATE_LIMIT_ENABLED")); err == nil {
		cfg.Enabled = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_DEFAULT_LIMIT")); err == nil {
		cfg.Default.Limit = v
	}
	if v, err := time.ParseDuration(os.Getenv("RATE_LIMIT_DEFAULT_WINDOW")); err == nil {
		cfg.Default.Window = v
	}
	return cfg
}

// Match returns the rule for a request and a name identifying it.
// Exact paths win over prefixes; unmatched requests get the default rule.
func (c Config) Match(method, path string) (Rule, string) {
	for _, r := range c.Rules {
		if r.Method == method && r.Path == path {
			return r, method + " " + r.Path
		}
	}
	for _, r := range c.Rules {
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r, method + " " + r.Path
		}
	}
	return c.Default, "default"
}
