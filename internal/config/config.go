// Package config loads uu settings from defaults, an optional TOML file and
// UU_* environment variables, in that order of precedence (lowest first).
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/timepp/uu/uuerrors"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "UU_CONFIG"

// Config holds all user-tunable defaults.
type Config struct {
	// Serializer defaults.
	Indent          int  `toml:"indent"`
	Compact         bool `toml:"compact"`
	MaxStringLength int  `toml:"max_string_length"`
	MaxArraySize    int  `toml:"max_array_size"`

	// Walker defaults. A negative depth means unlimited.
	WalkMaxDepth  int  `toml:"walk_max_depth"`
	CaseSensitive bool `toml:"case_sensitive"`

	// Input limits.
	DecodeMaxDepth int   `toml:"decode_max_depth"`
	DecodeMaxNodes int   `toml:"decode_max_nodes"` // expanded size when aliases share subtrees
	MaxInputSize   int64 `toml:"max_input_size"`

	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`

	// MCP server cache.
	CacheEnabled bool  `toml:"cache_enabled"`
	CacheMaxCost int64 `toml:"cache_max_cost"`
	ResultLimit  int   `toml:"result_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Indent:         2,
		Compact:        true,
		WalkMaxDepth:   -1,
		CaseSensitive:  true,
		DecodeMaxDepth: 10000,
		DecodeMaxNodes: 1_000_000,
		MaxInputSize:   64 << 20,
		Color:          "auto",
		CacheEnabled:   true,
		CacheMaxCost:   256 << 20,
		ResultLimit:    100,
	}
}

// Load builds the configuration. When path is empty the UU_CONFIG variable is
// consulted; when both are empty no file is read. A missing or malformed file
// is an error; an invalid environment value logs a warning and is ignored.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return &uuerrors.ConfigError{Option: "config file", Value: path, Cause: err}
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key ignored", "key", key.String(), "file", path) //nolint:gosec // G706: values are structured log fields, not format strings
	}
	return nil
}

// applyEnv overrides fields from UU_* variables.
func (c *Config) applyEnv() {
	c.Indent = envInt("UU_INDENT", c.Indent)
	c.Compact = envBool("UU_COMPACT", c.Compact)
	c.MaxStringLength = envInt("UU_MAX_STRING_LENGTH", c.MaxStringLength)
	c.MaxArraySize = envInt("UU_MAX_ARRAY_SIZE", c.MaxArraySize)
	c.WalkMaxDepth = envInt("UU_WALK_MAX_DEPTH", c.WalkMaxDepth)
	c.CaseSensitive = envBool("UU_CASE_SENSITIVE", c.CaseSensitive)
	c.DecodeMaxDepth = envInt("UU_DECODE_MAX_DEPTH", c.DecodeMaxDepth)
	c.DecodeMaxNodes = envInt("UU_DECODE_MAX_NODES", c.DecodeMaxNodes)
	c.MaxInputSize = int64(envInt("UU_MAX_INPUT_SIZE", int(c.MaxInputSize)))
	c.Color = envChoice("UU_COLOR", c.Color, "auto", "always", "never")
	c.CacheEnabled = envBool("UU_CACHE_ENABLED", c.CacheEnabled)
	c.CacheMaxCost = int64(envInt("UU_CACHE_MAX_COST", int(c.CacheMaxCost)))
	c.ResultLimit = envInt("UU_RESULT_LIMIT", c.ResultLimit)
}

// Validate checks values that cannot be interpreted.
func (c *Config) Validate() error {
	switch {
	case c.Indent < 0:
		return &uuerrors.ConfigError{Option: "indent", Value: c.Indent, Message: "must not be negative"}
	case c.DecodeMaxDepth <= 0:
		return &uuerrors.ConfigError{Option: "decode_max_depth", Value: c.DecodeMaxDepth, Message: "must be positive"}
	case c.DecodeMaxNodes <= 0:
		return &uuerrors.ConfigError{Option: "decode_max_nodes", Value: c.DecodeMaxNodes, Message: "must be positive"}
	case c.MaxInputSize <= 0:
		return &uuerrors.ConfigError{Option: "max_input_size", Value: c.MaxInputSize, Message: "must be positive"}
	case c.Color != "auto" && c.Color != "always" && c.Color != "never":
		return &uuerrors.ConfigError{Option: "color", Value: c.Color, Message: "valid values: auto, always, never"}
	case c.CacheEnabled && c.CacheMaxCost <= 0:
		return &uuerrors.ConfigError{Option: "cache_max_cost", Value: c.CacheMaxCost, Message: "must be positive when the cache is enabled"}
	case c.ResultLimit <= 0:
		return &uuerrors.ConfigError{Option: "result_limit", Value: c.ResultLimit, Message: "must be positive"}
	}
	return nil
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, keeping previous value", "key", key, "value", v, "previous", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

// envInt accepts any integer, negative values included: several settings use
// non-positive numbers to mean "unbounded".
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("invalid int env var, keeping previous value", "key", key, "value", v, "previous", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envChoice(key, fallback string, choices ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	for _, c := range choices {
		if v == c {
			return v
		}
	}
	slog.Warn("invalid env var, keeping previous value", "key", key, "value", v, "previous", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
	return fallback
}
