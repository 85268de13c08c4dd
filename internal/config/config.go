// Package config loads and validates the rangelink configuration: the
// delimiter tokens the codec operates with and the log settings. The
// codec itself never reads configuration; everything is resolved here
// and passed in.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rangelink/internal/link"
)

// Config is the on-disk configuration. Missing fields fall back to
// defaults.
type Config struct {
	Delimiters DelimiterConfig `yaml:"delimiters"`
	Log        LogConfig       `yaml:"log"`
}

// DelimiterConfig mirrors link.Delimiters in both YAML (config file)
// and JSON (LSP initialization options) form.
type DelimiterConfig struct {
	Line     string `yaml:"line" json:"line"`
	Position string `yaml:"position" json:"position"`
	Range    string `yaml:"range" json:"range"`
	Hash     string `yaml:"hash" json:"hash"`
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := link.DefaultDelimiters()
	return &Config{
		Delimiters: DelimiterConfig{
			Line:     d.Line,
			Position: d.Position,
			Range:    d.Range,
			Hash:     d.Hash,
		},
		Log: LogConfig{Verbosity: 1},
	}
}

// Load reads a YAML config file, fills defaults, and validates. An
// empty path returns the default config.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOptions merges LSP initialization options over the config. The
// options arrive as an already-unmarshalled JSON value; a "delimiters"
// key mirrors the YAML schema. Unknown keys are ignored.
func (c *Config) ApplyOptions(options any) error {
	if options == nil {
		return nil
	}
	m, ok := options.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected initialization options type %T", options)
	}
	raw, ok := m["delimiters"]
	if !ok {
		return nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode delimiter options: %w", err)
	}
	if err := json.Unmarshal(data, &c.Delimiters); err != nil {
		return fmt.Errorf("failed to decode delimiter options: %w", err)
	}

	c.fillDefaults()
	return c.Validate()
}

// Validate enforces the delimiter contract the codec assumes: four
// non-empty, pairwise distinct tokens with no whitespace or digits.
// Violations would make link parsing ambiguous.
func (c *Config) Validate() error {
	names := []string{"line", "position", "range", "hash"}
	tokens := map[string]string{
		"line":     c.Delimiters.Line,
		"position": c.Delimiters.Position,
		"range":    c.Delimiters.Range,
		"hash":     c.Delimiters.Hash,
	}

	for _, name := range names {
		token := tokens[name]
		if token == "" {
			return fmt.Errorf("delimiter %q must not be empty", name)
		}
		if strings.ContainsAny(token, " \t\n0123456789") {
			return fmt.Errorf("delimiter %q must not contain whitespace or digits: %q", name, token)
		}
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if tokens[names[i]] == tokens[names[j]] {
				return fmt.Errorf("delimiters %q and %q must be distinct: %q", names[i], names[j], tokens[names[i]])
			}
		}
	}
	return nil
}

// Delims returns the codec delimiters.
func (c *Config) Delims() link.Delimiters {
	return link.Delimiters{
		Line:     c.Delimiters.Line,
		Position: c.Delimiters.Position,
		Range:    c.Delimiters.Range,
		Hash:     c.Delimiters.Hash,
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Delimiters.Line == "" {
		c.Delimiters.Line = def.Delimiters.Line
	}
	if c.Delimiters.Position == "" {
		c.Delimiters.Position = def.Delimiters.Position
	}
	if c.Delimiters.Range == "" {
		c.Delimiters.Range = def.Delimiters.Range
	}
	if c.Delimiters.Hash == "" {
		c.Delimiters.Hash = def.Delimiters.Hash
	}
	if c.Log.Verbosity == 0 {
		c.Log.Verbosity = def.Log.Verbosity
	}
}
