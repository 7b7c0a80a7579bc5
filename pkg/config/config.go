// Package config loads seqtool defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/krmcbride/sequtil/pkg/seq"
)

// DefaultPath is read when no config path is given explicitly.
const DefaultPath = "seqtool.yaml"

// Output formats.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatShell = "shell"
)

// Formats lists the supported output formats
var Formats = []string{FormatLines, FormatJSON, FormatYAML, FormatShell}

// Config holds parse and join defaults for seqtool.
type Config struct {
	Separator       string `yaml:"separator"`         // single character (default: ",")
	KeepEmpty       bool   `yaml:"keep_empty"`        // keep zero-length fields when parsing strings
	SpaceAfterComma bool   `yaml:"space_after_comma"` // join with ", " instead of ","
	NullIfEmpty     bool   `yaml:"null_if_empty"`     // an empty join has no result
	Format          string `yaml:"format"`            // lines, json, yaml or shell (default: lines)
	NullText        string `yaml:"null_text"`         // printed by text formats for a null join result
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Separator: string(seq.DefaultSeparator),
		Format:    FormatLines,
	}
}

// Load reads path on top of the defaults. A missing file at DefaultPath is
// not an error; a missing file anywhere else is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the separator and format
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q (expected one of %v)", c.Format, Formats)
	}
	return nil
}

// ParseOptions returns the seq parse options
func (c *Config) ParseOptions() seq.ParseOptions {
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	return seq.ParseOptions{Separator: sep, KeepEmpty: c.KeepEmpty}
}

// JoinOptions returns the seq join options
func (c *Config) JoinOptions() seq.JoinOptions {
	return seq.JoinOptions{SpaceAfterComma: c.SpaceAfterComma, NilIfEmpty: c.NullIfEmpty}
}
