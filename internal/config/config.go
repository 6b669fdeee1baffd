// Package config loads the optional aoc.yaml project file.
//
// Example:
//
//	input:
//	  dir: inputs
//	  pattern: day%02d.txt
//	history: .aoc/history.db
//	timing: true
//
// Relative paths are resolved against the directory holding the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evenfurther/aoc/internal/input"
)

// DefaultFile is looked up in the working directory.
const DefaultFile = "aoc.yaml"

// InputConfig locates the per-day input files.
type InputConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// Config models aoc.yaml.
type Config struct {
	Input InputConfig `yaml:"input"`

	// History is the SQLite timing database. Empty disables history.
	History string `yaml:"history,omitempty"`

	// Timing is the default of the --timing flag.
	Timing bool `yaml:"timing"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Input: InputConfig{Dir: input.DefaultDir, Pattern: input.DefaultPattern},
	}
}

// Load reads the file at path. A missing file yields Default() unless
// required is set.
func Load(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected so that typos do not pass silently.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Loader builds the input loader for this configuration. A non-empty
// override replaces every day's input.
func (c Config) Loader(override string) *input.Loader {
	return input.NewLoader(input.Config{
		Override: override,
		Dir:      c.Input.Dir,
		Pattern:  c.Input.Pattern,
	})
}

func (c *Config) applyDefaults() {
	c.Input.Dir = strings.TrimSpace(c.Input.Dir)
	if c.Input.Dir == "" {
		c.Input.Dir = input.DefaultDir
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = input.DefaultPattern
	}
	c.History = strings.TrimSpace(c.History)
}

func (c *Config) validate() error {
	if err := validatePattern(c.Input.Pattern); err != nil {
		return fmt.Errorf("input.pattern: %w", err)
	}
	return nil
}

func (c *Config) resolve(base string) {
	c.Input.Dir = resolvePath(base, c.Input.Dir)
	c.History = resolvePath(base, c.History)
}

// validatePattern accepts fmt patterns with exactly one integer verb.
func validatePattern(p string) error {
	if strings.ContainsAny(p, `/\`) {
		return fmt.Errorf("%q must be a file name, not a path", p)
	}
	verbs := 0
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		j := i + 1
		for j < len(p) && strings.IndexByte("0123456789-+ #", p[j]) >= 0 {
			j++
		}
		if j == len(p) {
			return fmt.Errorf("%q ends with an incomplete verb", p)
		}
		switch p[j] {
		case '%':
			if j != i+1 {
				return fmt.Errorf("%q has a malformed %%%% escape", p)
			}
		case 'd':
			verbs++
		default:
			return fmt.Errorf("%q uses %%%c; only %%d is allowed", p, p[j])
		}
		i = j
	}
	if verbs != 1 {
		return fmt.Errorf("%q must contain exactly one %%d, found %d", p, verbs)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	if candidate == "" || filepath.IsAbs(candidate) {
		return candidate
	}
	return filepath.Clean(filepath.Join(base, candidate))
}
