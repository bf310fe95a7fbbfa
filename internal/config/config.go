// Package config loads settings for the namedargs command line tools.
//
// Settings come from a .namedargs.toml or .namedargs.yaml file, are then
// overridden by NAMEDARGS_* environment variables, and finally by flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "NAMEDARGS_"

// Files searched, in order, when no explicit path is given.
var DefaultFiles = []string{".namedargs.toml", ".namedargs.yaml", ".namedargs.yml"}

// Output formats understood by the parse command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Color     bool   `toml:"color" yaml:"color"`
	Strict    bool   `toml:"strict" yaml:"strict"`
	Format    string `toml:"format" yaml:"format"`
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	LogFile   string `toml:"log_file" yaml:"log_file"`

	// Path of the file the settings were read from, empty for defaults.
	Source string `toml:"-" yaml:"-"`
}

func Default() *Config {
	return &Config{
		Color:  true,
		Format: FormatText,
	}
}

// Load reads path on top of the defaults. An empty path searches dir for
// one of DefaultFiles and returns the defaults when none exists.
func Load(path, dir string) (*Config, error) {
	if path == "" {
		path = discover(dir)
		if path == "" {
			return Default(), nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(content, cfg)
	case ".toml", "":
		err = decodeTOML(content, cfg)
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg.Source = path
	return cfg, nil
}

func discover(dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func decodeTOML(content []byte, cfg *Config) error {
	md, err := toml.Decode(string(content), cfg)
	if err != nil {
		return fmt.Errorf("TOML parse error: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("YAML parse error: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from NAMEDARGS_* variables found by lookup,
// which is normally os.LookupEnv. NO_COLOR disables colour as well.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if _, ok := lookup("NO_COLOR"); ok {
		c.Color = false
	}

	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{"COLOR", &c.Color},
		{"STRICT", &c.Strict},
	} {
		if v, ok := lookup(EnvPrefix + b.name); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, b.name, err)
			}
			*b.dst = parsed
		}
	}

	if v, ok := lookup(EnvPrefix + "VERBOSITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSITY: %w", EnvPrefix, err)
		}
		c.Verbosity = n
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want %s, %s or %s)", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}
