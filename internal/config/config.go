// Package config loads settings of the htex command from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/eolymp/go-htex"
	"gopkg.in/yaml.v3"
)

// Config holds the complete command configuration
type Config struct {
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Document DocumentConfig `toml:"document" yaml:"document"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// OutputConfig controls where converted files are written
type OutputConfig struct {
	Dir       string `toml:"dir" yaml:"dir"`             // empty means next to the input file
	Extension string `toml:"extension" yaml:"extension"` // extension replacing the input one
}

// DocumentConfig controls the LaTeX preamble
type DocumentConfig struct {
	Class    string          `toml:"class" yaml:"class"`
	Packages []PackageConfig `toml:"packages" yaml:"packages"`
}

type PackageConfig struct {
	Name    string `toml:"name" yaml:"name"`
	Options string `toml:"options" yaml:"options"`
}

type LogConfig struct {
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// Format of a configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, format is detected by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data, DetectFormat(path))
}

// Parse decodes configuration and applies defaults
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the HTEX_CONFIG environment variable or one of default locations.
// Configuration is optional, defaults are returned when no file exists.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("HTEX_CONFIG"); path != "" {
		return Load(path)
	}

	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return Default(), nil
}

// DefaultPaths lists locations searched for configuration file
func DefaultPaths() []string {
	paths := []string{"./htex.toml", "./htex.yaml", "./htex.yml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "htex", "config.toml"))
	}

	return paths
}

// DetectFormat guesses file format by extension, TOML is the default
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) applyDefaults() {
	if c.Output.Extension == "" {
		c.Output.Extension = ".tex"
	}

	if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}

	if c.Document.Class == "" {
		c.Document.Class = "article"
	}

	if c.Document.Packages == nil {
		for _, pkg := range htex.DefaultOptions().Packages {
			c.Document.Packages = append(c.Document.Packages, PackageConfig{Name: pkg.Name, Options: pkg.Options})
		}
	}
}

func (c *Config) expandEnvVars() {
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
}

// Options converts document settings to transpiler options
func (c *Config) Options() htex.Options {
	opts := htex.Options{DocumentClass: c.Document.Class}
	for _, pkg := range c.Document.Packages {
		opts.Packages = append(opts.Packages, htex.Package{Name: pkg.Name, Options: pkg.Options})
	}

	return opts
}

// OutputPath returns path of the LaTeX file for a given input: the input base name with extension replaced,
// placed in output directory or next to the input
func (c *Config) OutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + c.Output.Extension

	dir := c.Output.Dir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	return filepath.Join(dir, base)
}
