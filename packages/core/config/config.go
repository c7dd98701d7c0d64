package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText    = "text"
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
)

// Formats lists every valid value of Config.Format.
var Formats = []string{FormatText, FormatConsole, FormatJSON, FormatYAML, FormatTOML}

// Config represents the curlparse configuration
type Config struct {
	Format        string `yaml:"format,omitempty" toml:"format,omitempty"`
	DefaultMethod string `yaml:"defaultMethod,omitempty" toml:"defaultMethod,omitempty"` // shown when a command sets no method
	BodySchema    string `yaml:"bodySchema,omitempty" toml:"bodySchema,omitempty"`       // JSON Schema file used by validate
	NoColor       *bool  `yaml:"noColor,omitempty" toml:"noColor,omitempty"`
	PrettyBody    *bool  `yaml:"prettyBody,omitempty" toml:"prettyBody,omitempty"`
	Verbose       *bool  `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetPrettyBody returns the pretty body setting, defaulting to true
func (c *Config) GetPrettyBody() bool {
	return getBool(c.PrettyBody, true)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected one of %s)", c.Format, strings.Join(Formats, ", "))
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".curlparse.yaml",
	".curlparse.yml",
	".curlparse.toml",
	"curlparse.yaml",
	"curlparse.yml",
	"curlparse.toml",
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := loadConfigFromFile(path)
		return cfg, path, err
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory. The
// returned path is empty when no file was found and defaults are used.
func FindAndLoadConfig(dir string) (*Config, string, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := loadConfigFromFile(configPath)
			return cfg, configPath, err
		}
	}

	return DefaultConfig(), "", nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	config.DefaultMethod = strings.ToUpper(config.DefaultMethod)

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Format != "" {
		result.Format = other.Format
	}
	if other.DefaultMethod != "" {
		result.DefaultMethod = strings.ToUpper(other.DefaultMethod)
	}
	if other.BodySchema != "" {
		result.BodySchema = other.BodySchema
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.PrettyBody != nil {
		result.PrettyBody = other.PrettyBody
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	return &result
}

// SaveConfig saves the configuration to a file, as TOML when path ends
// in .toml and as YAML otherwise
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
