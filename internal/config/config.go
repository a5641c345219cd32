// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"pdfsearch/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Profiles for different search scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Settings holds the values a config file or profile can set
type Settings struct {
	Debug    bool `yaml:"debug"`
	NoColor  bool `yaml:"no_color"`
	Validate bool `yaml:"validate"`
}

// Profile represents a named group of settings selected with -profile
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{
			"strict": {
				Settings:    Settings{Validate: true},
				Description: "Validate each PDF's structure with pdfcpu before searching it",
			},
		},
	}
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	if err := paths.ValidatePath(configPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := decodeConfig(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// a file that declares "profiles:" with no entries decodes to nil
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// decodeConfig decodes a YAML mapping into config, rejecting unknown keys and
// documents that are not mappings. An empty document leaves config unchanged.
func decodeConfig(data []byte, config *Config) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return nil
	}
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping at the top level", doc.Line)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadConfigOrDefault loads configFile (or the discovered config file when
// configFile is empty). Errors are returned alongside the default
// configuration so the caller can warn and carry on.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// FindConfigFile looks for a configuration file in the current directory and
// then in the user config directory. It returns "" when none exists.
func FindConfigFile() string {
	for _, name := range []string{".pdfsearch.yaml", ".pdfsearch.yml", "pdfsearch.yaml"} {
		if fileExists(name) {
			return name
		}
	}

	if userConfig := paths.GetConfigFile(); userConfig != "" && fileExists(userConfig) {
		return userConfig
	}
	return ""
}

// ValidateConfig checks a loaded configuration for unusable values
func ValidateConfig(config *Config) error {
	for name := range config.Profiles {
		if name == "" {
			return fmt.Errorf("profile name cannot be empty")
		}
	}
	return nil
}

// ListProfiles returns the profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
