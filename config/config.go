package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Changelog ChangelogConfig `json:"changelog" yaml:"changelog"`
	Filters   FilterConfig    `json:"filters" yaml:"filters"`
	Output    OutputConfig    `json:"output" yaml:"output"`
}

// ChangelogConfig holds where commit links point and how history is read.
type ChangelogConfig struct {
	ServerURL  string `json:"serverUrl" yaml:"serverUrl"`   // Default: https://github.com
	Repository string `json:"repository" yaml:"repository"` // owner/name
	Backend    string `json:"backend" yaml:"backend"`       // Default: cli
	GitBinary  string `json:"gitBinary" yaml:"gitBinary"`   // Default: git
}

// FilterConfig holds tag name filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"` // Glob patterns a tag must match
	Exclude []string `json:"exclude" yaml:"exclude"` // Glob patterns that drop a tag
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format string `json:"format" yaml:"format"` // Empty selects ci under GitHub Actions, console otherwise
	Path   string `json:"path" yaml:"path"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Changelog: ChangelogConfig{
			ServerURL: "https://github.com",
			Backend:   "cli",
			GitBinary: "git",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// configFileNames are searched, in order, when no path is given.
var configFileNames = []string{
	".git-changelog.json",
	".git-changelog.yaml",
	".git-changelog.yml",
}

// LoadConfig loads configuration from a file, merging with defaults.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file in the format its extension names.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func findConfigFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, name := range configFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
