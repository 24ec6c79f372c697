package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .styleaudit/config.yaml.
type ProjectConfig struct {
	Version string `yaml:"version"`
	// Tokens is the CSS file (or directory) declaring the design tokens.
	Tokens string `yaml:"tokens"`
	// LogPath is where the MCP server writes its JSONL tool-call log.
	LogPath string `yaml:"log_path"`
}

// loadProjectConfig reads .styleaudit/config.yaml from the current
// directory. Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".styleaudit/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveTokenSource returns the token CSS source to use, applying the
// fallback chain:
//  1. Explicit --tokens flag value
//  2. tokens from .styleaudit/config.yaml
//  3. Empty: discover stylesheets under the scan root
func resolveTokenSource(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.Tokens != "" {
		return cfg.Tokens
	}
	return ""
}

// resolveLogPath applies the same chain for the tool-call log.
func resolveLogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.LogPath != "" {
		return cfg.LogPath
	}
	return ""
}
