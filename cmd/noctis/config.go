package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"noctis/internal/merkle"
)

// Config holds the tool's settings. A missing config file is created with
// defaults so a first run leaves a template behind.
type Config struct {
	LogLevel  string `json:"log_level"`
	TreeDepth int    `json:"tree_depth"`
	HexOutput bool   `json:"hex_output"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		TreeDepth: merkle.Depth,
		HexOutput: false,
	}
}

// LoadConfig reads the config file, writing defaults in its place when it
// does not exist yet.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err == nil {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening config file: %w", err)
		}
		defer file.Close()

		var config Config
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("decoding config file: %w", err)
		}
		return &config, nil
	}

	config := DefaultConfig()
	if err := SaveConfig(config, path); err != nil {
		return nil, fmt.Errorf("saving default config: %w", err)
	}
	return config, nil
}

// SaveConfig writes the config as indented JSON, creating the directory if
// needed.
func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TreeDepth <= 0 || c.TreeDepth > merkle.Depth {
		return fmt.Errorf("tree_depth must be in 1..%d", merkle.Depth)
	}
	return nil
}
