package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadTrex loads the runner configuration.
// Search order: customPath -> ~/.trex/configs/trex.{yaml,toml} ->
// ./configs/trex.{yaml,toml} -> embedded default.
// Fields missing from a file keep their default values.
func LoadTrex(customPath string) (TrexConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultTrexConfig()
	if err := yaml.Unmarshal(defaultTrexYAML, &cfg); err != nil {
		return DefaultTrexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a config file over the defaults, choosing the format by extension.
func loadFile(path string) (TrexConfig, error) {
	cfg := DefaultTrexConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// formatOf returns the format implied by a file name. Unknown extensions are YAML.
func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode unmarshals data in the given format into cfg.
func Decode(data []byte, format Format, cfg *TrexConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	for _, name := range []string{"trex.yaml", "trex.toml"} {
		if p := userConfigPath(name); p != "" {
			paths = append(paths, p)
		}
	}
	return append(paths,
		filepath.Join("configs", "trex.yaml"),
		filepath.Join("configs", "trex.toml"),
	)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trex", "configs", filename)
}
