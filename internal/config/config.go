// Package config provides configuration loading and structs for vecscan.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/vecscan/internal/vector"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Kernel KernelConfig `yaml:"kernel"`
	Codec  CodecConfig  `yaml:"codec"`
	Search SearchConfig `yaml:"search"`
	Source SourceConfig `yaml:"source"`
}

// KernelConfig fixes the shape of every vector and the scratch memory budget.
// It is read once at startup; an Engine never changes it afterwards.
type KernelConfig struct {
	Dimension   int `yaml:"dimension"`
	BufferBytes int `yaml:"buffer_bytes"`
}

// CodecConfig holds encoding settings.
type CodecConfig struct {
	// LenientBase64 stops base64 decoding at the first foreign character
	// instead of rejecting the vector.
	LenientBase64 bool `yaml:"lenient_base64"`
}

// SearchConfig holds defaults for search calls.
type SearchConfig struct {
	Metric string `yaml:"metric"`
	TopK   int    `yaml:"top_k"`
}

// SourceConfig describes where the CLI reads a collection from when it is
// stored in a SQLite table.
type SourceConfig struct {
	DatabasePath string `yaml:"database_path"`
	Table        string `yaml:"table"`
	IDColumn     string `yaml:"id_column"`
	VectorColumn string `yaml:"vector_column"`
	GroupColumn  string `yaml:"group_column"`
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads and parses the config file at path, applies defaults, expands
// paths and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if cfg.Source.DatabasePath != "" {
		cfg.Source.DatabasePath = expandPath(cfg.Source.DatabasePath, filepath.Dir(path))
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that cfg describes a usable kernel. Table and column names
// end up in SQL text, so they must be plain identifiers.
func Validate(cfg *Config) error {
	if cfg.Kernel.Dimension <= 0 {
		return fmt.Errorf("invalid config: kernel.dimension must be positive, got %d", cfg.Kernel.Dimension)
	}
	if cfg.Kernel.BufferBytes <= 0 {
		return fmt.Errorf("invalid config: kernel.buffer_bytes must be positive, got %d", cfg.Kernel.BufferBytes)
	}
	if _, err := vector.ParseMetric(cfg.Search.Metric); err != nil {
		return fmt.Errorf("invalid config: search.metric: %w", err)
	}
	if cfg.Search.TopK < 0 {
		return fmt.Errorf("invalid config: search.top_k must not be negative, got %d", cfg.Search.TopK)
	}
	for name, v := range map[string]string{
		"source.table":         cfg.Source.Table,
		"source.id_column":     cfg.Source.IDColumn,
		"source.vector_column": cfg.Source.VectorColumn,
		"source.group_column":  cfg.Source.GroupColumn,
	} {
		if !identifier.MatchString(v) {
			return fmt.Errorf("invalid config: %s %q is not a valid identifier", name, v)
		}
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
