package config

import (
	"github.com/hyperjump/vecscan/internal/batch"
	"github.com/hyperjump/vecscan/internal/vector"
)

// Compiled-in defaults.
const (
	DefaultDimension = 768
	DefaultTopK      = 10
)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Kernel.Dimension == 0 {
		cfg.Kernel.Dimension = DefaultDimension
	}
	if cfg.Kernel.BufferBytes == 0 {
		cfg.Kernel.BufferBytes = batch.DefaultBudget
	}
	if cfg.Search.Metric == "" {
		cfg.Search.Metric = string(vector.MetricCosine)
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = DefaultTopK
	}
	if cfg.Source.Table == "" {
		cfg.Source.Table = "vectors"
	}
	if cfg.Source.IDColumn == "" {
		cfg.Source.IDColumn = "uid"
	}
	if cfg.Source.VectorColumn == "" {
		cfg.Source.VectorColumn = "vector"
	}
	if cfg.Source.GroupColumn == "" {
		cfg.Source.GroupColumn = "group_name"
	}
}
