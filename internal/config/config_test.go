package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/vecscan/internal/batch"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
kernel:
  dimension: 384
  buffer_bytes: 1048576
search:
  metric: l2
  top_k: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Kernel.Dimension != 384 || cfg.Kernel.BufferBytes != 1048576 {
		t.Errorf("unexpected kernel config: %+v", cfg.Kernel)
	}
	if cfg.Search.Metric != "l2" || cfg.Search.TopK != 5 {
		t.Errorf("unexpected search config: %+v", cfg.Search)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
	if cfg.Codec.LenientBase64 {
		t.Error("lenient_base64 should default to false")
	}
}

func TestLoad_debugAndLenient(t *testing.T) {
	path := writeConfig(t, `
debug: true
codec:
  lenient_base64: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
	if !cfg.Codec.LenientBase64 {
		t.Error("lenient_base64 should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	path := writeConfig(t, `
source:
  database_path: "./data/vectors.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(path), "data", "vectors.db")
	if cfg.Source.DatabasePath != want {
		t.Errorf("database_path = %s, want %s", cfg.Source.DatabasePath, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "kernel: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := Load(writeConfig(t, "search:\n  metric: hamming\n")); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Kernel.Dimension != DefaultDimension {
		t.Errorf("default dimension: got %d", cfg.Kernel.Dimension)
	}
	if cfg.Kernel.BufferBytes != batch.DefaultBudget {
		t.Errorf("default buffer_bytes: got %d", cfg.Kernel.BufferBytes)
	}
	if cfg.Search.Metric != "cosine" {
		t.Errorf("default metric: got %s", cfg.Search.Metric)
	}
	if cfg.Search.TopK != DefaultTopK {
		t.Errorf("default top_k: got %d", cfg.Search.TopK)
	}
	if cfg.Source.Table != "vectors" || cfg.Source.IDColumn != "uid" ||
		cfg.Source.VectorColumn != "vector" || cfg.Source.GroupColumn != "group_name" {
		t.Errorf("default source: got %+v", cfg.Source)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero dimension", func(c *Config) { c.Kernel.Dimension = 0 }, "kernel.dimension"},
		{"negative budget", func(c *Config) { c.Kernel.BufferBytes = -1 }, "kernel.buffer_bytes"},
		{"unknown metric", func(c *Config) { c.Search.Metric = "dot" }, "search.metric"},
		{"negative top_k", func(c *Config) { c.Search.TopK = -2 }, "search.top_k"},
		{"unsafe table", func(c *Config) { c.Source.Table = "v; DROP TABLE x" }, "source.table"},
		{"unsafe column", func(c *Config) { c.Source.VectorColumn = "vec tor" }, "source.vector_column"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := Default()
	cfg.Kernel.Dimension = 128
	cfg.Search.Metric = "l2"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Kernel.Dimension != 128 || loaded.Search.Metric != "l2" {
		t.Errorf("loaded config: %+v", loaded)
	}
}
