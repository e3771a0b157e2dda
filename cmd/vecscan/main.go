// Package main is the vecscan CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/vecscan/internal/config"
	"github.com/hyperjump/vecscan/internal/metrics"
	"github.com/hyperjump/vecscan/internal/search"
	"github.com/hyperjump/vecscan/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/vecscan/config.yaml"

var (
	configPath  string
	debugFlag   bool
	dimFlag     int
	metricsFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "vecscan",
	Short: "Brute-force vector similarity search",
	Long: `Scores every vector of a collection against a query vector with cosine
similarity or squared L2 distance and returns the best matches.

Vectors are base64 or raw little-endian arrays of a fixed dimension.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&dimFlag, "dim", 0, "vector dimension (overrides kernel.dimension)")
	rootCmd.PersistentFlags().BoolVar(&metricsFlag, "metrics", false, "print Prometheus metrics to stderr on exit")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config named by --config. When the flag is left at its
// default, ./config.yaml is tried first (for development), then the default
// path; if neither exists the compiled-in defaults are used.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	if cmd.Flags().Changed("config") {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, configPath, nil
	}
	candidates := []string{defaultConfigPath}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append([]string{filepath.Join(cwd, "config.yaml")}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return config.Default(), "", nil
}

// runtime is what every scoring command needs: config, logger, engine and
// the registry its metrics are recorded on.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	engine   *search.Engine
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dimFlag > 0 {
		cfg.Kernel.Dimension = dimFlag
	}
	debug := cfg.Debug || debugFlag
	logger, err := utils.NewLogger(debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("config_path", path),
		zap.Int("dimension", cfg.Kernel.Dimension),
	)

	reg := prometheus.NewRegistry()
	engine, err := search.NewEngine(cfg, logger, search.WithMetrics(metrics.NewRecorder(reg)))
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, registry: reg, engine: engine}, nil
}

func (r *runtime) close(cmd *cobra.Command) {
	if metricsFlag {
		if err := writeMetrics(cmd.ErrOrStderr(), r.registry); err != nil {
			r.logger.Warn("failed to write metrics", zap.Error(err))
		}
	}
	_ = r.logger.Sync()
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
