// Package search scores a whole collection against one query vector and
// optionally ranks the result.
package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/vecscan/internal/batch"
	"github.com/hyperjump/vecscan/internal/codec"
	"github.com/hyperjump/vecscan/internal/config"
	"github.com/hyperjump/vecscan/internal/metrics"
	"github.com/hyperjump/vecscan/internal/models"
	"github.com/hyperjump/vecscan/internal/topk"
	"github.com/hyperjump/vecscan/internal/vector"
)

// Engine runs brute-force scoring calls. It is safe for concurrent use: each
// call borrows its own scratch matrix from a pool.
type Engine struct {
	codec   *codec.Codec
	pool    *batch.Pool
	kernel  config.KernelConfig
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics records every call on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = r }
}

// NewEngine creates an engine for cfg. The kernel section is copied, so later
// changes to cfg do not affect the engine. A nil logger disables logging.
func NewEngine(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Kernel.Dimension <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", cfg.Kernel.Dimension)
	}
	if cfg.Kernel.BufferBytes <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", cfg.Kernel.BufferBytes)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var codecOpts []codec.Option
	if cfg.Codec.LenientBase64 {
		codecOpts = append(codecOpts, codec.WithLenientBase64())
	}
	c, err := codec.New(cfg.Kernel.Dimension, codecOpts...)
	if err != nil {
		return nil, err
	}

	capacity := batch.Capacity(cfg.Kernel.Dimension, cfg.Kernel.BufferBytes)
	e := &Engine{
		codec:  c,
		pool:   batch.NewPool(cfg.Kernel.Dimension, capacity),
		kernel: cfg.Kernel,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger.Debug("engine ready",
		zap.Int("dimension", cfg.Kernel.Dimension),
		zap.Int("element_width", vector.ElementWidth),
		zap.Int("batch_capacity", capacity),
		zap.Bool("lenient_base64", cfg.Codec.LenientBase64),
	)
	return e, nil
}

// Codec returns the engine's codec.
func (e *Engine) Codec() *codec.Codec {
	return e.codec
}

// Dimension returns the configured number of elements per vector.
func (e *Engine) Dimension() int {
	return e.kernel.Dimension
}

// BatchCapacity returns the number of rows scored per batch.
func (e *Engine) BatchCapacity() int {
	return e.pool.Capacity()
}

// Similarity returns the cosine similarity of every raw-encoded item to query.
func (e *Engine) Similarity(query []byte, collection [][]byte) ([]vector.Float, error) {
	return e.Score(vector.MetricCosine, query, collection)
}

// L2Score returns the squared L2 distance of every raw-encoded item to query.
func (e *Engine) L2Score(query []byte, collection [][]byte) ([]vector.Float, error) {
	return e.Score(vector.MetricL2, query, collection)
}

// SimilarityBase64 is Similarity for base64-encoded vectors.
func (e *Engine) SimilarityBase64(query string, collection []string) ([]vector.Float, error) {
	return e.ScoreBase64(vector.MetricCosine, query, collection)
}

// L2ScoreBase64 is L2Score for base64-encoded vectors.
func (e *Engine) L2ScoreBase64(query string, collection []string) ([]vector.Float, error) {
	return e.ScoreBase64(vector.MetricL2, query, collection)
}

// Score scores every raw-encoded item of collection against query with metric.
// scores[i] belongs to collection[i]. Any malformed item aborts the call.
func (e *Engine) Score(metric vector.Metric, query []byte, collection [][]byte) ([]vector.Float, error) {
	return e.run(metric, len(collection),
		func() ([]vector.Float, error) { return e.codec.Decode(query) },
		func(i int, row []vector.Float) error { return e.codec.DecodeInto(row, collection[i]) },
	)
}

// ScoreBase64 is Score for base64-encoded vectors.
func (e *Engine) ScoreBase64(metric vector.Metric, query string, collection []string) ([]vector.Float, error) {
	return e.run(metric, len(collection),
		func() ([]vector.Float, error) { return e.codec.DecodeBase64(query) },
		func(i int, row []vector.Float) error { return e.codec.DecodeBase64Into(row, collection[i]) },
	)
}

// ScoreBase64Query scores a raw-encoded collection against a base64 query.
func (e *Engine) ScoreBase64Query(metric vector.Metric, query string, collection [][]byte) ([]vector.Float, error) {
	return e.run(metric, len(collection),
		func() ([]vector.Float, error) { return e.codec.DecodeBase64(query) },
		func(i int, row []vector.Float) error { return e.codec.DecodeInto(row, collection[i]) },
	)
}

// TopKIndices returns the indices of the k largest scores, largest first.
// k is clamped to len(scores). For distances, negate the scores or use Search.
func (e *Engine) TopKIndices(scores []vector.Float, k int) []int {
	return topk.Indices(scores, k)
}

// Search scores collection and returns the k best items in the metric's
// natural order: highest similarity first for cosine, smallest distance
// first for l2.
func (e *Engine) Search(metric vector.Metric, query []byte, collection [][]byte, k int) ([]models.Hit, error) {
	scores, err := e.Score(metric, query, collection)
	if err != nil {
		return nil, err
	}
	return Rank(metric, scores, k), nil
}

// SearchBase64 is Search for base64-encoded vectors.
func (e *Engine) SearchBase64(metric vector.Metric, query string, collection []string, k int) ([]models.Hit, error) {
	scores, err := e.ScoreBase64(metric, query, collection)
	if err != nil {
		return nil, err
	}
	return Rank(metric, scores, k), nil
}

// Rank selects the k best scores for metric and returns them as hits.
func Rank(metric vector.Metric, scores []vector.Float, k int) []models.Hit {
	var idx []int
	if metric.HigherIsBetter() {
		idx = topk.Indices(scores, k)
	} else {
		idx = topk.Ascending(scores, k)
	}
	hits := make([]models.Hit, len(idx))
	for i, ix := range idx {
		hits[i] = models.Hit{Index: ix, Score: float64(scores[ix]), Rank: i + 1}
	}
	return hits
}

func (e *Engine) run(metric vector.Metric, n int, decodeQuery func() ([]vector.Float, error), decode batch.DecodeFunc) ([]vector.Float, error) {
	if !metric.Valid() {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}
	start := time.Now()
	callID := uuid.NewString()

	query, err := decodeQuery()
	if err != nil {
		err = fmt.Errorf("decode query: %w", err)
		e.finish(callID, metric, n, 0, start, err)
		return nil, err
	}

	b := e.pool.Get()
	defer e.pool.Put(b)

	scores := make([]vector.Float, n)
	batches, err := b.Score(n, decode, metric, query, scores)
	e.finish(callID, metric, n, batches, start, err)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (e *Engine) finish(callID string, metric vector.Metric, n, batches int, start time.Time, err error) {
	elapsed := time.Since(start)
	e.metrics.Observe(metric.String(), n, batches, elapsed, err)
	if err != nil {
		e.logger.Warn("scoring failed",
			zap.String("call_id", callID),
			zap.String("metric", metric.String()),
			zap.Int("items", n),
			zap.Error(err),
		)
		return
	}
	e.logger.Debug("scored collection",
		zap.String("call_id", callID),
		zap.String("metric", metric.String()),
		zap.Int("items", n),
		zap.Int("batches", batches),
		zap.Duration("elapsed", elapsed),
	)
}
