package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperjump/vecscan/internal/search"
	"github.com/hyperjump/vecscan/internal/source"
	"github.com/hyperjump/vecscan/internal/vector"
)

// Input formats accepted by --format.
const (
	formatLines  = "lines"
	formatRaw    = "raw"
	formatSQLite = "sqlite"
)

// collectionFlags are shared by search and score.
type collectionFlags struct {
	query  string
	input  string
	format string
	metric string
	group  string
	output string
}

func (f *collectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "base64-encoded query vector (required)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", `collection file, "-" for stdin; database path for sqlite`)
	cmd.Flags().StringVarP(&f.format, "format", "f", formatLines, "collection format: lines, raw or sqlite")
	cmd.Flags().StringVarP(&f.metric, "metric", "m", "", "cosine or l2 (default from config)")
	cmd.Flags().StringVar(&f.group, "group", "", "only score vectors of this group (sqlite only)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("query")
}

func loadCollection(ctx context.Context, cmd *cobra.Command, rt *runtime, f *collectionFlags) (*source.Collection, error) {
	if f.group != "" && f.format != formatSQLite {
		return nil, fmt.Errorf("--group requires --format %s", formatSQLite)
	}
	switch f.format {
	case formatLines, formatRaw:
		r, closeFn, err := openInput(cmd, f.input)
		if err != nil {
			return nil, err
		}
		defer closeFn()
		if f.format == formatLines {
			return source.ReadLines(r)
		}
		return source.ReadRaw(r, rt.engine.Codec().EncodedLen())
	case formatSQLite:
		path := f.input
		if path == "" {
			path = rt.cfg.Source.DatabasePath
		}
		if path == "" {
			return nil, fmt.Errorf("no database: pass --input or set source.database_path")
		}
		db, err := source.OpenSQLite(path, rt.cfg.Source)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Load(ctx, f.group)
	default:
		return nil, fmt.Errorf("unknown input format %q (want lines, raw or sqlite)", f.format)
	}
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	switch path {
	case "":
		return nil, nil, fmt.Errorf("--input is required")
	case "-":
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// scoreCollection scores coll against the base64 query.
func scoreCollection(e *search.Engine, metric vector.Metric, query string, coll *source.Collection) ([]vector.Float, error) {
	if coll.Base64() {
		return e.ScoreBase64(metric, query, coll.Texts)
	}
	return e.ScoreBase64Query(metric, query, coll.Items)
}
