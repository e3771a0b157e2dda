// Package cli provides output writers for the vecscan command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/vecscan/internal/models"
	"github.com/hyperjump/vecscan/internal/vector"
	"github.com/hyperjump/vecscan/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

const maxIDLen = 48

// WriteHits writes a ranked search response to w in the given format.
func WriteHits(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, response)
	}
	if _, err := fmt.Fprintf(w, "\nTop %d of %d by %s in %dms\n\n",
		len(response.Hits), response.Total, response.Metric, response.QueryTime); err != nil {
		return err
	}
	for _, h := range response.Hits {
		id := h.ID
		if id == "" {
			id = fmt.Sprintf("#%d", h.Index)
		}
		if _, err := fmt.Fprintf(w, "%3d. %-*s  %.6f\n", h.Rank, maxIDLen, utils.Truncate(id, maxIDLen), h.Score); err != nil {
			return err
		}
	}
	return nil
}

// WriteScores writes the full score array, one score per line in text mode.
func WriteScores(w io.Writer, response *models.ScoreResponse, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, response)
	}
	for i, s := range response.Scores {
		var err error
		if i < len(response.IDs) {
			_, err = fmt.Fprintf(w, "%s\t%.6f\n", response.IDs[i], s)
		} else {
			_, err = fmt.Fprintf(w, "%d\t%.6f\n", i, s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVector writes decoded vector elements, comma separated in text mode.
func WriteVector(w io.Writer, v []vector.Float, format OutputFormat) error {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	if format == OutputJSON {
		return writeJSON(w, models.JSONFloats(out))
	}
	parts := make([]string, len(out))
	for i, x := range out {
		parts[i] = fmt.Sprintf("%g", x)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}

// Float64s widens scores for output.
func Float64s(scores []vector.Float) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = float64(s)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
