// Package vector holds the embedding element type, the row-major Matrix the
// kernel scores against, and the similarity functions.
package vector

import "errors"

var (
	// ErrDimensionMismatch is returned when a query, row or matrix does not
	// have the configured number of elements.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidEncoding is returned when an encoded vector cannot be decoded
	// into exactly D elements.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Scorer scores every row of m against query. Implementations must not
// retain or mutate m or query.
type Scorer interface {
	Score(m Matrix, query []Float) ([]Float, error)
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(m Matrix, query []Float) ([]Float, error)

// Score calls f(m, query).
func (f ScorerFunc) Score(m Matrix, query []Float) ([]Float, error) {
	return f(m, query)
}
