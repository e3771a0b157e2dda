// Package batch scores large collections through a fixed-capacity scratch
// matrix so that working memory stays O(capacity * D) regardless of how many
// vectors are scored.
package batch

import (
	"fmt"

	"github.com/hyperjump/vecscan/internal/vector"
)

// DefaultBudget is the default scratch memory budget in bytes (8 MiB).
const DefaultBudget = 8 << 20

// Capacity returns the number of rows of dim elements that fit in budget
// bytes. It is never less than one.
func Capacity(dim, budget int) int {
	if dim <= 0 {
		return 1
	}
	return max(1, budget/(dim*vector.ElementWidth))
}

// DecodeFunc decodes collection item i into row, which holds exactly D elements.
type DecodeFunc func(i int, row []vector.Float) error

// Builder owns one scratch matrix. It must not be used by more than one
// call at a time.
type Builder struct {
	scratch vector.Matrix
}

// NewBuilder allocates a builder whose scratch matrix holds capacity rows of dim elements.
func NewBuilder(dim, capacity int) *Builder {
	return &Builder{scratch: vector.NewMatrix(max(1, capacity), dim)}
}

// Capacity returns the number of rows per batch.
func (b *Builder) Capacity() int {
	return b.scratch.Rows
}

// Dim returns the number of columns of the scratch matrix.
func (b *Builder) Dim() int {
	return b.scratch.Cols
}

// Score scores items [0, n) against query and writes item i's score into
// out[i]. Items are decoded straight into the scratch rows in consecutive
// chunks of Capacity(); the scorer runs once per chunk, on a row-limited view
// for the final partial chunk. The first decode or scoring error aborts the
// call. It returns the number of batches scored.
func (b *Builder) Score(n int, decode DecodeFunc, scorer vector.Scorer, query, out []vector.Float) (int, error) {
	if len(out) != n {
		return 0, fmt.Errorf("score buffer holds %d entries, want %d", len(out), n)
	}
	if len(query) != b.scratch.Cols {
		return 0, fmt.Errorf("%w: query has %d elements, want %d", vector.ErrDimensionMismatch, len(query), b.scratch.Cols)
	}
	capacity := b.scratch.Rows
	batches := 0
	for start := 0; start < n; start += capacity {
		rows := min(capacity, n-start)
		view := b.scratch.TopRows(rows)
		for j := 0; j < rows; j++ {
			if err := decode(start+j, view.Row(j)); err != nil {
				return batches, fmt.Errorf("item %d: %w", start+j, err)
			}
		}
		scores, err := scorer.Score(view, query)
		if err != nil {
			return batches, fmt.Errorf("batch at %d: %w", start, err)
		}
		if len(scores) != rows {
			return batches, fmt.Errorf("batch at %d: scorer returned %d scores for %d rows", start, len(scores), rows)
		}
		copy(out[start:start+rows], scores)
		batches++
	}
	return batches, nil
}
