package vector

import "fmt"

// Epsilon is added to the norm product in CosineSimilarity so that an
// all-zero row or query scores 0 instead of NaN.
const Epsilon = 1e-8

// CosineSimilarity returns dot(row, query) / (|query|*|row| + Epsilon) for every
// row of m. The dot products are a single matrix-vector multiply.
func CosineSimilarity(m Matrix, query []Float) ([]Float, error) {
	if m.Cols != len(query) {
		return nil, fmt.Errorf("%w: matrix has %d columns, query has %d elements", ErrDimensionMismatch, m.Cols, len(query))
	}
	scores := make([]Float, m.Rows)
	if m.Rows == 0 {
		return scores, nil
	}
	gemv(m, query, scores)
	qn := nrm2(query)
	for i := range scores {
		scores[i] /= qn*nrm2(m.Row(i)) + Epsilon
	}
	return scores, nil
}

// L2Distance returns the squared Euclidean distance between query and every
// row of m. No square root is taken.
func L2Distance(m Matrix, query []Float) ([]Float, error) {
	if m.Cols != len(query) {
		return nil, fmt.Errorf("%w: matrix has %d columns, query has %d elements", ErrDimensionMismatch, m.Cols, len(query))
	}
	scores := make([]Float, m.Rows)
	for i := range scores {
		var sum Float
		for j, v := range m.Row(i) {
			d := v - query[j]
			sum += d * d
		}
		scores[i] = sum
	}
	return scores, nil
}

// Norm returns the L2 norm of x.
func Norm(x []Float) Float {
	return nrm2(x)
}
