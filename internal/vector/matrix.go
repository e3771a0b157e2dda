package vector

import "fmt"

// Matrix is a dense row-major matrix. Row i occupies Data[i*Cols:(i+1)*Cols].
type Matrix struct {
	Rows int
	Cols int
	Data []Float
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]Float, rows*cols)}
}

// MatrixFromRows copies rows into a new matrix. All rows must have the same length.
func MatrixFromRows(rows [][]Float) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d elements, want %d", ErrDimensionMismatch, i, len(r), cols)
		}
		copy(m.Row(i), r)
	}
	return m, nil
}

// Row returns row i. The slice aliases the matrix storage and is capped so
// appends cannot spill into the next row.
func (m Matrix) Row(i int) []Float {
	start := i * m.Cols
	return m.Data[start : start+m.Cols : start+m.Cols]
}

// TopRows returns a view of the first n rows sharing m's storage.
func (m Matrix) TopRows(n int) Matrix {
	if n > m.Rows {
		n = m.Rows
	}
	return Matrix{Rows: n, Cols: m.Cols, Data: m.Data[:n*m.Cols]}
}
