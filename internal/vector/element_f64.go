//go:build vecscan_fp64
// +build vecscan_fp64

package vector

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Float is the element type of every embedding (float64 build).
type Float = float64

// ElementWidth is the encoded size of one Float in bytes.
const ElementWidth = 8

// PutFloat writes v into b[:ElementWidth] in little-endian order.
func PutFloat(b []byte, v Float) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

// GetFloat reads a little-endian Float from b[:ElementWidth].
func GetFloat(b []byte) Float {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// gemv computes y = m * x.
func gemv(m Matrix, x, y []Float) {
	a := blas64.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Cols, Data: m.Data}
	blas64.Gemv(blas.NoTrans, 1, a,
		blas64.Vector{N: len(x), Inc: 1, Data: x},
		0,
		blas64.Vector{N: len(y), Inc: 1, Data: y},
	)
}

func nrm2(x []Float) Float {
	return blas64.Nrm2(blas64.Vector{N: len(x), Inc: 1, Data: x})
}
