//go:build !vecscan_fp64
// +build !vecscan_fp64

package vector

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Float is the element type of every embedding. Build with -tags vecscan_fp64
// to switch the kernel to float64.
type Float = float32

// ElementWidth is the encoded size of one Float in bytes.
const ElementWidth = 4

// PutFloat writes v into b[:ElementWidth] in little-endian order.
func PutFloat(b []byte, v Float) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

// GetFloat reads a little-endian Float from b[:ElementWidth].
func GetFloat(b []byte) Float {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// gemv computes y = m * x.
func gemv(m Matrix, x, y []Float) {
	a := blas32.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Cols, Data: m.Data}
	blas32.Gemv(blas.NoTrans, 1, a,
		blas32.Vector{N: len(x), Inc: 1, Data: x},
		0,
		blas32.Vector{N: len(y), Inc: 1, Data: y},
	)
}

func nrm2(x []Float) Float {
	return blas32.Nrm2(blas32.Vector{N: len(x), Inc: 1, Data: x})
}
