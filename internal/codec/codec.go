// Package codec converts embeddings between []vector.Float and their
// transport encodings: raw little-endian bytes with no header, and the
// standard base64 text of those bytes.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hyperjump/vecscan/internal/vector"
)

// ErrInvalidEncoding is vector.ErrInvalidEncoding, re-exported for callers
// that only deal with the codec.
var ErrInvalidEncoding = vector.ErrInvalidEncoding

// Codec encodes and decodes vectors of a fixed dimensionality.
type Codec struct {
	dim     int
	lenient bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithLenientBase64 makes base64 decoding stop at the first character outside
// the standard alphabet instead of rejecting the input. The decoded prefix
// must still hold exactly D elements.
func WithLenientBase64() Option {
	return func(c *Codec) { c.lenient = true }
}

// New returns a codec for vectors of dim elements.
func New(dim int, opts ...Option) (*Codec, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	c := &Codec{dim: dim}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dim returns the number of elements per vector.
func (c *Codec) Dim() int {
	return c.dim
}

// EncodedLen returns the raw byte length of one encoded vector.
func (c *Codec) EncodedLen() int {
	return c.dim * vector.ElementWidth
}

// Lenient reports whether base64 decoding is lenient.
func (c *Codec) Lenient() bool {
	return c.lenient
}

// Decode decodes b into a new vector.
func (c *Codec) Decode(b []byte) ([]vector.Float, error) {
	v := make([]vector.Float, c.dim)
	if err := c.DecodeInto(v, b); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeInto decodes b into dst, which must hold exactly D elements.
func (c *Codec) DecodeInto(dst []vector.Float, b []byte) error {
	if err := c.checkLen(len(b)); err != nil {
		return err
	}
	if len(dst) != c.dim {
		return fmt.Errorf("%w: destination holds %d elements, want %d", vector.ErrDimensionMismatch, len(dst), c.dim)
	}
	for i := range dst {
		dst[i] = vector.GetFloat(b[i*vector.ElementWidth:])
	}
	return nil
}

// Encode emits the D elements of v as raw bytes.
func (c *Codec) Encode(v []vector.Float) ([]byte, error) {
	if len(v) != c.dim {
		return nil, fmt.Errorf("%w: vector has %d elements, want %d", vector.ErrDimensionMismatch, len(v), c.dim)
	}
	b := make([]byte, len(v)*vector.ElementWidth)
	for i, x := range v {
		vector.PutFloat(b[i*vector.ElementWidth:], x)
	}
	return b, nil
}

// EncodeFloat64As32 narrows each element of v to float32 and emits 4-byte
// elements. The conversion is lossy and there is no matching decoder in a
// float64 build.
func (c *Codec) EncodeFloat64As32(v []float64) ([]byte, error) {
	if len(v) != c.dim {
		return nil, fmt.Errorf("%w: vector has %d elements, want %d", vector.ErrDimensionMismatch, len(v), c.dim)
	}
	b := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(float32(x)))
	}
	return b, nil
}

func (c *Codec) checkLen(n int) error {
	if n%vector.ElementWidth != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of element width %d", ErrInvalidEncoding, n, vector.ElementWidth)
	}
	if got := n / vector.ElementWidth; got != c.dim {
		return fmt.Errorf("%w: got %d elements, want %d", ErrInvalidEncoding, got, c.dim)
	}
	return nil
}
