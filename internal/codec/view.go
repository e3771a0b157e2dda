package codec

import "github.com/hyperjump/vecscan/internal/vector"

// View is a read-only vector backed by an encoded byte buffer. Elements are
// deserialized on access, so no copy is made up front. A View is only valid
// while its source buffer is alive and unmodified; do not keep one past the
// call that produced it.
type View struct {
	b []byte
}

// View checks that b holds exactly D elements and returns a view over it.
func (c *Codec) View(b []byte) (View, error) {
	if err := c.checkLen(len(b)); err != nil {
		return View{}, err
	}
	return View{b: b}, nil
}

// Len returns the number of elements.
func (v View) Len() int {
	return len(v.b) / vector.ElementWidth
}

// At returns element i. It panics if i is out of range.
func (v View) At(i int) vector.Float {
	off := i * vector.ElementWidth
	return vector.GetFloat(v.b[off : off+vector.ElementWidth])
}

// CopyTo decodes up to len(dst) elements into dst and returns how many were written.
func (v View) CopyTo(dst []vector.Float) int {
	n := min(len(dst), v.Len())
	for i := 0; i < n; i++ {
		dst[i] = v.At(i)
	}
	return n
}

// Vector decodes the whole view into a new, owned slice.
func (v View) Vector() []vector.Float {
	out := make([]vector.Float, v.Len())
	v.CopyTo(out)
	return out
}
