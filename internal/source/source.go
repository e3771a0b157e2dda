// Package source reads a collection of encoded vectors for the command line.
// Sources are read-only: the kernel never persists vectors.
package source

// Collection is an ordered set of encoded vectors. Exactly one of Items (raw
// encoding) or Texts (base64) is populated. IDs[i] names item i.
type Collection struct {
	IDs   []string
	Items [][]byte
	Texts []string
}

// Len returns the number of vectors in the collection.
func (c *Collection) Len() int {
	if c.Texts != nil {
		return len(c.Texts)
	}
	return len(c.Items)
}

// Base64 reports whether the collection holds base64 text.
func (c *Collection) Base64() bool {
	return c.Texts != nil
}

// ID returns the id of item i, or "" when the collection has none.
func (c *Collection) ID(i int) string {
	if i < 0 || i >= len(c.IDs) {
		return ""
	}
	return c.IDs[i]
}
