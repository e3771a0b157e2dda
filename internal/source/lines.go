package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hyperjump/vecscan/internal/vector"
)

const maxLineBytes = 16 << 20

// ReadLines reads one base64 vector per line. A line may carry an id as
// "id<TAB>base64"; otherwise the item's position is its id. Blank lines are
// skipped. Decoding is left to the engine's codec.
func ReadLines(r io.Reader) (*Collection, error) {
	c := &Collection{Texts: []string{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		id := strconv.Itoa(len(c.Texts))
		text := strings.TrimSpace(raw)
		if before, after, ok := strings.Cut(raw, "\t"); ok {
			id = strings.TrimSpace(before)
			text = strings.TrimSpace(after)
			if id == "" || text == "" {
				return nil, fmt.Errorf("line %d: expected id<TAB>vector", line)
			}
		}
		c.IDs = append(c.IDs, id)
		c.Texts = append(c.Texts, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return c, nil
}

// ReadRaw reads a file of concatenated raw vectors, recordSize bytes each.
// A trailing partial record is an encoding error.
func ReadRaw(r io.Reader, recordSize int) (*Collection, error) {
	if recordSize <= 0 {
		return nil, fmt.Errorf("record size must be positive, got %d", recordSize)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte record size",
			vector.ErrInvalidEncoding, len(data), recordSize)
	}
	n := len(data) / recordSize
	c := &Collection{IDs: make([]string, n), Items: make([][]byte, n)}
	for i := range n {
		c.IDs[i] = strconv.Itoa(i)
		c.Items[i] = data[i*recordSize : (i+1)*recordSize : (i+1)*recordSize]
	}
	return c, nil
}
