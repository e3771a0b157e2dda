package source

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperjump/vecscan/internal/vector"
)

func TestReadLines(t *testing.T) {
	in := "AACAPw==\n\n  AAAAAA==  \nAAAAQA==\n"
	c, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)

	assert.True(t, c.Base64())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"AACAPw==", "AAAAAA==", "AAAAQA=="}, c.Texts)
	assert.Equal(t, []string{"0", "1", "2"}, c.IDs)
	assert.Nil(t, c.Items)
}

func TestReadLines_WithIDs(t *testing.T) {
	in := "doc-a\tAACAPw==\ndoc-b\tAAAAAA==\n"
	c, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"doc-a", "doc-b"}, c.IDs)
	assert.Equal(t, "doc-b", c.ID(1))
	assert.Equal(t, "", c.ID(2))
}

func TestReadLines_MissingVectorAfterID(t *testing.T) {
	_, err := ReadLines(strings.NewReader("ok\tAACAPw==\nbroken\t\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadLines_TabWithoutVector(t *testing.T) {
	for _, in := range []string{"broken\t\n", "broken\t  \n", "\tAACAPw==\n"} {
		_, err := ReadLines(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestReadLines_CRLF(t *testing.T) {
	c, err := ReadLines(strings.NewReader("doc-a\tAACAPw==\r\n\r\nAAAAAA==\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-a", "1"}, c.IDs)
	assert.Equal(t, []string{"AACAPw==", "AAAAAA=="}, c.Texts)
}

func TestReadLines_Empty(t *testing.T) {
	c, err := ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Base64())
}

func TestReadRaw(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	c, err := ReadRaw(bytes.NewReader(data), 4)
	require.NoError(t, err)

	assert.False(t, c.Base64())
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []byte{5, 6, 7, 8}, c.Items[1])
	assert.Equal(t, "2", c.ID(2))
	assert.Equal(t, 4, cap(c.Items[0]))
}

func TestReadRaw_PartialRecord(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader(make([]byte, 10)), 4)
	assert.ErrorIs(t, err, vector.ErrInvalidEncoding)
}

func TestReadRaw_InvalidRecordSize(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader(nil), 0)
	assert.Error(t, err)
}
