package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hyperjump/vecscan/internal/vector"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// EncodeBase64 encodes v as padded standard base64.
func (c *Codec) EncodeBase64(v []vector.Float) (string, error) {
	b, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeBase64 decodes base64 text into a new vector.
func (c *Codec) DecodeBase64(s string) ([]vector.Float, error) {
	b, err := c.decodeText(s)
	if err != nil {
		return nil, err
	}
	return c.Decode(b)
}

// DecodeBase64Into decodes base64 text into dst.
func (c *Codec) DecodeBase64Into(dst []vector.Float, s string) error {
	b, err := c.decodeText(s)
	if err != nil {
		return err
	}
	return c.DecodeInto(dst, b)
}

func (c *Codec) decodeText(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: base64 length %d is not a multiple of 4", ErrInvalidEncoding, len(s))
	}
	if c.lenient {
		return decodeLenient(s)
	}
	body := strings.TrimRight(s, "=")
	if i := strings.IndexFunc(body, outsideAlphabet); i >= 0 {
		return nil, fmt.Errorf("%w: byte %q at offset %d is outside the base64 alphabet", ErrInvalidEncoding, body[i], i)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

func outsideAlphabet(r rune) bool {
	return !strings.ContainsRune(alphabet, r)
}

// decodeLenient decodes the longest prefix of s made only of alphabet
// characters. Padding ends the prefix like any other foreign character.
func decodeLenient(s string) ([]byte, error) {
	end := strings.IndexFunc(s, outsideAlphabet)
	if end < 0 {
		end = len(s)
	}
	p := s[:end]
	// a lone trailing sextet carries no complete byte
	if len(p)%4 == 1 {
		p = p[:len(p)-1]
	}
	b, err := base64.RawStdEncoding.DecodeString(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}
