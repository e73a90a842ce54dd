// Package sevenbit rewrites 8-bit Latin-1 characters in C sources as escape
// sequences so that the files are plain 7-bit ASCII outside of comments.
package sevenbit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Format is the printf verb pattern used to escape one character.
type Format string

const (
	// Octal escapes as \ooo, always three digits.
	Octal Format = `\%03o`

	// Hex escapes as \xhh.
	Hex Format = `\x%02x`

	// DefaultFormat is the format the normalizer writes.
	DefaultFormat = Octal
)

// firstEscaped is the lowest character value that gets escaped. DEL is
// included along with every Latin-1 character above it.
const firstEscaped = 0x7f

// Escape replaces every character of s at or above 0x7F with its escape
// sequence. Other characters are copied unchanged.
func Escape(s string, f Format) string {
	if f == "" {
		f = DefaultFormat
	}

	var b strings.Builder
	for _, r := range s {
		if r >= firstEscaped {
			fmt.Fprintf(&b, string(f), r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeLatin1 maps each byte of src to the character of the same value.
func decodeLatin1(src []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(src)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode Latin-1")
	}
	return string(out), nil
}

// encodeLatin1 is the inverse of decodeLatin1.
func encodeLatin1(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode Latin-1")
	}
	return []byte(out), nil
}
