package fixedstr

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/rawbytedev/fixedstr/internal/common"
)

// ByteView is a read-only window over the bytes of a Str.
type ByteView struct {
	b []byte
}

func (v ByteView) Len() int { return len(v.b) }

// At returns the byte at offset i.
func (v ByteView) At(i int) byte { return v.b[i] }

func (v ByteView) Equal(b []byte) bool { return bytes.Equal(v.b, b) }

// CopyTo copies the bytes into dst and returns how many were copied.
func (v ByteView) CopyTo(dst []byte) int { return copy(dst, v.b) }

// ByteSlice returns a copy of the bytes.
func (v ByteView) ByteSlice() []byte { return bytes.Clone(v.b) }

// String returns a copy of the bytes as a string.
func (v ByteView) String() string { return string(v.b) }

// MutView is a mutable window over a character-aligned range of a Str.
// Every method keeps the range valid UTF-8. Strings returned by AsString
// or SplitAt alias the range and observe later writes through it.
type MutView struct {
	b []byte
}

func (v MutView) Len() int { return len(v.b) }

func (v MutView) IsCharBoundary(i int) bool { return common.IsCharBoundary(v.b, i) }

func (v MutView) AsString() string { return unsafeString(v.b) }

func (v MutView) String() string { return string(v.b) }

// SplitAt divides v at mid. It panics with a *BoundaryError if mid is not
// a char boundary of v.
func (v MutView) SplitAt(mid int) (MutView, MutView) {
	if !v.IsCharBoundary(mid) {
		panic(boundaryError(v.b, 0, mid))
	}
	return MutView{b: v.b[:mid:mid]}, MutView{b: v.b[mid:]}
}

// MakeASCIIUpper maps a-z to A-Z in place. Other bytes are left alone.
func (v MutView) MakeASCIIUpper() {
	for i, c := range v.b {
		if 'a' <= c && c <= 'z' {
			v.b[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILower maps A-Z to a-z in place. Other bytes are left alone.
func (v MutView) MakeASCIILower() {
	for i, c := range v.b {
		if 'A' <= c && c <= 'Z' {
			v.b[i] = c + ('a' - 'A')
		}
	}
}

// Zero overwrites the range with NUL characters.
func (v MutView) Zero() { clear(v.b) }

// Overwrite replaces the range with s, which must be valid UTF-8 of
// exactly Len bytes. On error the range is left untouched.
func (v MutView) Overwrite(s string) error {
	if len(s) != len(v.b) {
		return fmt.Errorf("%w: %d bytes into %d", ErrLengthMismatch, len(s), len(v.b))
	}
	if !utf8.ValidString(s) {
		return newUtf8Error([]byte(s))
	}
	copy(v.b, s)
	return nil
}
