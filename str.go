package fixedstr

import (
	"bytes"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/rawbytedev/fixedstr/internal/common"
)

// Str is a UTF-8 string stored in a byte buffer whose length N is fixed
// when the Str is constructed. There is no used/capacity split: Len is
// always N, and the buffer is never grown or resliced.
//
// Safe methods assume the buffer holds valid UTF-8. The Unchecked and
// Unsafe methods skip that assumption's checks and leave it to the caller.
//
// Copying a Str value shares its buffer; use Clone for an independent copy.
type Str struct {
	buf []byte
}

// Zeroed returns a Str of n zero bytes, which is n NUL characters.
func Zeroed(n int) *Str {
	return &Str{buf: make([]byte, n)}
}

// FromBytes copies b into a new Str after checking it is valid UTF-8.
func FromBytes(b []byte) (*Str, error) {
	if err := newUtf8Error(b); err != nil {
		return nil, err
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Str{buf: buf}, nil
}

// FromString copies s into a new Str after checking it is valid UTF-8.
func FromString(s string) (*Str, error) {
	if !utf8.ValidString(s) {
		return nil, newUtf8Error([]byte(s))
	}
	return &Str{buf: []byte(s)}, nil
}

// FromStringPadded stores s in a Str of width n, filling the rest with NUL.
func FromStringPadded(s string, n int) (*Str, error) {
	if len(s) > n {
		return nil, fmt.Errorf("%w: %d bytes into %d", ErrTooLong, len(s), n)
	}
	if !utf8.ValidString(s) {
		return nil, newUtf8Error([]byte(s))
	}
	buf := make([]byte, n)
	copy(buf, s)
	return &Str{buf: buf}, nil
}

// MustFromString is like FromString but panics on invalid input.
func MustFromString(s string) *Str {
	str, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return str
}

// FromBytesUnchecked adopts b as the buffer of a new Str without copying
// or validating it. b must be valid UTF-8 and must not be used by the
// caller afterwards; otherwise every safe method has undefined results.
func FromBytesUnchecked(b []byte) *Str {
	return &Str{buf: b[:len(b):len(b)]}
}

func (s *Str) Len() int { return len(s.buf) }

func (s *Str) IsEmpty() bool { return len(s.buf) == 0 }

// IsCharBoundary reports whether byte offset i is the start of a character
// or the end of the string. 0 and Len are always boundaries. Offsets
// outside [0, Len] report false.
func (s *Str) IsCharBoundary(i int) bool {
	return common.IsCharBoundary(s.buf, i)
}

// FloorCharBoundary returns the largest boundary not above i.
func (s *Str) FloorCharBoundary(i int) int {
	return common.FloorCharBoundary(s.buf, i)
}

// CeilCharBoundary returns the smallest boundary not below i.
func (s *Str) CeilCharBoundary(i int) int {
	return common.CeilCharBoundary(s.buf, i)
}

// Valid reports whether the buffer holds valid UTF-8. Safe code never sees
// false; it exists for checking repairs made through UnsafeBytesMut.
func (s *Str) Valid() bool { return utf8.Valid(s.buf) }

// AsBytes returns a read-only view of the N underlying bytes.
func (s *Str) AsBytes() ByteView { return ByteView{b: s.buf} }

// UnsafeBytesMut returns the underlying buffer itself. Writes may break the
// UTF-8 invariant; the caller must restore valid UTF-8 before calling any
// other method or reading any view of s. No other view may be read while
// the returned slice is being written.
func (s *Str) UnsafeBytesMut() []byte { return s.buf }

// Ptr returns the address of the first byte, or nil if s is empty.
// The bytes must not be written through it.
func (s *Str) Ptr() *byte {
	if len(s.buf) == 0 {
		return nil
	}
	return unsafe.SliceData(s.buf)
}

// MutPtr returns the address of the first byte, or nil if s is empty.
// It carries the same obligations as UnsafeBytesMut.
func (s *Str) MutPtr() *byte { return s.Ptr() }

// SliceUnchecked returns bytes [begin, end) as a string sharing s's buffer.
// Both offsets must be char boundaries with begin <= end <= Len. Ranges out
// of bounds still panic like any Go slice expression; a range cutting a
// character yields a string that is not valid UTF-8.
func (s *Str) SliceUnchecked(begin, end int) string {
	return unsafeString(s.buf[begin:end])
}

// SliceMutUnchecked is the mutable form of SliceUnchecked.
func (s *Str) SliceMutUnchecked(begin, end int) MutView {
	return MutView{b: s.buf[begin:end:end]}
}

// SplitAt divides s at byte offset mid into [0, mid) and [mid, Len).
// It panics with a *BoundaryError if mid is out of range or inside a
// character.
func (s *Str) SplitAt(mid int) (string, string) {
	// IsCharBoundary also checks that mid is in [0, Len]
	if !s.IsCharBoundary(mid) {
		panic(boundaryError(s.buf, 0, mid))
	}
	return unsafeString(s.buf[:mid]), unsafeString(s.buf[mid:])
}

// SplitAtMut is the mutable form of SplitAt.
func (s *Str) SplitAtMut(mid int) (MutView, MutView) {
	if !s.IsCharBoundary(mid) {
		panic(boundaryError(s.buf, 0, mid))
	}
	return MutView{b: s.buf[:mid:mid]}, MutView{b: s.buf[mid:]}
}

// Slice returns bytes [begin, end) as a string sharing s's buffer.
// It panics with a *BoundaryError unless begin <= end and both are
// boundaries.
func (s *Str) Slice(begin, end int) string {
	str, ok := s.Get(begin, end)
	if !ok {
		panic(boundaryError(s.buf, begin, end))
	}
	return str
}

// Get is like Slice but reports false instead of panicking.
func (s *Str) Get(begin, end int) (string, bool) {
	if begin > end || !s.IsCharBoundary(begin) || !s.IsCharBoundary(end) {
		return "", false
	}
	return unsafeString(s.buf[begin:end]), true
}

// AsString returns the whole buffer as a string without copying. The
// result observes later writes through mutable views.
func (s *Str) AsString() string { return unsafeString(s.buf) }

// AsMutView returns a mutable view of the whole buffer.
func (s *Str) AsMutView() MutView { return MutView{b: s.buf} }

// String returns a copy of the contents.
func (s *Str) String() string { return string(s.buf) }

func (s *Str) Equal(o *Str) bool { return bytes.Equal(s.buf, o.buf) }

func (s *Str) Clone() *Str {
	buf := make([]byte, len(s.buf))
	copy(buf, s.buf)
	return &Str{buf: buf}
}

func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
