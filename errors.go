package fixedstr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rawbytedev/fixedstr/internal/common"
)

var (
	ErrInvalidUTF8     = errors.New("invalid utf-8")
	ErrTooLong         = errors.New("string longer than fixed width")
	ErrNotCharBoundary = errors.New("index is not a char boundary")
	ErrOutOfBounds     = errors.New("index out of bounds")
	ErrBadRange        = errors.New("begin greater than end")
	ErrLengthMismatch  = errors.New("length does not match view")
)

// maxDisplayLen bounds the preview of the string in a BoundaryError.
const maxDisplayLen = 256

// Utf8Error describes why a byte sequence could not become a Str.
type Utf8Error struct {
	// ValidUpTo is the length of the longest valid prefix.
	ValidUpTo int
	// ErrorLen is the width of the invalid sequence after the valid prefix,
	// or 0 if the input ended in the middle of a sequence.
	ErrorLen int
}

func newUtf8Error(b []byte) error {
	v, n, ok := common.Validate(b)
	if ok {
		return nil
	}
	return &Utf8Error{ValidUpTo: v, ErrorLen: n}
}

func (e *Utf8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

func (e *Utf8Error) Unwrap() error { return ErrInvalidUTF8 }

// BoundaryError is the panic value of checked slicing operations that were
// asked to cut outside the string or inside a multi-byte character.
type BoundaryError struct {
	Index int // offending byte offset
	Begin int // attempted range start
	End   int // attempted range end
	Len   int // length of the string being sliced

	// Char and its byte range are set when Index falls inside a character.
	Char      rune
	CharStart int
	CharEnd   int

	kind    error
	preview string
	cut     bool
}

func (e *BoundaryError) Error() string {
	ellipsis := ""
	if e.cut {
		ellipsis = "[...]"
	}
	switch e.kind {
	case ErrOutOfBounds:
		return fmt.Sprintf("byte index %d is out of bounds of `%s`%s", e.Index, e.preview, ellipsis)
	case ErrBadRange:
		return fmt.Sprintf("begin <= end (%d <= %d) when slicing `%s`%s", e.Begin, e.End, e.preview, ellipsis)
	default:
		return fmt.Sprintf("byte index %d is not a char boundary; it is inside %q (bytes %d..%d) of `%s`%s",
			e.Index, e.Char, e.CharStart, e.CharEnd, e.preview, ellipsis)
	}
}

// Unwrap lets errors.Is match ErrOutOfBounds, ErrBadRange or ErrNotCharBoundary.
func (e *BoundaryError) Unwrap() error { return e.kind }

// boundaryError diagnoses why [begin, end) cannot be cut from b.
// b must be valid UTF-8 and the range must actually be invalid.
func boundaryError(b []byte, begin, end int) *BoundaryError {
	e := &BoundaryError{Index: end, Begin: begin, End: end, Len: len(b)}
	trunc := common.FloorCharBoundary(b, maxDisplayLen)
	e.preview, e.cut = string(b[:trunc]), trunc < len(b)

	// 1. out of bounds
	if begin < 0 || begin > len(b) {
		e.Index, e.kind = begin, ErrOutOfBounds
		return e
	}
	if end < 0 || end > len(b) {
		e.kind = ErrOutOfBounds
		return e
	}
	// 2. begin <= end
	if begin > end {
		e.kind = ErrBadRange
		return e
	}
	// 3. character boundary
	e.kind = ErrNotCharBoundary
	if !common.IsCharBoundary(b, begin) {
		e.Index = begin
	}
	start := common.FloorCharBoundary(b, e.Index)
	r, size := utf8.DecodeRune(b[start:])
	e.Char, e.CharStart, e.CharEnd = r, start, start+size
	return e
}
