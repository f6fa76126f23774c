package common

import "unicode/utf8"

// IsContinuation reports whether c is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(c byte) bool {
	// bit magic equivalent to: c >= 0x80 && c < 0xC0
	return int8(c) < -0x40
}

// IsCharBoundary reports whether i is a rune boundary in b.
// Offsets outside [0, len(b)] are never boundaries.
func IsCharBoundary(b []byte, i int) bool {
	// 0 and len(b) are always boundaries; skip reading the data for them.
	if i == 0 || i == len(b) {
		return true
	}
	if i < 0 || i > len(b) {
		return false
	}
	return !IsContinuation(b[i])
}

// FloorCharBoundary returns the largest boundary <= i, clamped to [0, len(b)].
func FloorCharBoundary(b []byte, i int) int {
	if i >= len(b) {
		return len(b)
	}
	if i <= 0 {
		return 0
	}
	// a rune is at most utf8.UTFMax bytes wide
	low := max(i-(utf8.UTFMax-1), 0)
	for i > low && IsContinuation(b[i]) {
		i--
	}
	return i
}

// CeilCharBoundary returns the smallest boundary >= i, clamped to [0, len(b)].
func CeilCharBoundary(b []byte, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(b) {
		return len(b)
	}
	high := min(i+(utf8.UTFMax-1), len(b))
	for i < high && IsContinuation(b[i]) {
		i++
	}
	return i
}

// Validate checks b for UTF-8 validity. On failure it returns the length
// of the longest valid prefix and the width of the invalid sequence that
// follows it; errLen is 0 when b ends in the middle of a sequence.
func Validate(b []byte) (validUpTo, errLen int, ok bool) {
	if utf8.Valid(b) {
		return len(b), 0, true
	}
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			i += size
			continue
		}
		if !utf8.FullRune(b[i:]) {
			return i, 0, false
		}
		return i, invalidLen(b[i:]), false
	}
	return len(b), 0, true
}

// invalidLen counts the bytes of a maximal invalid prefix of b:
// the lead byte plus every continuation byte it would legally accept.
func invalidLen(b []byte) int {
	n := 1
	need := leadWidth(b[0])
	for n < need && n < len(b) && IsContinuation(b[n]) {
		// stop as soon as the prefix can no longer start a valid rune
		if _, size := utf8.DecodeRune(b[:n+1]); size == 1 && utf8.FullRune(b[:n+1]) {
			break
		}
		n++
	}
	return n
}

func leadWidth(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// It returns 0, 0 when b holds no complete varint.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == 10 {
			return 0, 0
		}
		// the tenth byte carries only bit 63
		if i == 9 && c > 1 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
