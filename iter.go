package fixedstr

import (
	"iter"
	"unicode/utf8"
)

// Chars returns an iterator over the characters of s. Each call starts
// a fresh pass from the beginning of the buffer.
func (s *Str) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.CharIndices() {
			if !yield(r) {
				return
			}
		}
	}
}

// CharIndices is like Chars but also yields the byte offset each
// character starts at.
func (s *Str) CharIndices() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		b := s.buf
		for i := 0; i < len(b); {
			r, size := rune(b[i]), 1
			if r >= utf8.RuneSelf {
				r, size = utf8.DecodeRune(b[i:])
			}
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// Bytes returns an iterator over the N raw bytes in storage order.
func (s *Str) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range s.buf {
			if !yield(c) {
				return
			}
		}
	}
}
