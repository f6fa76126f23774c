package fixedstr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireBoundaryPanic runs fn and returns the *BoundaryError it panicked with.
func requireBoundaryPanic(t *testing.T, fn func()) (be *BoundaryError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a boundary panic")
		err, ok := r.(*BoundaryError)
		require.True(t, ok, "panic value is %T, not *BoundaryError", r)
		be = err
	}()
	fn()
	return nil
}

func TestZeroed(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1024} {
		s := Zeroed(n)
		require.Equal(t, n, s.Len())
		require.True(t, s.Valid())
		require.True(t, s.AsBytes().Equal(make([]byte, n)))
		for r := range s.Chars() {
			require.Equal(t, rune(0), r)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	condition := func(in string) bool {
		s, err := FromString(in)
		require.NoError(t, err)
		b, err := FromBytes([]byte(in))
		require.NoError(t, err)
		return s.AsBytes().Equal([]byte(in)) && b.AsString() == in && s.Len() == len(in)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestFromBytesCopies(t *testing.T) {
	in := []byte("hello")
	s, err := FromBytes(in)
	require.NoError(t, err)
	in[0] = 'j'
	assert.Equal(t, "hello", s.String())
}

func TestFromBytesInvalid(t *testing.T) {
	s, err := FromBytes([]byte("ab\xffcd"))
	require.Nil(t, s)
	require.ErrorIs(t, err, ErrInvalidUTF8)
	var ue *Utf8Error
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 2, ue.ValidUpTo)
	assert.Equal(t, 1, ue.ErrorLen)
	assert.EqualError(t, err, "invalid utf-8 sequence of 1 bytes from index 2")

	_, err = FromString("ok\xe2\x82")
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 2, ue.ValidUpTo)
	assert.Zero(t, ue.ErrorLen)
	assert.EqualError(t, err, "incomplete utf-8 byte sequence from index 2")
}

func TestFromStringPadded(t *testing.T) {
	s, err := FromStringPadded("é", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0xA9, 0, 0}, s.AsBytes().ByteSlice())

	_, err = FromStringPadded("hello", 4)
	require.ErrorIs(t, err, ErrTooLong)

	_, err = FromStringPadded("\xff", 4)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestMustFromString(t *testing.T) {
	assert.Equal(t, "abc", MustFromString("abc").String())
	assert.Panics(t, func() { MustFromString("\xc0") })
}

func TestFromBytesUnchecked(t *testing.T) {
	b := make([]byte, 3, 16)
	copy(b, "abc")
	s := FromBytesUnchecked(b)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 3, cap(s.UnsafeBytesMut()))
	assert.Equal(t, "abc", s.AsString())
}

func TestLenAndEmpty(t *testing.T) {
	var zero Str
	for _, s := range []*Str{&zero, Zeroed(0), MustFromString("")} {
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.IsEmpty())
		assert.True(t, s.IsCharBoundary(0))
		assert.False(t, s.IsCharBoundary(1))
		n := 0
		for range s.Chars() {
			n++
		}
		for range s.CharIndices() {
			n++
		}
		for range s.Bytes() {
			n++
		}
		assert.Zero(t, n)
		assert.Nil(t, s.Ptr())
		left, right := s.SplitAt(0)
		assert.Empty(t, left)
		assert.Empty(t, right)
	}
	assert.False(t, MustFromString("x").IsEmpty())
}

func TestIsCharBoundaryEndpoints(t *testing.T) {
	condition := func(in string) bool {
		s := MustFromString(in)
		return s.IsCharBoundary(0) && s.IsCharBoundary(s.Len()) &&
			!s.IsCharBoundary(-1) && !s.IsCharBoundary(s.Len()+1)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestIsCharBoundaryContinuation(t *testing.T) {
	for c := 0; c < 256; c++ {
		// the middle byte may not be valid UTF-8; only the boundary test runs
		s := FromBytesUnchecked([]byte{'a', byte(c), 'a'})
		continuation := c&0xC0 == 0x80
		assert.Equal(t, !continuation, s.IsCharBoundary(1), "byte %#x", c)
	}
}

func TestIsCharBoundaryAgreesWithStdlib(t *testing.T) {
	condition := func(in string) bool {
		s := MustFromString(in)
		for i := 0; i <= s.Len(); i++ {
			want := i == len(in) || utf8.RuneStart(in[i])
			if s.IsCharBoundary(i) != want {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestFloorCeilCharBoundary(t *testing.T) {
	s := MustFromString("a😀b")
	for i := 1; i <= 4; i++ {
		assert.Equal(t, 1, s.FloorCharBoundary(i), "floor %d", i)
	}
	for i := 2; i <= 5; i++ {
		assert.Equal(t, 5, s.CeilCharBoundary(i), "ceil %d", i)
	}
	assert.Equal(t, s.Len(), s.FloorCharBoundary(100))
	assert.Equal(t, 0, s.CeilCharBoundary(-5))
}

func TestSplitAtHello(t *testing.T) {
	s := MustFromString("hello")
	left, right := s.SplitAt(5)
	assert.Equal(t, "hello", left)
	assert.Equal(t, "", right)

	left, right = s.SplitAt(2)
	assert.Equal(t, "he", left)
	assert.Equal(t, "llo", right)

	left, right = s.SplitAt(0)
	assert.Equal(t, "", left)
	assert.Equal(t, "hello", right)
}

func TestSplitAtConcat(t *testing.T) {
	condition := func(in string) bool {
		s := MustFromString(in)
		for mid := 0; mid <= s.Len(); mid++ {
			if !s.IsCharBoundary(mid) {
				continue
			}
			left, right := s.SplitAt(mid)
			if left+right != in || !utf8.ValidString(left) || !utf8.ValidString(right) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestSplitAtNotBoundary(t *testing.T) {
	s, err := FromStringPadded("é", 4)
	require.NoError(t, err)

	be := requireBoundaryPanic(t, func() { s.SplitAt(1) })
	assert.ErrorIs(t, be, ErrNotCharBoundary)
	assert.Equal(t, 1, be.Index)
	assert.Equal(t, 0, be.Begin)
	assert.Equal(t, 1, be.End)
	assert.Equal(t, 4, be.Len)
	assert.Equal(t, 'é', be.Char)
	assert.Equal(t, 0, be.CharStart)
	assert.Equal(t, 2, be.CharEnd)
	assert.Equal(t, "byte index 1 is not a char boundary; it is inside 'é' (bytes 0..2) of `é\x00\x00`", be.Error())

	be = requireBoundaryPanic(t, func() { s.SplitAtMut(1) })
	assert.ErrorIs(t, be, ErrNotCharBoundary)
}

func TestSplitAtOutOfRange(t *testing.T) {
	s := MustFromString("hello")
	be := requireBoundaryPanic(t, func() { s.SplitAt(6) })
	assert.ErrorIs(t, be, ErrOutOfBounds)
	assert.Equal(t, 6, be.Index)
	assert.Equal(t, "byte index 6 is out of bounds of `hello`", be.Error())

	be = requireBoundaryPanic(t, func() { s.SplitAt(-1) })
	assert.ErrorIs(t, be, ErrOutOfBounds)
	assert.Equal(t, -1, be.Index)
}

func TestBoundaryErrorPreviewTruncated(t *testing.T) {
	s := MustFromString(strings.Repeat("é", 300))
	be := requireBoundaryPanic(t, func() { s.SplitAt(3) })
	msg := be.Error()
	assert.True(t, strings.HasSuffix(msg, "`[...]"), msg)
	assert.Contains(t, msg, "(bytes 2..4) of `"+strings.Repeat("é", 128)+"`")
}

func TestSplitAtMut(t *testing.T) {
	s := MustFromString("héllo wörld")
	left, right := s.SplitAtMut(6)
	left.MakeASCIIUpper()
	assert.Equal(t, "HéLLO wörld", s.String())
	right.MakeASCIIUpper()
	assert.Equal(t, "HéLLO WöRLD", s.String())
	assert.True(t, s.Valid())
}

func TestSliceAndGet(t *testing.T) {
	s := MustFromString("aé€😀")
	assert.Equal(t, "é€", s.Slice(1, 6))
	assert.Equal(t, "", s.Slice(3, 3))
	assert.Equal(t, "😀", s.Slice(6, 10))

	got, ok := s.Get(0, 3)
	assert.True(t, ok)
	assert.Equal(t, "aé", got)

	for _, r := range [][2]int{{0, 2}, {2, 3}, {6, 11}, {-1, 1}, {3, 1}} {
		_, ok := s.Get(r[0], r[1])
		assert.False(t, ok, "range %v", r)
	}

	be := requireBoundaryPanic(t, func() { s.Slice(3, 1) })
	assert.ErrorIs(t, be, ErrBadRange)
	assert.Contains(t, be.Error(), "begin <= end (3 <= 1)")

	be = requireBoundaryPanic(t, func() { s.Slice(2, 6) })
	assert.ErrorIs(t, be, ErrNotCharBoundary)
	assert.Equal(t, 2, be.Index)
	assert.Equal(t, 'é', be.Char)

	be = requireBoundaryPanic(t, func() { s.Slice(1, 8) })
	assert.Equal(t, 8, be.Index)
	assert.Equal(t, '😀', be.Char)
	assert.Equal(t, 6, be.CharStart)
	assert.Equal(t, 10, be.CharEnd)

	be = requireBoundaryPanic(t, func() { s.Slice(0, 42) })
	assert.ErrorIs(t, be, ErrOutOfBounds)
}

func TestSliceUnchecked(t *testing.T) {
	s := MustFromString("aé€")
	assert.Equal(t, "é", s.SliceUnchecked(1, 3))
	// a cut inside a character is not detected
	assert.False(t, utf8.ValidString(s.SliceUnchecked(0, 2)))

	v := s.SliceMutUnchecked(3, 6)
	require.NoError(t, v.Overwrite("xyz"))
	assert.Equal(t, "aéxyz", s.String())
}

func TestViewsAliasBuffer(t *testing.T) {
	s := MustFromString("abc")
	view := s.AsString()
	copied := s.String()
	s.AsMutView().MakeASCIIUpper()
	assert.Equal(t, "ABC", view)
	assert.Equal(t, "abc", copied)
}

func TestUnsafeBytesMut(t *testing.T) {
	s := MustFromString("héllo")
	raw := s.UnsafeBytesMut()
	require.Len(t, raw, s.Len())
	raw[1] = 0xFF
	assert.False(t, s.Valid())
	raw[1], raw[2] = 'e', 'e'
	assert.True(t, s.Valid())
	assert.Equal(t, "heello", s.String())
}

func TestPtr(t *testing.T) {
	s := MustFromString("go")
	require.NotNil(t, s.Ptr())
	assert.Equal(t, byte('g'), *s.Ptr())
	*s.MutPtr() = 'n'
	assert.Equal(t, "no", s.String())
	assert.Same(t, s.Ptr(), s.MutPtr())
}

func TestCloneEqual(t *testing.T) {
	s := MustFromString("abc")
	c := s.Clone()
	require.True(t, s.Equal(c))
	c.AsMutView().MakeASCIIUpper()
	assert.False(t, s.Equal(c))
	assert.Equal(t, "abc", s.String())
}

func FuzzFromBytes(f *testing.F) {
	for _, seed := range []string{"", "hello", "aé€😀", "\xff", "é\x00\x00", "\xe2\x82"} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, in []byte) {
		s, err := FromBytes(in)
		if !utf8.Valid(in) {
			var ue *Utf8Error
			require.ErrorAs(t, err, &ue)
			require.True(t, utf8.Valid(in[:ue.ValidUpTo]))
			return
		}
		require.NoError(t, err)
		require.True(t, s.AsBytes().Equal(in))
		for mid := 0; mid <= s.Len(); mid++ {
			if !s.IsCharBoundary(mid) {
				be := requireBoundaryPanic(t, func() { s.SplitAt(mid) })
				require.True(t, errors.Is(be, ErrNotCharBoundary))
				continue
			}
			left, right := s.SplitAt(mid)
			require.True(t, bytes.Equal([]byte(left+right), in))
		}
	})
}
