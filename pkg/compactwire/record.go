package compactwire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rawbytedev/fixedstr"
)

var (
	ErrColumnCount   = errors.New("compactwire: wrong number of columns")
	ErrWidthMismatch = errors.New("compactwire: record width does not match layout")
	ErrColumnSplit   = errors.New("compactwire: column edge splits a character")
	ErrBadLayout     = errors.New("compactwire: negative column width")
)

// Layout describes a fixed-width record: consecutive columns of the given
// byte widths, each NUL-padded on the right.
type Layout struct {
	Widths []int
}

func (l Layout) validate() error {
	for i, w := range l.Widths {
		if w < 0 {
			return fmt.Errorf("%w: column %d is %d", ErrBadLayout, i, w)
		}
	}
	return nil
}

func (l Layout) Width() int {
	n := 0
	for _, w := range l.Widths {
		n += w
	}
	return n
}

// Pack lays values out as one record Str of width l.Width().
func Pack(l Layout, values ...string) (*fixedstr.Str, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if len(values) != len(l.Widths) {
		return nil, fmt.Errorf("%w: layout has %d, got %d", ErrColumnCount, len(l.Widths), len(values))
	}
	rec := fixedstr.Zeroed(l.Width())
	// a zeroed record is all NUL characters, so every offset is a boundary
	rest := rec.AsMutView()
	for i, v := range values {
		w := l.Widths[i]
		if len(v) > w {
			return nil, fmt.Errorf("column %d: %w: %d bytes into %d", i, fixedstr.ErrTooLong, len(v), w)
		}
		var col fixedstr.MutView
		col, rest = rest.SplitAt(w)
		if err := col.Overwrite(v + strings.Repeat("\x00", w-len(v))); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
	}
	return rec, nil
}

// Unpack cuts rec into its columns and strips the NUL padding. The
// returned strings share rec's buffer.
func Unpack(l Layout, rec *fixedstr.Str) ([]string, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if rec.Len() != l.Width() {
		return nil, fmt.Errorf("%w: %d bytes, layout needs %d", ErrWidthMismatch, rec.Len(), l.Width())
	}
	out := make([]string, 0, len(l.Widths))
	off := 0
	for i, w := range l.Widths {
		col, err := column(rec, off, off+w)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		out = append(out, strings.TrimRight(col, "\x00"))
		off += w
	}
	return out, nil
}

// column is rec.Slice with a cut inside a character reported as an error.
func column(rec *fixedstr.Str, begin, end int) (col string, err error) {
	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(*fixedstr.BoundaryError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %w", ErrColumnSplit, be)
		}
	}()
	return rec.Slice(begin, end), nil
}
