package fixedstr

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (s *Str) MarshalText() ([]byte, error) {
	return bytes.Clone(s.buf), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The zero Str takes
// the length of text; a constructed Str keeps its length N, and text is
// written in place and NUL-padded, failing with ErrTooLong if it does not fit.
func (s *Str) UnmarshalText(text []byte) error {
	return s.assign(text)
}

// assign stores valid UTF-8 b into s following the UnmarshalText rules.
// On error s is left untouched.
func (s *Str) assign(b []byte) error {
	if s.buf != nil && len(b) > len(s.buf) {
		return fmt.Errorf("%w: %d bytes into %d", ErrTooLong, len(b), len(s.buf))
	}
	if err := newUtf8Error(b); err != nil {
		return err
	}
	if s.buf == nil {
		s.buf = make([]byte, len(b))
		copy(s.buf, b)
		return nil
	}
	n := copy(s.buf, b)
	clear(s.buf[n:])
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *Str) MarshalYAML() (any, error) {
	return string(s.buf), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same length rules
// as UnmarshalText.
func (s *Str) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("fixedstr: cannot decode yaml node kind %d into Str", value.Kind)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	return s.assign([]byte(text))
}
