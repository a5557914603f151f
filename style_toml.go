package layout

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadStyle reads a TOML style file. Keys missing from the file keep their
// DefaultStyle values; unknown keys are rejected.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultStyle(), fmt.Errorf("read style %s: %w", path, err)
	}
	s, err := ParseStyle(data)
	if err != nil {
		return s, fmt.Errorf("style %s: %w", path, err)
	}
	return s, nil
}

// ParseStyle decodes TOML over DefaultStyle.
//
//	row_height = 24
//	wheel_step = 40
//
//	[scroll]
//	clip = true
//	border = { left = 1, top = 1, right = 1, bottom = 1 }
func ParseStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return DefaultStyle(), fmt.Errorf("parse style: %w", err)
	}
	if err := s.validate(); err != nil {
		return DefaultStyle(), err
	}
	return s, nil
}

// WriteStyle encodes s as TOML.
func WriteStyle(w io.Writer, s Style) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode style: %w", err)
	}
	return nil
}

func (s *Style) validate() error {
	switch {
	case s.RowHeight <= 0:
		return fmt.Errorf("parse style: row_height must be positive, got %v", s.RowHeight)
	case s.ScrollbarSize < 0:
		return fmt.Errorf("parse style: scrollbar_size must not be negative, got %v", s.ScrollbarSize)
	case s.ScrollbarMinThumb < 0:
		return fmt.Errorf("parse style: scrollbar_min_thumb must not be negative, got %v", s.ScrollbarMinThumb)
	case s.CharWidth <= 0 || s.CharHeight <= 0:
		return fmt.Errorf("parse style: char size must be positive, got %vx%v", s.CharWidth, s.CharHeight)
	}
	return nil
}
