package layout_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/layout"
)

func TestParseStyleOverridesDefaults(t *testing.T) {
	s, err := layout.ParseStyle([]byte(`
row_height = 24

[scroll]
gap = 3
border = { left = 2, top = 2, right = 2, bottom = 2 }
`))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	if s.RowHeight != 24 {
		t.Errorf("row height = %v, want 24", s.RowHeight)
	}
	if s.Scroll.Gap != 3 || s.Scroll.Border != layout.Uniform(2) {
		t.Errorf("scroll style = %+v", s.Scroll)
	}
	def := layout.DefaultStyle()
	if s.WheelStep != def.WheelStep || s.Vertical != def.Vertical {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestParseStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "row_hieght = 24"},
		{"zero row height", "row_height = 0"},
		{"negative scrollbar", "scrollbar_size = -1"},
		{"bad syntax", "row_height = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := layout.ParseStyle([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if s != layout.DefaultStyle() {
				t.Error("a failed parse should return the default style")
			}
		})
	}
}

func TestLoadStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(path, []byte("wheel_step = 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := layout.LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.WheelStep != 45 {
		t.Errorf("wheel step = %v, want 45", s.WheelStep)
	}

	_, err = layout.LoadStyle(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
	if err != nil && !strings.Contains(err.Error(), "missing.toml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestWriteStyle(t *testing.T) {
	s := layout.CompactStyle()
	s.RowHeight = 18
	s.TreeIndent = 10

	var buf bytes.Buffer
	if err := layout.WriteStyle(&buf, s); err != nil {
		t.Fatalf("WriteStyle: %v", err)
	}
	if !strings.Contains(buf.String(), "row_height = 18") {
		t.Errorf("encoded style lacks row_height:\n%s", buf.String())
	}

	back, err := layout.ParseStyle(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseStyle of written style: %v", err)
	}
	if back != s {
		t.Errorf("written style did not read back:\n got %+v\nwant %+v", back, s)
	}
}
