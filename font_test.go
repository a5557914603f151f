package layout

import "testing"

func TestFontAtlas(t *testing.T) {
	atlas := FontAtlas()
	if len(atlas) != FontAtlasWidth*FontAtlasHeight {
		t.Fatalf("atlas has %d bytes, want %d", len(atlas), FontAtlasWidth*FontAtlasHeight)
	}

	// 'A' is glyph 33: column 1, row 2.
	lit := 0
	for y := 2 * glyphSize; y < 3*glyphSize; y++ {
		for x := glyphSize; x < 2*glyphSize; x++ {
			if atlas[y*FontAtlasWidth+x] == 255 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' has no lit pixels")
	}
}

func TestGlyphUV(t *testing.T) {
	u0, v0, u1, v1 := glyphUV('!')
	if u0 != 8.0/128 || v0 != 0 || u1 != 16.0/128 || v1 != 8.0/48 {
		t.Errorf("glyphUV('!') = %v %v %v %v", u0, v0, u1, v1)
	}

	a0, b0, a1, b1 := glyphUV('►')
	c0, d0, c1, d1 := glyphUV('>')
	if a0 != c0 || b0 != d0 || a1 != c1 || b1 != d1 {
		t.Error("'►' should render as '>'")
	}

	q0, _, _, _ := glyphUV('?')
	if x0, _, _, _ := glyphUV('世'); x0 != q0 {
		t.Error("runes outside the atlas should render as '?'")
	}
}
