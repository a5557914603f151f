package layout

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// GroupStyle holds the box model and spacing of one group kind.
type GroupStyle struct {
	Margin  Insets  `toml:"margin"`
	Border  Insets  `toml:"border"`
	Padding Insets  `toml:"padding"`
	Gap     float32 `toml:"gap"`
	Clip    bool    `toml:"clip"`

	Background  uint32 `toml:"background"`
	BorderColor uint32 `toml:"border_color"`
}

// insets returns margin, border and padding combined.
func (gs GroupStyle) insets() Insets {
	return gs.Margin.Add(gs.Border).Add(gs.Padding)
}

// Style supplies the metrics and colors groups and list views read when
// they are created. Groups keep the values they were created with until
// they are rebuilt.
type Style struct {
	// Text
	TextColor         uint32  `toml:"text_color"`
	TextDisabledColor uint32  `toml:"text_disabled_color"`
	CharWidth         float32 `toml:"char_width"`
	CharHeight        float32 `toml:"char_height"`

	// Rows
	RowHeight       float32 `toml:"row_height"`
	RowBgAltColor   uint32  `toml:"row_bg_alt_color"`
	SelectedBgColor uint32  `toml:"selected_bg_color"`
	HoveredBgColor  uint32  `toml:"hovered_bg_color"`
	ActiveRowColor  uint32  `toml:"active_row_color"`

	// Scrollbar
	ScrollbarSize        float32 `toml:"scrollbar_size"`
	ScrollbarMinThumb    float32 `toml:"scrollbar_min_thumb"`
	ScrollbarBgColor     uint32  `toml:"scrollbar_bg_color"`
	ScrollbarGrabColor   uint32  `toml:"scrollbar_grab_color"`
	ScrollbarGrabHovered uint32  `toml:"scrollbar_grab_hovered"`
	WheelStep            float32 `toml:"wheel_step"` // pixels per wheel notch

	// Tree view
	TreeIndent    float32 `toml:"tree_indent"`
	TreeLineColor uint32  `toml:"tree_line_color"`

	// Drag and drop feedback
	DropAcceptColor uint32 `toml:"drop_accept_color"`
	DropRejectColor uint32 `toml:"drop_reject_color"`
	DropLinkColor   uint32 `toml:"drop_link_color"`

	// Per-kind box model
	Vertical   GroupStyle `toml:"vertical"`
	Horizontal GroupStyle `toml:"horizontal"`
	Flexible   GroupStyle `toml:"flexible"`
	Scroll     GroupStyle `toml:"scroll"`
	Tree       GroupStyle `toml:"tree"`
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		CharWidth:         8,
		CharHeight:        8,

		RowHeight:       20,
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),
		ActiveRowColor:  RGBA(70, 120, 170, 255),

		ScrollbarSize:        12,
		ScrollbarMinThumb:    20,
		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),
		WheelStep:            30,

		TreeIndent:    SpaceXL,
		TreeLineColor: RGBA(90, 90, 90, 255),

		DropAcceptColor: RGBA(50, 130, 80, 255),
		DropRejectColor: RGBA(180, 60, 60, 255),
		DropLinkColor:   RGBA(50, 100, 150, 255),

		Vertical:   GroupStyle{Gap: SpaceSM},
		Horizontal: GroupStyle{Gap: SpaceSM},
		Flexible:   GroupStyle{Gap: SpaceSM},
		Scroll: GroupStyle{
			Border:      Uniform(1),
			Clip:        true,
			Background:  RGBA(20, 20, 20, 200),
			BorderColor: RGBA(80, 80, 80, 255),
		},
		Tree: GroupStyle{Gap: SpaceXS},
	}
}

// CompactStyle returns DefaultStyle with no gaps, borders or padding. Tests
// and tooling that check exact geometry use it.
func CompactStyle() Style {
	s := DefaultStyle()
	s.Vertical = GroupStyle{}
	s.Horizontal = GroupStyle{}
	s.Flexible = GroupStyle{}
	s.Scroll = GroupStyle{Clip: true}
	s.Tree = GroupStyle{}
	return s
}

// Group returns the box model for a group kind.
func (s *Style) Group(kind GroupKind) GroupStyle {
	switch kind {
	case KindHorizontal:
		return s.Horizontal
	case KindFlexible:
		return s.Flexible
	case KindScroll:
		return s.Scroll
	case KindTree:
		return s.Tree
	default:
		return s.Vertical
	}
}

// TextSize returns the size of text drawn with the bitmap font.
func (s *Style) TextSize(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * s.CharWidth, Y: s.CharHeight}
}
