package layout

// Pass describes one walk of the build function.
type Pass struct {
	Phase   Phase
	Drawing bool // only the repaint pass draws
	Display Vec2
	Mouse   Vec2 // window coordinates
}

// Host is the drawing and input surface the layout engine runs on. The
// engine never owns its lifecycle.
//
// Rectangles passed to and returned from a Host are in the current local
// space: PushClip makes the top-left of the clip rectangle the new origin
// until the matching PopClip.
type Host interface {
	BeginPass(p Pass)

	// FallbackRect is the layout used for entries and groups that have no
	// parent group. Measurement calls record the request and return
	// InvalidRect.
	FallbackRect(phase Phase, w, h float32) Rect

	PushClip(r Rect)
	PopClip()

	// Mouse returns the pointer position in the current local space.
	Mouse() Vec2

	HotControl() ID
	SetHotControl(id ID)
	KeyboardControl() ID
	SetKeyboardControl(id ID)

	FillRect(r Rect, color uint32)
	StrokeRect(r Rect, color uint32, thickness float32)
	Line(a, b Vec2, color uint32, thickness float32)
	Text(pos Vec2, text string, color uint32)
}

// DrawHost is the default Host. It draws into a DrawList with the built-in
// bitmap font and stacks root entries vertically from the window origin.
type DrawHost struct {
	dl          *DrawList
	style       *Style
	fontTexture uint32

	pass    Pass
	origin  Vec2
	origins []Vec2

	fallbackY float32

	hot, keyboard ID
}

// NewDrawHost creates a host drawing into dl.
func NewDrawHost(dl *DrawList, style *Style, fontTexture uint32) *DrawHost {
	return &DrawHost{dl: dl, style: style, fontTexture: fontTexture}
}

// DrawList returns the list the host draws into.
func (h *DrawHost) DrawList() *DrawList {
	return h.dl
}

func (h *DrawHost) BeginPass(p Pass) {
	h.pass = p
	h.origin = Vec2{}
	h.origins = h.origins[:0]
	h.fallbackY = 0
	if p.Drawing {
		h.dl.Clear()
	}
}

func (h *DrawHost) FallbackRect(phase Phase, w, height float32) Rect {
	if phase == PhaseMeasurement {
		return InvalidRect
	}
	if w <= 0 {
		w = h.pass.Display.X
	}
	r := Rect{X: 0, Y: h.fallbackY, W: w, H: height}
	h.fallbackY += height
	return r
}

func (h *DrawHost) PushClip(r Rect) {
	abs := r.Translate(h.origin)
	h.origins = append(h.origins, h.origin)
	h.origin = abs.Pos()
	h.dl.PushClipRect(abs.X, abs.Y, abs.X+abs.W, abs.Y+abs.H)
}

func (h *DrawHost) PopClip() {
	n := len(h.origins)
	if n == 0 {
		return
	}
	h.origin = h.origins[n-1]
	h.origins = h.origins[:n-1]
	h.dl.PopClipRect()
}

func (h *DrawHost) Mouse() Vec2 {
	return h.pass.Mouse.Sub(h.origin)
}

func (h *DrawHost) HotControl() ID           { return h.hot }
func (h *DrawHost) SetHotControl(id ID)      { h.hot = id }
func (h *DrawHost) KeyboardControl() ID      { return h.keyboard }
func (h *DrawHost) SetKeyboardControl(id ID) { h.keyboard = id }

func (h *DrawHost) FillRect(r Rect, color uint32) {
	if !h.pass.Drawing {
		return
	}
	r = r.Translate(h.origin)
	h.dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

func (h *DrawHost) StrokeRect(r Rect, color uint32, thickness float32) {
	if !h.pass.Drawing {
		return
	}
	r = r.Translate(h.origin)
	h.dl.AddRectOutline(r.X, r.Y, r.W, r.H, color, thickness)
}

func (h *DrawHost) Line(a, b Vec2, color uint32, thickness float32) {
	if !h.pass.Drawing {
		return
	}
	a = a.Add(h.origin)
	b = b.Add(h.origin)
	h.dl.AddLine(a.X, a.Y, b.X, b.Y, color, thickness)
}

func (h *DrawHost) Text(pos Vec2, text string, color uint32) {
	if !h.pass.Drawing {
		return
	}
	pos = pos.Add(h.origin)
	h.dl.SetTexture(h.fontTexture)
	h.dl.AddText(pos.X, pos.Y, text, color, h.style.CharWidth, h.style.CharHeight)
	h.dl.SetTexture(0)
}
