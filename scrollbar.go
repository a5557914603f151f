package layout

// ResolveScrollbars decides which scrollbars a viewport needs. Both axes are
// first tested against the unreserved viewport; each needed bar then takes
// its thickness from the other axis and both axes are tested again. The
// returned viewport is the view minus the reserved bars.
func ResolveScrollbars(content, view Vec2, thickness float32) (needH, needV bool, viewport Vec2) {
	needH = content.X > view.X
	needV = content.Y > view.Y

	reserved := reserveBars(view, needH, needV, thickness)
	needH = content.X > reserved.X
	needV = content.Y > reserved.Y

	return needH, needV, reserveBars(view, needH, needV, thickness)
}

func reserveBars(view Vec2, needH, needV bool, thickness float32) Vec2 {
	if needV {
		view.X -= thickness
	}
	if needH {
		view.Y -= thickness
	}
	return Vec2{X: max(view.X, 0), Y: max(view.Y, 0)}
}

// ThumbLength returns the scrollbar thumb length for one axis.
func ThumbLength(view, content, minThumb float32) float32 {
	if content <= 0 {
		return view
	}
	return min(max(view*(view/content), minThumb), view)
}

// ContentOffset maps a normalized scroll position onto the pixel offset of
// the content.
func ContentOffset(content, view, pos float32) float32 {
	return lerpf(0, max(content-view, 0), clamp01(pos))
}

// ScrollState is the scroll position of a scroll group. Positions are
// normalized to [0,1] per axis; offsets are in pixels.
type ScrollState struct {
	pos     Vec2
	offset  Vec2
	content Vec2
	view    Vec2
	thumb   Vec2

	needH, needV bool

	minThumb float32
	guessed  bool // content size not measured yet
}

// Position returns the normalized scroll position.
func (s *ScrollState) Position() Vec2 { return s.pos }

// Offset returns the content offset in pixels.
func (s *ScrollState) Offset() Vec2 { return s.offset }

// ContentSize returns the size of the scrolled content.
func (s *ScrollState) ContentSize() Vec2 { return s.content }

// Viewport returns the visible size after scrollbar reservation.
func (s *ScrollState) Viewport() Vec2 { return s.view }

// Active reports whether the scrollbar of an axis is shown.
func (s *ScrollState) Active(a Axis) bool {
	if a == AxisX {
		return s.needH
	}
	return s.needV
}

// ThumbLength returns the thumb length of an axis.
func (s *ScrollState) ThumbLength(a Axis) float32 {
	return s.thumb.Get(a)
}

// SetPosition sets the normalized position of an axis and recomputes its
// offset.
func (s *ScrollState) SetPosition(a Axis, pos float32) {
	pos = clamp01(pos)
	if a == AxisX {
		s.pos.X = pos
		s.offset.X = ContentOffset(s.content.X, s.view.X, pos)
		return
	}
	s.pos.Y = pos
	s.offset.Y = ContentOffset(s.content.Y, s.view.Y, pos)
}

// ScrollTo scrolls an axis so the content offset is px.
func (s *ScrollState) ScrollTo(a Axis, px float32) {
	span := s.content.Get(a) - s.view.Get(a)
	if span <= 0 {
		s.SetPosition(a, 0)
		return
	}
	s.SetPosition(a, px/span)
}

// ScrollBy moves the content offset of an axis by px.
func (s *ScrollState) ScrollBy(a Axis, px float32) {
	s.ScrollTo(a, s.offset.Get(a)+px)
}

// resolve recomputes bars, thumbs and offsets for a viewport of view.
func (s *ScrollState) resolve(view Vec2, thickness float32) {
	if s.guessed {
		// Unknown content: keep the vertical bar so a later measurement
		// only removes space.
		s.needH = false
		s.needV = true
		s.view = reserveBars(view, false, true, thickness)
	} else {
		s.needH, s.needV, s.view = ResolveScrollbars(s.content, view, thickness)
	}
	s.thumb = Vec2{
		X: ThumbLength(s.view.X, s.content.X, s.minThumb),
		Y: ThumbLength(s.view.Y, s.content.Y, s.minThumb),
	}
	if !s.needH {
		s.pos.X = 0
	}
	s.SetPosition(AxisX, s.pos.X)
	s.SetPosition(AxisY, s.pos.Y)
}

// dragBy moves the thumb of an axis by delta pixels.
func (s *ScrollState) dragBy(a Axis, delta float32) {
	track := s.view.Get(a) - s.thumb.Get(a)
	if track <= 0 {
		return
	}
	s.SetPosition(a, s.pos.Get(a)+delta/track)
}

// trackClick jumps to the position of a click along the track.
func (s *ScrollState) trackClick(a Axis, mouseOffset float32) {
	view := s.view.Get(a)
	if view <= 0 {
		return
	}
	s.SetPosition(a, mouseOffset/view)
}

// wheel applies a wheel delta in pixels.
func (s *ScrollState) wheel(a Axis, delta float32) {
	s.dragBy(a, delta)
}
