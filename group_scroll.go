package layout

// scrollStrategy is the vertical rule inside a viewport of fixed size. The
// scrollbars are resolved in finalize against the offered size and again in
// arrange against the assigned content rect.
type scrollStrategy struct {
	linearStrategy
}

// Scroll returns the scroll state of a scroll group, or nil for other kinds.
func (g *Group) Scroll() *ScrollState {
	if g.kind != KindScroll {
		return nil
	}
	return g.scroll
}

func (s scrollStrategy) finalize(g *Group) Vec2 {
	sc := g.scroll
	sc.content = g.accum
	sc.guessed = false

	view := Vec2{X: g.avail, Y: sc.content.Y}
	if g.cfg.Height > 0 {
		view.Y = g.cfg.Height - g.style.insets().Vertical()
	}
	t := g.ctx.Style().ScrollbarSize
	needH, needV, _ := ResolveScrollbars(sc.content, view, t)
	size := sc.content
	if needV {
		size.X += t
	}
	if needH {
		size.Y += t
	}
	return size
}

// guess lets a scroll group with a known viewport height lay out before its
// first measurement. The content size is learned from the pass itself.
func (s scrollStrategy) guess(g *Group) bool {
	if g.cfg.Height <= 0 {
		return false
	}
	g.scroll.guessed = true
	g.size = Vec2{X: g.cfg.Width, Y: g.cfg.Height}
	g.autoWidth = g.cfg.Width <= 0
	g.empty = false
	return true
}

func (s scrollStrategy) arrange(g *Group) {
	st := g.ctx.Style()
	sc := g.scroll
	sc.minThumb = st.ScrollbarMinThumb
	sc.resolve(g.content.Size(), st.ScrollbarSize)

	vr := sc.viewportRect(g)
	g.childOrigin = vr.Pos()
	g.inner = Rect{
		X: -sc.offset.X,
		Y: -sc.offset.Y,
		W: max(sc.view.X, sc.content.X),
		H: max(sc.view.Y, sc.content.Y),
	}
	g.childVisible = g.visible.Intersect(vr).Translate(vr.Pos().Mul(-1))
	g.start = g.inner.Pos()
}

func (s scrollStrategy) finish(g *Group) {
	ctx := g.ctx
	sc := g.scroll
	if sc.guessed {
		extent := g.cursor.Y - g.start.Y
		if g.placed > 0 {
			extent -= g.style.Gap
		}
		sc.content.Y = max(extent, 0)
		if sc.content.Y <= g.content.H {
			ctx.RequestRelayout("scroll group " + g.label + " needs no vertical scroll")
		}
	}
	s.handleInput(g)
	s.drawBars(g)
}

// viewportRect is the visible content area in the group's own space.
func (sc *ScrollState) viewportRect(g *Group) Rect {
	return Rect{X: g.content.X, Y: g.content.Y, W: sc.view.X, H: sc.view.Y}
}

// barRects returns the track and thumb of an axis in the group's own space.
func (sc *ScrollState) barRects(g *Group, a Axis, thickness float32) (bar, thumb Rect) {
	vr := sc.viewportRect(g)
	if a == AxisY {
		bar = Rect{X: vr.X + vr.W, Y: vr.Y, W: thickness, H: vr.H}
		travel := bar.H - sc.thumb.Y
		thumb = Rect{X: bar.X, Y: bar.Y + travel*sc.pos.Y, W: thickness, H: sc.thumb.Y}
		return bar, thumb
	}
	bar = Rect{X: vr.X, Y: vr.Y + vr.H, W: vr.W, H: thickness}
	travel := bar.W - sc.thumb.X
	thumb = Rect{X: bar.X + travel*sc.pos.X, Y: bar.Y, W: sc.thumb.X, H: thickness}
	return bar, thumb
}

func scrollbarID(group ID, a Axis) ID {
	return deriveID(group, hashLabel("scrollbar"), int(a))
}

// handleInput runs after the children so an entry that consumed the event
// wins over the scrollbars.
func (s scrollStrategy) handleInput(g *Group) {
	ctx := g.ctx
	ev := ctx.Event()
	if ctx.Drawing() || ev.Used() || ev.Kind == EventNone {
		return
	}
	sc := g.scroll
	host := ctx.host
	t := ctx.Style().ScrollbarSize
	m := ctx.Mouse()
	hovered := g.visible.Contains(m)

	for _, a := range [2]Axis{AxisY, AxisX} {
		if !sc.Active(a) {
			continue
		}
		bar, thumb := sc.barRects(g, a, t)
		id := scrollbarID(g.id, a)
		switch ev.Kind {
		case EventMouseDown:
			if ev.Button != MouseButtonLeft {
				break
			}
			if thumb.Contains(m) {
				host.SetHotControl(id)
				ev.Use()
			} else if bar.Contains(m) {
				sc.trackClick(a, m.Get(a)-bar.Near(a))
				ev.Use()
			}
		case EventMouseDrag:
			if host.HotControl() == id {
				sc.dragBy(a, ev.Delta.Get(a))
				ev.Use()
			}
		case EventMouseUp:
			if host.HotControl() == id {
				host.SetHotControl(0)
				ev.Use()
			}
		case EventScrollWheel:
			if d := ev.Wheel.Get(a); hovered && d != 0 {
				sc.wheel(a, d)
				ev.Use()
			}
		}
		if ev.Used() {
			return
		}
	}

	switch ev.Kind {
	case EventMouseDown:
		if hovered {
			host.SetKeyboardControl(g.id)
		}
	case EventKeyDown:
		if !sc.needV || !(hovered || host.KeyboardControl() == g.id) {
			return
		}
		page := sc.view.Y * 0.8
		switch ev.Key {
		case KeyPageDown:
			sc.ScrollBy(AxisY, page)
		case KeyPageUp:
			sc.ScrollBy(AxisY, -page)
		case KeyHome:
			sc.SetPosition(AxisY, 0)
		case KeyEnd:
			sc.SetPosition(AxisY, 1)
		default:
			return
		}
		ev.Use()
	}
}

func (s scrollStrategy) drawBars(g *Group) {
	ctx := g.ctx
	if !ctx.Drawing() {
		return
	}
	st := ctx.Style()
	sc := g.scroll
	m := ctx.Mouse()
	for _, a := range [2]Axis{AxisY, AxisX} {
		if !sc.Active(a) {
			continue
		}
		bar, thumb := sc.barRects(g, a, st.ScrollbarSize)
		ctx.host.FillRect(bar, st.ScrollbarBgColor)
		color := st.ScrollbarGrabColor
		if ctx.host.HotControl() == scrollbarID(g.id, a) || thumb.Contains(m) {
			color = st.ScrollbarGrabHovered
		}
		ctx.host.FillRect(thumb, color)
	}
}
