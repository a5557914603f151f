package layout

// linearStrategy stacks entries along one axis: heights add up and the
// widest entry sets the width for vertical groups, and the other way round
// for horizontal ones.
type linearStrategy struct {
	axis Axis
}

func (s linearStrategy) register(g *Group, w, h float32, count int, auto bool) {
	main, cross := max(h, 0), max(w, 0)
	if s.axis == AxisX {
		main, cross = max(w, 0), max(h, 0)
	}
	n := float32(count)
	extent := main*n + g.style.Gap*(n-1)
	if g.entries > 0 {
		extent += g.style.Gap
	}
	if s.axis == AxisX {
		g.accum.X += extent
		g.accum.Y = max(g.accum.Y, cross)
	} else {
		g.accum.Y += extent
		g.accum.X = max(g.accum.X, cross)
	}
	g.entries += count
}

func (s linearStrategy) finalize(g *Group) Vec2 {
	return g.accum
}

func (s linearStrategy) arrange(g *Group) {
	arrangeChildSpace(g, g.content)
}

func (s linearStrategy) place(g *Group, req entryRequest) Rect {
	if s.axis == AxisY {
		return placeVertical(g, req, 0)
	}
	w := req.size.X
	if req.auto && !req.group {
		w = g.inner.X + g.inner.W - g.cursor.X
	}
	return placeHorizontal(g, req, w)
}

func (s linearStrategy) finish(g *Group) {}

func (s linearStrategy) guess(g *Group) bool { return false }

// arrangeChildSpace sets up the space children are placed in. Clipping
// groups move the origin to the top-left of area.
func arrangeChildSpace(g *Group, area Rect) {
	vis := g.visible.Intersect(area)
	if g.style.Clip {
		g.childOrigin = area.Pos()
		g.inner = Rect{W: area.W, H: area.H}
		g.childVisible = vis.Translate(area.Pos().Mul(-1))
	} else {
		g.childOrigin = Vec2{}
		g.inner = area
		g.childVisible = vis
	}
	g.start = g.inner.Pos()
}

// placeVertical places the next entry below the previous one. Automatic
// widths fill the inner width left of the indent.
func placeVertical(g *Group, req entryRequest, indent float32) Rect {
	w := req.size.X
	if req.auto {
		w = g.inner.W - indent
	}
	r := Rect{X: g.cursor.X + indent, Y: g.cursor.Y, W: w, H: req.size.Y}
	g.cursor.Y += r.H + g.style.Gap
	return r
}

// placeHorizontal places the next entry right of the previous one. Heights
// of zero or less fill the inner height.
func placeHorizontal(g *Group, req entryRequest, w float32) Rect {
	h := req.size.Y
	if h <= 0 {
		h = g.inner.H
	}
	r := Rect{X: g.cursor.X, Y: g.cursor.Y, W: w, H: h}
	g.cursor.X += w + g.style.Gap
	return r
}
