package layout

// treeState records where the entries of a tree group ended up so the
// connectors can be drawn once the group closes.
type treeState struct {
	centers []float32 // entry connector Y in child space
}

// treeStrategy is a vertical rule whose entries are indented when the group
// is nested in another tree group. Nesting compounds the indent.
type treeStrategy struct {
	linearStrategy
}

func (s treeStrategy) offset(g *Group) float32 {
	if g.depth == 0 {
		return 0
	}
	return g.indent
}

func (s treeStrategy) register(g *Group, w, h float32, count int, auto bool) {
	if w > 0 {
		w += s.offset(g)
	}
	s.linearStrategy.register(g, w, h, count, auto)
}

func (s treeStrategy) arrange(g *Group) {
	s.linearStrategy.arrange(g)
	g.tree.centers = g.tree.centers[:0]
}

func (s treeStrategy) place(g *Group, req entryRequest) Rect {
	r := placeVertical(g, req, s.offset(g))
	rowH := min(r.H, g.ctx.Style().RowHeight)
	g.tree.centers = append(g.tree.centers, r.Y+rowH/2)
	return r
}

// finish draws a vertical connector from the top of the group to the last
// entry and a stub to every entry.
func (s treeStrategy) finish(g *Group) {
	ctx := g.ctx
	off := s.offset(g)
	centers := g.tree.centers
	if !ctx.Drawing() || off == 0 || len(centers) == 0 {
		return
	}
	color := ctx.Style().TreeLineColor
	o := g.childOrigin
	x := o.X + g.start.X + off/2
	top := o.Y + g.start.Y
	last := o.Y + centers[len(centers)-1]
	ctx.host.Line(Vec2{X: x, Y: top}, Vec2{X: x, Y: last}, color, 1)
	for _, c := range centers {
		y := o.Y + c
		ctx.host.Line(Vec2{X: x, Y: y}, Vec2{X: x + off/2 - 2, Y: y}, color, 1)
	}
}
