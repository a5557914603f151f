package layout

// FlexibleWidth returns the width each automatic entry of a flexible group
// receives: the target width left after fixed widths and gaps, shared evenly
// and never negative.
func FlexibleWidth(target, fixed, gap float32, entries, flexible int) float32 {
	if flexible <= 0 {
		return 0
	}
	gaps := gap * float32(max(entries-1, 0))
	return max(0, (target-fixed-gaps)/float32(flexible))
}

// flexibleStrategy is a horizontal rule where entries without a positive
// width share the remaining width.
type flexibleStrategy struct {
	linearStrategy
}

func (s flexibleStrategy) register(g *Group, w, h float32, count int, auto bool) {
	s.linearStrategy.register(g, w, h, count, auto)
	if auto {
		g.flexCount += count
	} else {
		g.fixedW += w * float32(count)
	}
}

// finalize solves the flexible width against the width the parent offers.
// Interaction solves it again against the width actually assigned.
func (s flexibleStrategy) finalize(g *Group) Vec2 {
	size := g.accum
	if g.flexCount == 0 {
		return size
	}
	g.flexW = FlexibleWidth(g.avail, g.fixedW, g.style.Gap, g.entries, g.flexCount)
	size.X = g.fixedW + g.style.Gap*float32(g.entries-1) + g.flexW*float32(g.flexCount)
	return size
}

func (s flexibleStrategy) arrange(g *Group) {
	s.linearStrategy.arrange(g)
	g.flexW = FlexibleWidth(g.inner.W, g.fixedW, g.style.Gap, g.entries, g.flexCount)
}

func (s flexibleStrategy) place(g *Group, req entryRequest) Rect {
	w := req.size.X
	if req.auto {
		w = g.flexW
	}
	return placeHorizontal(g, req, w)
}
