package layout

import "log/slog"

// Phase is the kind of walk the build function is in.
type Phase uint8

const (
	// PhaseMeasurement accumulates sizes bottom-up. Nothing is drawn and
	// every rect query returns InvalidRect.
	PhaseMeasurement Phase = iota
	// PhaseInteraction assigns rects top-down, culls, handles the pass's
	// event and, in the repaint pass, draws.
	PhaseInteraction
)

func (p Phase) String() string {
	if p == PhaseMeasurement {
		return "measurement"
	}
	return "interaction"
}

// Context is threaded through every layout call of a frame.
// This is NOT context.Context; it is the layout engine's own state for the
// pass being run.
type Context struct {
	gui  *GUI
	host Host

	// Input (read-only during a frame)
	Input *InputState

	DisplaySize Vec2
	DeltaTime   float32
	Time        float64 // seconds accumulated from DeltaTime

	frame       uint64
	phase       Phase
	drawing     bool
	inPass      bool
	event       Event
	measurePass uint64
	dragSession uint64

	current  *Group
	rootKeys keyScope

	forceFull      bool
	relayout       bool
	relayoutReason string
}

// Phase returns the phase of the running pass.
func (ctx *Context) Phase() Phase { return ctx.phase }

// DragSession numbers the current drag-and-drop session. It advances after
// every frame whose event ends a session, a drop or an exit, wherever the
// pointer was and whoever used the event.
func (ctx *Context) DragSession() uint64 { return ctx.dragSession }

// Measuring reports whether the running pass is a measurement pass.
func (ctx *Context) Measuring() bool { return ctx.phase == PhaseMeasurement }

// Drawing reports whether the running pass is the repaint pass.
func (ctx *Context) Drawing() bool { return ctx.drawing }

// Frame returns the frame counter.
func (ctx *Context) Frame() uint64 { return ctx.frame }

// Event returns the event of the running pass.
func (ctx *Context) Event() *Event { return &ctx.event }

// Style returns the style groups are created with.
func (ctx *Context) Style() *Style { return &ctx.gui.style }

// Host returns the drawing and input surface.
func (ctx *Context) Host() Host { return ctx.host }

// Mouse returns the pointer position in the active group's space.
func (ctx *Context) Mouse() Vec2 { return ctx.host.Mouse() }

// Hovered reports whether the pointer is over a valid rect of the active
// group's space.
func (ctx *Context) Hovered(r Rect) bool {
	return r.Valid() && r.Contains(ctx.Mouse())
}

// CurrentGroup returns the innermost open group, or nil at the root.
func (ctx *Context) CurrentGroup() *Group { return ctx.current }

// RequestRelayout asks for another measurement before the next interaction
// pass of this frame. A frame runs at most one extra measure and repaint.
func (ctx *Context) RequestRelayout(reason string) {
	if !ctx.relayout {
		ctx.relayoutReason = reason
		if verbose() {
			layoutLogger.Debug("relayout requested", slog.String("reason", reason), slog.Uint64("frame", ctx.frame))
		}
	}
	ctx.relayout = true
}

func (ctx *Context) eventUsed() bool {
	return ctx.phase == PhaseInteraction && ctx.event.used
}

// availableWidth returns the content width a child of p may fill.
func (ctx *Context) availableWidth(p *Group) float32 {
	if p == nil {
		return ctx.DisplaySize.X
	}
	w := p.avail
	if p.kind == KindTree && p.depth > 0 {
		w -= p.indent
	}
	return w
}

// GetRect asks the active group for the next entry. Without an open group
// the host's fallback layout answers.
func (ctx *Context) GetRect(w, h float32) Rect {
	if g := ctx.current; g != nil {
		return g.GetRect(w, h)
	}
	ctx.checkPass("GetRect")
	return ctx.host.FallbackRect(ctx.phase, w, h)
}

func (ctx *Context) checkPass(op string) {
	if !ctx.inPass {
		protocolPanic("%s outside a frame pass", op)
	}
}

// lookup finds or creates the node for the next child named label.
func (ctx *Context) lookup(parent *Group, kind GroupKind, label string, cfg groupConfig) *Group {
	var id ID
	if parent != nil {
		id = parent.keys.next(label)
	} else {
		id = ctx.rootKeys.next(label)
	}
	slot, created := ctx.gui.nodes.Get(ctx.frame, id, func() *Group {
		return newGroup(ctx, id, label, kind, cfg)
	})
	g := *slot
	if !created && (g.kind != kind || g.cfg != cfg) {
		if verbose() {
			layoutLogger.Debug("group config changed", slog.String("group", label), slog.String("kind", kind.String()))
		}
		g.setKind(kind, cfg)
		g.cache = FullRebuild
	}

	g.parent = parent
	g.depth = 0
	if parent != nil {
		parent.children[id] = g
		g.depth = parent.depth
		if parent.kind == KindTree {
			g.depth++
		}
	}
	return g
}

// BeginGroup opens a group. It reports whether the body should run; the
// matching EndGroup must be called either way.
//
//	if ctx.BeginGroup(layout.KindVertical, "rows") {
//		...
//	}
//	ctx.EndGroup(layout.KindVertical)
func (ctx *Context) BeginGroup(kind GroupKind, label string, opts ...GroupOption) bool {
	ctx.checkPass("BeginGroup")
	g := ctx.lookup(ctx.current, kind, label, applyGroupOptions(opts))
	if g.active {
		protocolPanic("group %q begun twice", label)
	}
	g.active = true
	g.phase = ctx.phase
	g.keys.reset(g.id)
	ctx.current = g

	if ctx.phase == PhaseMeasurement {
		return g.beginMeasurement()
	}
	open := g.beginInteraction()
	if ctx.drawing && ctx.gui.inspect != nil && g.valid {
		ctx.gui.inspect(g)
	}
	return open
}

// EndGroup closes the innermost group, which must be of kind.
func (ctx *Context) EndGroup(kind GroupKind) {
	g := ctx.current
	if g == nil {
		protocolPanic("EndGroup(%s) without an open group", kind)
	}
	if g.kind != kind {
		protocolPanic("EndGroup(%s) closes %s group %q", kind, g.kind, g.label)
	}
	if ctx.phase == PhaseMeasurement {
		g.endMeasurement()
	} else {
		g.endInteraction()
	}
	g.active = false
	ctx.current = g.parent
}

// group returns the closure form of BeginGroup/EndGroup. The group is
// closed on every exit path of body.
func (ctx *Context) group(kind GroupKind, label string, opts []GroupOption) func(func()) {
	return func(body func()) {
		open := ctx.BeginGroup(kind, label, opts...)
		defer ctx.EndGroup(kind)
		if open {
			body()
		}
	}
}

// Vertical stacks the entries of body top to bottom.
//
//	ctx.Vertical("settings", layout.Gap(4))(func() {
//		ctx.Label("Name")
//	})
func (ctx *Context) Vertical(label string, opts ...GroupOption) func(func()) {
	return ctx.group(KindVertical, label, opts)
}

// Horizontal stacks the entries of body left to right.
func (ctx *Context) Horizontal(label string, opts ...GroupOption) func(func()) {
	return ctx.group(KindHorizontal, label, opts)
}

// Flexible stacks entries left to right; entries with a width of zero or
// less share the width left by the others.
func (ctx *Context) Flexible(label string, opts ...GroupOption) func(func()) {
	return ctx.group(KindFlexible, label, opts)
}

// Scroll stacks entries top to bottom inside a scrolling viewport sized by
// Width and Height.
func (ctx *Context) Scroll(label string, opts ...GroupOption) func(func()) {
	return ctx.group(KindScroll, label, opts)
}

// Tree stacks entries top to bottom, indented one level per enclosing tree
// group.
func (ctx *Context) Tree(label string, opts ...GroupOption) func(func()) {
	return ctx.group(KindTree, label, opts)
}

// Label places a line of text as one entry and returns its rect.
func (ctx *Context) Label(text string) Rect {
	st := ctx.Style()
	size := st.TextSize(text)
	r := ctx.GetRect(size.X, max(size.Y, st.RowHeight))
	if r.Valid() && ctx.drawing {
		y := r.Y + (r.H-size.Y)/2
		ctx.host.Text(Vec2{X: r.X, Y: y}, text, st.TextColor)
	}
	return r
}

// FillRect draws a filled rect during the repaint pass.
func (ctx *Context) FillRect(r Rect, color uint32) {
	if ctx.drawing && r.Valid() {
		ctx.host.FillRect(r, color)
	}
}

// StrokeRect draws a rect outline during the repaint pass.
func (ctx *Context) StrokeRect(r Rect, color uint32, thickness float32) {
	if ctx.drawing && r.Valid() {
		ctx.host.StrokeRect(r, color, thickness)
	}
}

// Text draws text during the repaint pass.
func (ctx *Context) Text(pos Vec2, text string, color uint32) {
	if ctx.drawing {
		ctx.host.Text(pos, text, color)
	}
}
