package layout

import "log/slog"

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// FrameStats counts the passes of the last frame.
type FrameStats struct {
	Measurements int
	Interactions int
	Relayouts    int
	Nodes        int
}

// GUI owns the retained group tree and runs the passes of each frame.
type GUI struct {
	renderer Renderer
	style    Style
	host     Host
	drawHost *DrawHost
	ctx      *Context
	nodes    *FrameStore[*Group]
	inspect  func(g *Group)

	lastDisplay Vec2
	prevMouse   Vec2
	invalidate  bool
	stats       FrameStats
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the style groups are created with.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithHost replaces the default DrawHost.
func WithHost(h Host) GUIOption {
	return func(g *GUI) { g.host = h }
}

// WithInspector registers a callback run for every group that receives room
// in the repaint pass, in tree order.
func WithInspector(fn func(g *Group)) GUIOption {
	return func(g *GUI) { g.inspect = fn }
}

// New creates a GUI. renderer may be nil for headless use.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		nodes:    NewFrameStore[*Group](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.host == nil {
		var font uint32
		if renderer != nil {
			font = renderer.FontTextureID()
		}
		g.drawHost = NewDrawHost(AcquireDrawList(), &g.style, font)
		g.host = g.drawHost
	}
	g.ctx = &Context{gui: g, host: g.host}
	g.nodes.OnEvict(func(id ID, n *Group) {
		if n.parent != nil {
			delete(n.parent.children, id)
		}
	})
	return g
}

// Frame runs one frame: a measurement pass, an input pass when the frame
// has an event, a measurement again if the input pass asked for a relayout,
// and the repaint pass. A relayout requested during the repaint pass runs
// one more measurement and repaint. The draw list is then rendered.
func (g *GUI) Frame(input *InputState, displaySize Vec2, deltaTime float32, build func(ctx *Context)) error {
	if input == nil {
		input = NewInputState()
	}
	ctx := g.ctx
	ctx.frame++
	g.nodes.Cleanup(ctx.frame)

	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.Time += float64(deltaTime)
	ctx.forceFull = g.invalidate || displaySize != g.lastDisplay
	ctx.relayout = false
	g.invalidate = false
	g.lastDisplay = displaySize
	g.stats = FrameStats{}

	ev := deriveEvent(input, g.prevMouse, g.style.WheelStep)
	g.prevMouse = ev.Mouse
	repaint := Event{Kind: EventRepaint, Mouse: ev.Mouse, Shift: ev.Shift, Ctrl: ev.Ctrl}

	g.runPass(build, PhaseMeasurement, Event{Mouse: ev.Mouse}, false)
	ctx.forceFull = false

	if ev.Kind != EventNone {
		g.runPass(build, PhaseInteraction, ev, false)
		if g.takeRelayout() {
			g.runPass(build, PhaseMeasurement, Event{Mouse: ev.Mouse}, false)
		}
	}

	g.runPass(build, PhaseInteraction, repaint, true)
	if g.takeRelayout() {
		g.runPass(build, PhaseMeasurement, Event{Mouse: ev.Mouse}, false)
		g.runPass(build, PhaseInteraction, repaint, true)
		if g.takeRelayout() && verbose() {
			layoutLogger.Debug("relayout deferred to next frame", slog.String("reason", ctx.relayoutReason))
		}
	}
	if ev.Kind == EventDragPerform || ev.Kind == EventDragExited {
		ctx.dragSession++
	}
	g.stats.Nodes = g.nodes.Len()

	if g.drawHost == nil || g.renderer == nil {
		return nil
	}
	dl := g.drawHost.DrawList()
	dl.Finalize()
	return g.renderer.Render(dl)
}

func (g *GUI) takeRelayout() bool {
	if !g.ctx.relayout {
		return false
	}
	g.ctx.relayout = false
	g.stats.Relayouts++
	return true
}

func (g *GUI) runPass(build func(ctx *Context), phase Phase, ev Event, drawing bool) {
	ctx := g.ctx
	ctx.phase = phase
	ctx.drawing = drawing
	ctx.event = ev
	ctx.current = nil
	ctx.rootKeys.reset(0)
	if phase == PhaseMeasurement {
		ctx.measurePass++
		g.stats.Measurements++
	} else {
		g.stats.Interactions++
	}
	g.host.BeginPass(Pass{Phase: phase, Drawing: drawing, Display: ctx.DisplaySize, Mouse: ev.Mouse})

	ctx.inPass = true
	defer func() {
		ctx.inPass = false
		for open := ctx.current; open != nil; open = open.parent {
			open.active = false
		}
	}()
	build(ctx)
	if open := ctx.current; open != nil {
		protocolPanic("group %q still open at the end of the %s pass", open.label, phase)
	}
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle replaces the style and rebuilds every group.
func (g *GUI) SetStyle(style Style) {
	g.style = style
	g.invalidate = true
}

// InvalidateAll forces a full rebuild of every group in the next frame.
func (g *GUI) InvalidateAll() {
	g.invalidate = true
}

// MarkDirty invalidates the group with the given id. It reports whether
// the group exists.
func (g *GUI) MarkDirty(id ID, scope CacheState) bool {
	n := g.nodes.GetIfExists(id)
	if n == nil {
		return false
	}
	(*n).MarkDirty(scope)
	return true
}

// Group returns the retained group with the given id, or nil.
func (g *GUI) Group(id ID) *Group {
	n := g.nodes.GetIfExists(id)
	if n == nil {
		return nil
	}
	return *n
}

// Stats returns the pass counts of the last frame.
func (g *GUI) Stats() FrameStats {
	return g.stats
}

// Host returns the host the GUI runs on.
func (g *GUI) Host() Host {
	return g.host
}

// DrawList returns the default host's draw list, or nil with a custom host.
func (g *GUI) DrawList() *DrawList {
	if g.drawHost == nil {
		return nil
	}
	return g.drawHost.DrawList()
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}

// Close returns the draw list to the pool.
func (g *GUI) Close() {
	if g.drawHost != nil {
		ReleaseDrawList(g.drawHost.dl)
		g.drawHost.dl = nil
		g.drawHost = nil
	}
}
