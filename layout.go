package layout

import "log/slog"

// GroupKind selects the sizing rule of a group.
type GroupKind uint8

const (
	KindVertical   GroupKind = iota // children stack top to bottom
	KindHorizontal                  // children stack left to right
	KindFlexible                    // horizontal, automatic widths share the remaining space
	KindScroll                      // vertical inside a scrolling viewport
	KindTree                        // vertical with per-depth indentation and connectors
)

var groupKindNames = [...]string{
	KindVertical:   "vertical",
	KindHorizontal: "horizontal",
	KindFlexible:   "flexible",
	KindScroll:     "scroll",
	KindTree:       "tree",
}

func (k GroupKind) String() string {
	if int(k) < len(groupKindNames) {
		return groupKindNames[k]
	}
	return "unknown"
}

// CacheState records whether a group's last measurement can be reused.
// Values are ordered: a larger state is a stronger invalidation.
type CacheState uint8

const (
	Cached      CacheState = iota // reuse the last measured size, skip the body
	NodeRebuild                   // re-run the body, cached children keep their sizes
	FullRebuild                   // re-run the body and every descendant
)

var cacheStateNames = [...]string{
	Cached:      "cached",
	NodeRebuild: "node-rebuild",
	FullRebuild: "full-rebuild",
}

func (c CacheState) String() string {
	if int(c) < len(cacheStateNames) {
		return cacheStateNames[c]
	}
	return "unknown"
}

// groupConfig is the per-call configuration of a group. It is compared
// against last frame's value to detect changes.
type groupConfig struct {
	Width, Height float32

	Gap     float32
	Margin  Insets
	Border  Insets
	Padding Insets
	Clip    bool

	gapSet, marginSet, borderSet, paddingSet, clipSet bool

	NoCache bool
}

// GroupOption configures a group.
type GroupOption func(*groupConfig)

// Width sets the outer width of the group. Zero or less fills the width the
// parent offers.
func Width(w float32) GroupOption {
	return func(c *groupConfig) { c.Width = w }
}

// Height sets the outer height of the group. For scroll groups this is the
// viewport height.
func Height(h float32) GroupOption {
	return func(c *groupConfig) { c.Height = h }
}

// Size sets both outer dimensions.
func Size(w, h float32) GroupOption {
	return func(c *groupConfig) {
		c.Width = w
		c.Height = h
	}
}

// Gap sets the space between entries.
func Gap(pixels float32) GroupOption {
	return func(c *groupConfig) {
		c.Gap = pixels
		c.gapSet = true
	}
}

// Padding sets uniform inner padding.
func Padding(pixels float32) GroupOption {
	return PaddingBox(Uniform(pixels))
}

// PaddingBox sets inner padding per side.
func PaddingBox(in Insets) GroupOption {
	return func(c *groupConfig) {
		c.Padding = in
		c.paddingSet = true
	}
}

// Margin sets the outer margin.
func Margin(in Insets) GroupOption {
	return func(c *groupConfig) {
		c.Margin = in
		c.marginSet = true
	}
}

// Border sets the border widths.
func Border(in Insets) GroupOption {
	return func(c *groupConfig) {
		c.Border = in
		c.borderSet = true
	}
}

// Clip makes children draw in a clip scope whose origin is the top-left of
// the content rectangle.
func Clip(on bool) GroupOption {
	return func(c *groupConfig) {
		c.Clip = on
		c.clipSet = true
	}
}

// NoCache re-runs the group body in every measurement pass.
func NoCache() GroupOption {
	return func(c *groupConfig) { c.NoCache = true }
}

func applyGroupOptions(opts []GroupOption) groupConfig {
	var c groupConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// entryRequest is what a child asks its parent for during interaction.
type entryRequest struct {
	size  Vec2
	auto  bool // width <= 0: the parent decides
	group bool
}

// groupStrategy holds the kind-specific parts of the group protocol.
type groupStrategy interface {
	// register accumulates count entries of w x h during measurement.
	register(g *Group, w, h float32, count int, auto bool)
	// finalize returns the content size once every entry is registered.
	finalize(g *Group) Vec2
	// arrange prepares the child space once the content rect is known.
	arrange(g *Group)
	// place returns the child-space rect of the next entry and advances the
	// cursor.
	place(g *Group, req entryRequest) Rect
	// finish runs after the children, with the clip scope closed.
	finish(g *Group)
	// guess sets a size for a group met in interaction without a
	// measurement. It reports false when the group cannot be laid out.
	guess(g *Group) bool
}

// Group is a retained layout node. A Group is created the first time its
// key is seen and lives as long as every frame visits it.
//
// Rects are in the parent's child space and are only meaningful between
// the group's Begin and End in the same pass.
type Group struct {
	id       ID
	label    string
	kind     GroupKind
	strategy groupStrategy
	cfg      groupConfig
	style    GroupStyle

	ctx      *Context
	parent   *Group
	children map[ID]*Group
	keys     keyScope
	depth    int // number of ancestor tree groups

	cache        CacheState
	measuredPass uint64
	measured     bool // at least one measurement completed
	active       bool
	phase        Phase
	skip         bool // body skipped in this pass

	// Measurement
	accum     Vec2
	entries   int
	fixedW    float32
	flexCount int
	avail     float32 // content width offered by the parent
	size      Vec2    // outer size registered with the parent
	empty     bool
	autoWidth bool

	// Interaction
	valid        bool
	guessed      bool // interaction without a measurement this frame
	clipped      bool
	container    Rect
	visible      Rect
	content      Rect
	inner        Rect // content in child space
	childVisible Rect // visible part of the content in child space
	childOrigin  Vec2 // child-space origin in parent space
	start        Vec2
	cursor       Vec2
	placed       int
	flexW        float32
	indent       float32

	scroll *ScrollState
	tree   *treeState
}

func newGroup(ctx *Context, id ID, label string, kind GroupKind, cfg groupConfig) *Group {
	g := &Group{
		id:       id,
		label:    label,
		ctx:      ctx,
		children: make(map[ID]*Group),
		cache:    FullRebuild,
	}
	g.setKind(kind, cfg)
	return g
}

// setKind installs the strategy and resolves the box model.
func (g *Group) setKind(kind GroupKind, cfg groupConfig) {
	g.kind = kind
	g.cfg = cfg
	switch kind {
	case KindHorizontal:
		g.strategy = linearStrategy{axis: AxisX}
	case KindFlexible:
		g.strategy = flexibleStrategy{linearStrategy{axis: AxisX}}
	case KindScroll:
		g.strategy = scrollStrategy{linearStrategy{axis: AxisY}}
		if g.scroll == nil {
			g.scroll = &ScrollState{}
		}
	case KindTree:
		g.strategy = treeStrategy{linearStrategy{axis: AxisY}}
		if g.tree == nil {
			g.tree = &treeState{}
		}
	default:
		g.strategy = linearStrategy{axis: AxisY}
	}
	g.resolveStyle()
}

func (g *Group) resolveStyle() {
	st := g.ctx.Style().Group(g.kind)
	c := g.cfg
	if c.gapSet {
		st.Gap = c.Gap
	}
	if c.marginSet {
		st.Margin = c.Margin
	}
	if c.borderSet {
		st.Border = c.Border
	}
	if c.paddingSet {
		st.Padding = c.Padding
	}
	if c.clipSet {
		st.Clip = c.Clip
	}
	if g.kind == KindScroll {
		st.Clip = true
	}
	g.style = st
	g.indent = 0
	if g.kind == KindTree {
		g.indent = g.ctx.Style().TreeIndent
	}
}

// ID returns the group's stable key.
func (g *Group) ID() ID { return g.id }

// Kind returns the group's kind.
func (g *Group) Kind() GroupKind { return g.kind }

// Label returns the caller-supplied key label.
func (g *Group) Label() string { return g.label }

// CacheState returns the group's cache flag.
func (g *Group) CacheState() CacheState { return g.cache }

// MeasuredSize returns the outer size from the last measurement.
func (g *Group) MeasuredSize() Vec2 { return g.size }

// Entries returns the number of entries registered in the last measurement.
func (g *Group) Entries() int { return g.entries }

// Valid reports whether the group received room in this interaction pass.
func (g *Group) Valid() bool { return g.valid }

// ContainerRect returns the rect assigned by the parent.
func (g *Group) ContainerRect() Rect { return g.container }

// VisibleRect returns the container clipped to the parent's visible area.
func (g *Group) VisibleRect() Rect { return g.visible }

// ContentRect returns the container inset by margin, border and padding.
func (g *Group) ContentRect() Rect { return g.content }

// InnerRect returns the content area in the space children are placed in.
func (g *Group) InnerRect() Rect { return g.inner }

// ChildVisibleRect returns the region entries are culled against, in the
// space children are placed in.
func (g *Group) ChildVisibleRect() Rect { return g.childVisible }

// Parent returns the group that enclosed this one at its last Begin.
func (g *Group) Parent() *Group { return g.parent }

func (g *Group) checkScope(op string) {
	if !g.active || g.ctx.current != g {
		protocolPanic("%s on %s group %q outside its Begin/End scope", op, g.kind, g.label)
	}
}

// RegisterEntry records an entry during measurement.
func (g *Group) RegisterEntry(w, h float32) {
	g.RegisterEntries(w, h, 1)
}

// RegisterEntries records count equal entries during measurement.
func (g *Group) RegisterEntries(w, h float32, count int) {
	g.checkScope("RegisterEntries")
	if g.phase != PhaseMeasurement {
		protocolPanic("RegisterEntries on %s group %q during %s", g.kind, g.label, g.phase)
	}
	if count <= 0 {
		return
	}
	if w <= 0 {
		g.strategy.register(g, 0, h, count, true)
		return
	}
	g.strategy.register(g, w, h, count, false)
}

// GetRect returns the rect of the next entry. Measurement registers the entry
// and returns InvalidRect. Interaction returns InvalidRect for entries
// entirely outside the visible region.
func (g *Group) GetRect(w, h float32) Rect {
	g.checkScope("GetRect")
	if g.phase == PhaseMeasurement {
		g.RegisterEntry(w, h)
		return InvalidRect
	}
	return g.placeEntry(entryRequest{size: Vec2{X: max(w, 0), Y: h}, auto: w <= 0}, 1)
}

// GetRects is the interaction counterpart of RegisterEntries. It returns the
// rect of the whole block of count entries.
func (g *Group) GetRects(w, h float32, count int) Rect {
	g.checkScope("GetRects")
	if g.phase == PhaseMeasurement {
		g.RegisterEntries(w, h, count)
		return InvalidRect
	}
	if count <= 0 {
		return InvalidRect
	}
	var block Vec2
	if g.kind == KindHorizontal || g.kind == KindFlexible {
		block = Vec2{X: max(w, 0)*float32(count) + g.style.Gap*float32(count-1), Y: h}
	} else {
		block = Vec2{X: max(w, 0), Y: h*float32(count) + g.style.Gap*float32(count-1)}
	}
	return g.placeEntry(entryRequest{size: block, auto: w <= 0}, count)
}

func (g *Group) placeEntry(req entryRequest, count int) Rect {
	g.placed += count
	if !g.valid {
		return InvalidRect
	}
	return g.cull(g.strategy.place(g, req))
}

// cull keeps a rect only if it reaches into the visible region: its far edge
// is past the visible near edge and its near edge is not past the visible
// far edge, on both axes.
func (g *Group) cull(r Rect) Rect {
	v := g.childVisible
	if !r.Valid() || !v.Valid() {
		return InvalidRect
	}
	for _, a := range [2]Axis{AxisX, AxisY} {
		if r.Far(a) <= v.Near(a) || r.Near(a) > v.Far(a) {
			return InvalidRect
		}
	}
	return r
}

// MarkDirty invalidates the group. The group takes at least scope and every
// ancestor is marked NodeRebuild so it re-pulls this group's size.
func (g *Group) MarkDirty(scope CacheState) {
	if scope == Cached {
		return
	}
	if scope > g.cache {
		g.cache = scope
	}
	for p := g.parent; p != nil; p = p.parent {
		if p.cache == Cached {
			p.cache = NodeRebuild
		}
	}
}

// retain keeps a skipped subtree alive and, in measurement, marks it as
// measured in this pass.
func (g *Group) retain(measured bool) {
	ctx := g.ctx
	for id, c := range g.children {
		ctx.gui.nodes.Touch(ctx.frame, id)
		if measured {
			c.measuredPass = ctx.measurePass
		}
		c.retain(measured)
	}
}

func (g *Group) beginMeasurement() bool {
	ctx := g.ctx
	p := g.parent

	g.skip = false
	if (p != nil && p.cache == FullRebuild) || (p == nil && ctx.forceFull) {
		g.cache = FullRebuild
	}
	if g.cfg.NoCache && g.cache == Cached {
		g.cache = NodeRebuild
	}
	if g.cache == FullRebuild {
		g.resolveStyle()
	}

	avail := ctx.availableWidth(p)
	if g.cfg.Width > 0 {
		avail = g.cfg.Width
	}
	avail -= g.style.insets().Horizontal()
	if g.measured && avail != g.avail {
		g.cache = FullRebuild
	}

	if g.cache == Cached && g.measured {
		g.skip = true
		g.retain(true)
		return false
	}

	if verbose() {
		layoutLogger.Debug("measure",
			slog.String("group", g.label),
			slog.String("kind", g.kind.String()),
			slog.String("cache", g.cache.String()))
	}
	// Children re-register as the body runs; the ones it drops are left to
	// the frame store.
	clear(g.children)
	g.avail = avail
	g.accum = Vec2{}
	g.entries = 0
	g.fixedW = 0
	g.flexCount = 0
	return true
}

func (g *Group) endMeasurement() {
	ctx := g.ctx
	if !g.skip {
		if g.entries == 0 {
			g.size = Vec2{}
			g.empty = true
		} else {
			g.size = g.strategy.finalize(g).Add(g.style.insets().Size())
			if g.cfg.Width > 0 {
				g.size.X = g.cfg.Width
			}
			if g.cfg.Height > 0 {
				g.size.Y = g.cfg.Height
			}
			g.empty = false
		}
		g.cache = Cached
		g.measured = true
	}
	g.measuredPass = ctx.measurePass
	g.autoWidth = g.cfg.Width <= 0

	// Empty groups take no space and never reach the parent.
	if g.empty {
		return
	}
	if p := g.parent; p != nil {
		p.strategy.register(p, g.size.X, g.size.Y, 1, g.autoWidth)
		return
	}
	w := g.size.X
	if g.autoWidth {
		w = 0
	}
	ctx.host.FallbackRect(PhaseMeasurement, w, g.size.Y)
}

func (g *Group) failClosed() bool {
	g.valid = false
	g.skip = true
	g.retain(false)
	return false
}

func (g *Group) beginInteraction() bool {
	ctx := g.ctx
	g.placed = 0
	g.valid = false
	g.guessed = false
	g.clipped = false

	if g.measuredPass != ctx.measurePass {
		if !g.strategy.guess(g) {
			ctx.RequestRelayout("group " + g.label + " was not measured")
			return g.failClosed()
		}
		g.guessed = true
	}
	if g.empty && !g.guessed {
		return g.failClosed()
	}
	if ctx.eventUsed() {
		return g.failClosed()
	}

	var r Rect
	var parentVisible Rect
	if p := g.parent; p != nil {
		r = p.placeEntry(entryRequest{size: g.size, auto: g.autoWidth, group: true}, 1)
		parentVisible = p.childVisible
	} else {
		w := g.size.X
		if g.autoWidth {
			w = 0
		}
		r = ctx.host.FallbackRect(PhaseInteraction, w, g.size.Y)
		parentVisible = Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	}
	if !r.Valid() {
		return g.failClosed()
	}
	g.container = r
	g.visible = r.Intersect(parentVisible)
	g.content = r.Inset(g.style.insets())
	if !g.visible.Valid() || !g.content.Valid() {
		return g.failClosed()
	}
	g.valid = true
	g.drawFrame()

	g.strategy.arrange(g)
	if g.style.Clip {
		clip := g.content
		if g.scroll != nil && g.kind == KindScroll {
			clip = g.scroll.viewportRect(g)
		}
		ctx.host.PushClip(clip)
		g.clipped = true
	}
	g.cursor = g.start
	g.skip = false
	return true
}

// drawFrame paints the background and border of the container.
func (g *Group) drawFrame() {
	ctx := g.ctx
	if !ctx.Drawing() {
		return
	}
	box := g.container.Inset(g.style.Margin)
	if g.style.Background != 0 {
		ctx.host.FillRect(box, g.style.Background)
	}
	b := g.style.Border
	if g.style.BorderColor != 0 && (b.Left > 0 || b.Top > 0 || b.Right > 0 || b.Bottom > 0) {
		ctx.host.FillRect(Rect{X: box.X, Y: box.Y, W: box.W, H: b.Top}, g.style.BorderColor)
		ctx.host.FillRect(Rect{X: box.X, Y: box.Y + box.H - b.Bottom, W: box.W, H: b.Bottom}, g.style.BorderColor)
		ctx.host.FillRect(Rect{X: box.X, Y: box.Y, W: b.Left, H: box.H}, g.style.BorderColor)
		ctx.host.FillRect(Rect{X: box.X + box.W - b.Right, Y: box.Y, W: b.Right, H: box.H}, g.style.BorderColor)
	}
}

func (g *Group) endInteraction() {
	ctx := g.ctx
	if g.clipped {
		ctx.host.PopClip()
		g.clipped = false
	}
	if !g.valid {
		return
	}
	g.strategy.finish(g)

	// The body placed a different number of entries than it registered:
	// the cached measurement is stale.
	if !g.skip && !g.guessed && !ctx.eventUsed() && g.placed != g.entries {
		if verbose() {
			layoutLogger.Debug("entry count changed", slog.String("group", g.label), slog.Int("measured", g.entries), slog.Int("placed", g.placed))
		}
		g.MarkDirty(FullRebuild)
		ctx.RequestRelayout("group " + g.label + " changed its entries")
	}
}
