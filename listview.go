package layout

import (
	"log/slog"
	"maps"
	"slices"
)

// DoubleClickTime is the longest gap, in seconds, between two clicks on the
// same row that still counts as a double click.
const DoubleClickTime = 0.25

// RowRenderer draws the rows of a ListView. Renderers are pooled: Bind is
// called each time a renderer starts showing a different row or the row's
// selection changes, Draw once per repaint while the row is visible.
type RowRenderer[T any] interface {
	Bind(item T, index int, selected bool)
	Draw(ctx *Context, r Rect)
}

// ListMode is the interaction mode of a list view.
type ListMode uint8

const (
	ListBrowsing   ListMode = iota
	ListReordering          // a pressed row follows the pointer
)

func (m ListMode) String() string {
	if m == ListReordering {
		return "reordering"
	}
	return "browsing"
}

// ListView is a virtualized list over a Sequence. Only the rows that reach
// into the viewport are bound to renderers; the renderer pool has a fixed
// size for the lifetime of the list.
//
//	seq := layout.NewSliceSequence(items)
//	lv := layout.NewListView("files", seq, func() *fileRow { return &fileRow{} },
//		layout.WithHeight(240))
//	lv.OnDoubleClick = func(i int) { open(seq.At(i)) }
//
//	// in the build function, every pass
//	lv.Draw(ctx)
type ListView[T any, R RowRenderer[T]] struct {
	label string
	data  Sequence[T]
	opts  ListOptions
	pool  rowPool[R]

	rowHeight   float32
	width       float32
	height      float32
	emptyIcon   string
	emptyLabel  string
	multiSelect bool
	reorderable bool

	mode     ListMode
	selected map[int]struct{}
	active   int
	reorder  reorderDrag
	drop     dropSession
	ctx      *Context // of the last Draw
	window   ListWindow
	boundLen int

	lastClick    float64
	lastClickRow int

	// OnSelectionChanged runs after every selection change with the
	// selected indices in ascending order.
	OnSelectionChanged func(selected []int)
	// OnDoubleClick runs when the same row is clicked twice within
	// DoubleClickTime.
	OnDoubleClick func(index int)
	// OnReorder runs once per committed drag reorder, after the sequence
	// moved the row from from to to.
	OnReorder func(from, to int)
	// ValidateDrop decides once per drag session whether the payload may be
	// dropped. Without it every drop is rejected.
	ValidateDrop func(p *DragPayload) DropAction
	// AcceptDrop adds an accepted payload to the data.
	AcceptDrop func(p *DragPayload, data Sequence[T])
}

// NewListView creates a list view showing data. newRenderer must not be
// nil; it is called once per pool slot.
func NewListView[T any, R RowRenderer[T]](label string, data Sequence[T], newRenderer func() R, opts ...Option) *ListView[T, R] {
	if newRenderer == nil {
		protocolPanic("list view %q has no row renderer factory", label)
	}
	if data == nil {
		protocolPanic("list view %q has no data", label)
	}
	o := collectOptions(opts)
	lv := &ListView[T, R]{
		label:        label,
		data:         data,
		opts:         o,
		rowHeight:    GetOpt(o, OptRowHeight),
		width:        GetOpt(o, OptWidth),
		height:       GetOpt(o, OptHeight),
		emptyIcon:    GetOpt(o, OptEmptyIcon),
		emptyLabel:   GetOpt(o, OptEmptyLabel),
		multiSelect:  GetOpt(o, OptMultiSelect),
		reorderable:  GetOpt(o, OptReorderable),
		selected:     make(map[int]struct{}),
		active:       -1,
		boundLen:     data.Len(),
		lastClick:    -1,
		lastClickRow: -1,
	}
	if lv.rowHeight <= 0 {
		lv.rowHeight = DefaultStyle().RowHeight
	}
	if lv.height <= 0 {
		lv.height = lv.rowHeight * 10
	}
	lv.pool = newRowPool(PoolSize(lv.rowHeight, lv.height), newRenderer)
	return lv
}

// Options returns the options the list was created with.
func (lv *ListView[T, R]) Options() ListOptions { return lv.opts }

// Data returns the sequence the list shows.
func (lv *ListView[T, R]) Data() Sequence[T] { return lv.data }

// Mode returns the interaction mode.
func (lv *ListView[T, R]) Mode() ListMode { return lv.mode }

// Active returns the index of the active row, or -1.
func (lv *ListView[T, R]) Active() int { return lv.active }

// Window returns the rows bound in the last pass.
func (lv *ListView[T, R]) Window() ListWindow { return lv.window }

// PoolSize returns the number of pooled renderers.
func (lv *ListView[T, R]) PoolSize() int { return lv.pool.size() }

// RowHeight returns the height of a row.
func (lv *ListView[T, R]) RowHeight() float32 { return lv.rowHeight }

// Selection returns the selected indices in ascending order.
func (lv *ListView[T, R]) Selection() []int {
	return slices.Sorted(maps.Keys(lv.selected))
}

// IsSelected reports whether row i is selected.
func (lv *ListView[T, R]) IsSelected(i int) bool {
	_, ok := lv.selected[i]
	return ok
}

// SetSelection replaces the selection. The last index becomes active.
// OnSelectionChanged is not called.
func (lv *ListView[T, R]) SetSelection(indices ...int) {
	lv.cancelReorder()
	clear(lv.selected)
	lv.active = -1
	n := lv.data.Len()
	for _, i := range indices {
		if i >= 0 && i < n {
			lv.selected[i] = struct{}{}
			lv.active = i
		}
	}
	lv.pool.invalidate()
}

// DeleteSelected removes every selected row from the data and returns how
// many were removed.
func (lv *ListView[T, R]) DeleteSelected() int {
	sel := lv.Selection()
	if len(sel) == 0 {
		return 0
	}
	for i := len(sel) - 1; i >= 0; i-- {
		lv.data.RemoveAt(sel[i])
	}
	lv.cancelReorder()
	clear(lv.selected)
	lv.active = -1
	lv.pool.invalidate()
	lv.selectionChanged()
	return len(sel)
}

// DeleteAll clears the data and the selection.
func (lv *ListView[T, R]) DeleteAll() {
	had := len(lv.selected) > 0
	lv.data.Clear()
	lv.cancelReorder()
	clear(lv.selected)
	lv.active = -1
	lv.pool.invalidate()
	if had {
		lv.selectionChanged()
	}
}

// Draw lays the list out as a scroll group named after the list. Call it in
// every pass of every frame, like any other group.
func (lv *ListView[T, R]) Draw(ctx *Context) {
	lv.ctx = ctx
	lv.expireDrop()
	ctx.Scroll(lv.label, Size(lv.width, lv.height), Gap(0))(func() {
		lv.body(ctx, ctx.CurrentGroup())
	})
}

func (lv *ListView[T, R]) body(ctx *Context, g *Group) {
	n := lv.data.Len()
	if ctx.Measuring() {
		if n == 0 {
			g.RegisterEntry(-1, lv.rowHeight)
			return
		}
		g.RegisterEntries(-1, lv.rowHeight, n)
		return
	}

	if n != lv.boundLen {
		lv.lengthChanged(g, n)
	}

	if n == 0 {
		g.GetRect(-1, lv.rowHeight)
		lv.window = ListWindow{}
		if !ctx.Drawing() {
			lv.handleEvent(ctx, g, InvalidRect)
			return
		}
		lv.drawEmpty(ctx, g)
		lv.drawDropHint(ctx, g)
		return
	}

	block := g.GetRects(-1, lv.rowHeight, n)
	if !block.Valid() {
		return
	}
	sc := g.Scroll()
	w := Window(n, lv.rowHeight, sc.Viewport().Y, sc.Position().Y)
	w.Count = min(w.Count, lv.pool.size())
	lv.sync(w)

	if !ctx.Drawing() {
		lv.handleEvent(ctx, g, block)
		return
	}
	lv.drawRows(ctx, g, block)
	lv.drawDropHint(ctx, g)
}

// lengthChanged handles a sequence that grew or shrank since the last bind.
func (lv *ListView[T, R]) lengthChanged(g *Group, n int) {
	if verbose() {
		layoutLogger.Debug("list length changed",
			slog.String("list", lv.label),
			slog.Int("bound", lv.boundLen),
			slog.Int("len", n))
	}
	lv.boundLen = n
	lv.cancelReorder()
	for i := range lv.selected {
		if i >= n {
			delete(lv.selected, i)
		}
	}
	if lv.active >= n {
		lv.active = n - 1
	}
	lv.pool.invalidate()
	g.MarkDirty(FullRebuild)
}

// sync moves the pool to the window and binds the slots that changed rows.
func (lv *ListView[T, R]) sync(w ListWindow) {
	if lv.reorder.active && w.First != lv.window.First {
		lv.cancelReorder()
	}
	lv.window = w
	slots, full := lv.pool.scroll(w.First)
	for _, s := range slots {
		lv.bind(s)
	}
	if full && verbose() {
		layoutLogger.Debug("list rebind",
			slog.String("list", lv.label),
			slog.Int("first", w.First),
			slog.Int("count", w.Count))
	}
}

func (lv *ListView[T, R]) bind(slot int) {
	row := lv.pool.rowOf(slot)
	if row >= lv.data.Len() {
		lv.pool.bound[slot] = -1
		return
	}
	lv.pool.bound[slot] = row
	lv.pool.slots[slot].Bind(lv.data.At(row), row, lv.IsSelected(row))
}

// inWindow reports whether row is in the window of the last sync.
func (lv *ListView[T, R]) inWindow(row int) bool {
	k := row - lv.window.First
	return k >= 0 && k < lv.window.Count && row < lv.data.Len()
}

func (lv *ListView[T, R]) rowRect(block Rect, i int) Rect {
	return Rect{X: block.X, Y: block.Y + float32(i)*lv.rowHeight, W: block.W, H: lv.rowHeight}
}

// rowAt returns the row under p, or -1.
func (lv *ListView[T, R]) rowAt(block Rect, p Vec2) int {
	if !block.Valid() || !block.Contains(p) {
		return -1
	}
	i := int((p.Y - block.Y) / lv.rowHeight)
	if i < 0 || i >= lv.data.Len() {
		return -1
	}
	return i
}

func (lv *ListView[T, R]) drawRows(ctx *Context, g *Group, block Rect) {
	vis := g.ChildVisibleRect()
	focused := ctx.Host().KeyboardControl() == g.ID()
	w := lv.window
	for k := range w.Count {
		i := w.First + k
		if lv.reorder.active && i == lv.active {
			continue
		}
		r := lv.rowRect(block, i)
		if !r.Intersects(vis) {
			continue
		}
		lv.drawRow(ctx, lv.pool.slot(k), r, i == lv.active && focused)
	}
	if lv.reorder.active {
		r := lv.rowRect(block, 0)
		r.Y = block.Y + clampf(lv.reorder.held, 0, block.H-lv.rowHeight)
		lv.drawRow(ctx, lv.reorder.slot, r, true)
	}
}

func (lv *ListView[T, R]) drawRow(ctx *Context, slot int, r Rect, active bool) {
	st := ctx.Style()
	row := lv.pool.bound[slot]
	if row < 0 {
		return
	}
	switch {
	case lv.IsSelected(row):
		ctx.FillRect(r, st.SelectedBgColor)
	case row%2 == 1:
		ctx.FillRect(r, st.RowBgAltColor)
	}
	if active {
		ctx.StrokeRect(r, st.ActiveRowColor, 1)
	}
	lv.pool.slots[slot].Draw(ctx, r)
}

// drawEmpty centers the icon above the label in the viewport.
func (lv *ListView[T, R]) drawEmpty(ctx *Context, g *Group) {
	st := ctx.Style()
	vis := g.ChildVisibleRect()
	if !vis.Valid() {
		return
	}
	icon := st.TextSize(lv.emptyIcon)
	label := st.TextSize(lv.emptyLabel)
	top := vis.Y + (vis.H-icon.Y-label.Y-SpaceSM)/2
	cx := vis.X + vis.W/2
	ctx.Text(Vec2{X: cx - icon.X/2, Y: top}, lv.emptyIcon, st.TextDisabledColor)
	ctx.Text(Vec2{X: cx - label.X/2, Y: top + icon.Y + SpaceSM}, lv.emptyLabel, st.TextDisabledColor)
}
