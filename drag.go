package layout

import "log/slog"

// reorderDrag tracks a row being dragged to a new position.
type reorderDrag struct {
	active bool
	start  int     // row the drag started at
	held   float32 // top of the dragged row in content space
	slot   int     // pool slot of the dragged renderer
}

// beginReorder arms reordering for a pressed row. Nothing moves until the
// pointer crosses half a row.
func (lv *ListView[T, R]) beginReorder(row int) {
	if !lv.inWindow(row) {
		return
	}
	lv.reorder = reorderDrag{
		active: true,
		start:  row,
		held:   float32(row) * lv.rowHeight,
		slot:   lv.pool.slot(row - lv.pool.first),
	}
	lv.mode = ListReordering
}

// dragBy follows the pointer. One neighbour is checked per event, so a fast
// drag moves the row by at most one position per frame.
func (lv *ListView[T, R]) dragBy(dy float32) {
	d := &lv.reorder
	d.held += dy
	offset := d.held - float32(lv.active)*lv.rowHeight
	half := lv.rowHeight / 2
	switch {
	case offset > half && lv.inWindow(lv.active+1):
		lv.swapWith(lv.active + 1)
	case offset < -half && lv.active > 0 && lv.inWindow(lv.active-1):
		lv.swapWith(lv.active - 1)
	}
}

// swapWith moves the dragged renderer into row's slot. The slot of the
// active row and the dragged renderer stay in lockstep.
func (lv *ListView[T, R]) swapWith(row int) {
	s := lv.pool.slot(row - lv.pool.first)
	lv.pool.swap(lv.reorder.slot, s)
	lv.reorder.slot = s
	lv.active = row
}

// commitReorder ends the drag and moves the row in the data once.
func (lv *ListView[T, R]) commitReorder() {
	d := lv.reorder
	lv.reorder = reorderDrag{}
	lv.mode = ListBrowsing
	if !d.active || lv.active == d.start {
		return
	}
	from, to := d.start, lv.active
	lv.data.Move(from, to)
	clear(lv.selected)
	lv.selected[to] = struct{}{}
	lv.lastClickRow = -1
	lv.pool.invalidate()
	if verbose() {
		layoutLogger.Debug("list reorder", slog.String("list", lv.label), slog.Int("from", from), slog.Int("to", to))
	}
	if lv.OnReorder != nil {
		lv.OnReorder(from, to)
	}
}

// cancelReorder drops a drag without touching the data.
func (lv *ListView[T, R]) cancelReorder() {
	if !lv.reorder.active {
		return
	}
	lv.active = lv.reorder.start
	lv.reorder = reorderDrag{}
	lv.mode = ListBrowsing
	lv.pool.invalidate()
}

// DropAction is a list's answer to a drag-and-drop payload.
type DropAction uint8

const (
	DropReject DropAction = iota
	DropAccept
	DropLink
)

func (a DropAction) String() string {
	switch a {
	case DropAccept:
		return "accept"
	case DropLink:
		return "link"
	}
	return "reject"
}

// dropSession caches the validator's answer for one drag-and-drop session.
type dropSession struct {
	open    bool
	id      uint64 // Context.DragSession the answer belongs to
	action  DropAction
	hovered bool
}

// expireDrop forgets an answer cached for a session that has since ended,
// including sessions that ended while the list never saw the event.
func (lv *ListView[T, R]) expireDrop() {
	if lv.drop.open && lv.ctx != nil && lv.drop.id != lv.ctx.DragSession() {
		lv.drop = dropSession{}
	}
}

// handleDrop processes drag-and-drop events. The validator runs on the first
// event of a session that reaches the list. A drop or an exit ends the
// session whether or not the pointer is over the list.
func (lv *ListView[T, R]) handleDrop(ctx *Context, ev *Event, over bool) {
	if ev.Kind == EventDragExited || (ev.Kind == EventDragPerform && !over) {
		lv.drop = dropSession{}
		return
	}
	lv.drop.hovered = over
	if !over {
		return
	}
	if !lv.drop.open {
		lv.drop.open = true
		lv.drop.id = ctx.DragSession()
		lv.drop.action = DropReject
		if lv.ValidateDrop != nil && ev.Payload != nil {
			lv.drop.action = lv.ValidateDrop(ev.Payload)
		}
	}
	if ev.Kind == EventDragPerform {
		action := lv.drop.action
		lv.drop = dropSession{}
		if action != DropReject && lv.AcceptDrop != nil && ev.Payload != nil {
			lv.AcceptDrop(ev.Payload, lv.data)
			lv.pool.invalidate()
		}
	}
	ev.Use()
}

// DropAction returns the cached answer of the current drag session and
// whether a session is open.
func (lv *ListView[T, R]) DropAction() (DropAction, bool) {
	lv.expireDrop()
	return lv.drop.action, lv.drop.open
}

func (lv *ListView[T, R]) drawDropHint(ctx *Context, g *Group) {
	if !lv.drop.open || !lv.drop.hovered {
		return
	}
	st := ctx.Style()
	color := st.DropRejectColor
	switch lv.drop.action {
	case DropAccept:
		color = st.DropAcceptColor
	case DropLink:
		color = st.DropLinkColor
	}
	ctx.StrokeRect(g.ChildVisibleRect(), color, 2)
}
