package layout

// handleEvent applies the pass's event to the list. block is the child-space
// rect of all rows, or InvalidRect for an empty list.
func (lv *ListView[T, R]) handleEvent(ctx *Context, g *Group, block Rect) {
	ev := ctx.Event()
	if ev.Used() {
		if ev.Kind == EventDragPerform || ev.Kind == EventDragExited {
			lv.drop = dropSession{}
		}
		return
	}
	host := ctx.Host()
	m := ctx.Mouse()
	over := g.ChildVisibleRect().Contains(m)

	switch ev.Kind {
	case EventMouseDown:
		if ev.Button != MouseButtonLeft || !over {
			return
		}
		host.SetKeyboardControl(g.ID())
		if row := lv.rowAt(block, m); row >= 0 {
			lv.click(ctx, row, ev)
		} else {
			lv.clearSelection()
		}
		ev.Use()
	case EventMouseDrag:
		if lv.reorder.active {
			lv.dragBy(ev.Delta.Y)
			ev.Use()
		}
	case EventMouseUp:
		if lv.reorder.active {
			lv.commitReorder()
			ev.Use()
		}
	case EventScrollWheel:
		// The pool window must not move under a held row.
		if lv.reorder.active {
			ev.Use()
		}
	case EventKeyDown:
		if host.KeyboardControl() == g.ID() {
			lv.key(g, ev)
		}
	case EventDragUpdated, EventDragPerform, EventDragExited:
		lv.handleDrop(ctx, ev, over)
	}
}

// click applies the selection rules for a press on row.
func (lv *ListView[T, R]) click(ctx *Context, row int, ev *Event) {
	switch {
	case ev.Ctrl && lv.multiSelect:
		if lv.IsSelected(row) {
			delete(lv.selected, row)
		} else {
			lv.selected[row] = struct{}{}
		}
		lv.active = row
		lv.lastClickRow = -1
		lv.selectionChanged()

	case ev.Shift && lv.multiSelect && lv.active >= 0:
		lo, hi := lv.active+1, row
		if row < lv.active {
			lo, hi = row, lv.active-1
		}
		for i := lo; i <= hi; i++ {
			lv.selected[i] = struct{}{}
		}
		lv.active = row
		lv.lastClickRow = -1
		lv.selectionChanged()

	default:
		now := ctx.Time
		if row == lv.lastClickRow && now-lv.lastClick <= DoubleClickTime {
			lv.lastClickRow = -1
			if lv.OnDoubleClick != nil {
				lv.OnDoubleClick(row)
			}
			return
		}
		lv.lastClick = now
		lv.lastClickRow = row
		lv.selectOnly(row)
		lv.selectionChanged()
		if lv.reorderable {
			lv.beginReorder(row)
		}
	}
}

func (lv *ListView[T, R]) key(g *Group, ev *Event) {
	n := lv.data.Len()
	switch ev.Key {
	case KeyDelete, KeyBackspace:
		if lv.DeleteSelected() == 0 {
			return
		}
	case KeyUp, KeyDown:
		if n == 0 {
			return
		}
		next := 0
		if lv.active >= 0 {
			next = lv.active + 1
			if ev.Key == KeyUp {
				next = lv.active - 1
			}
		}
		next = min(max(next, 0), n-1)
		lv.selectOnly(next)
		lv.selectionChanged()
		lv.scrollIntoView(g.Scroll(), next)
	case KeyA:
		if !ev.Ctrl || !lv.multiSelect || n == 0 {
			return
		}
		for i := range n {
			lv.selected[i] = struct{}{}
		}
		lv.selectionChanged()
	case KeyEscape:
		if len(lv.selected) == 0 {
			return
		}
		lv.clearSelection()
	default:
		return
	}
	ev.Use()
}

// scrollIntoView scrolls the least distance that shows row entirely.
func (lv *ListView[T, R]) scrollIntoView(sc *ScrollState, row int) {
	if sc == nil {
		return
	}
	top := float32(row) * lv.rowHeight
	off := sc.Offset().Y
	view := sc.Viewport().Y
	switch {
	case top < off:
		sc.ScrollTo(AxisY, top)
	case top+lv.rowHeight > off+view:
		sc.ScrollTo(AxisY, top+lv.rowHeight-view)
	}
}

func (lv *ListView[T, R]) selectOnly(row int) {
	clear(lv.selected)
	lv.selected[row] = struct{}{}
	lv.active = row
}

func (lv *ListView[T, R]) clearSelection() {
	if len(lv.selected) == 0 && lv.active < 0 {
		return
	}
	clear(lv.selected)
	lv.active = -1
	lv.selectionChanged()
}

// selectionChanged rebinds every row and notifies the caller.
func (lv *ListView[T, R]) selectionChanged() {
	lv.pool.invalidate()
	if lv.OnSelectionChanged != nil {
		lv.OnSelectionChanged(lv.Selection())
	}
}
