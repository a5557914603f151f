package layout

// ListWindow is the range of rows a virtualized list binds for one scroll
// position.
type ListWindow struct {
	First  int     // first row reaching into the viewport
	Count  int     // rows from First that may be visible
	Offset float32 // content offset in pixels
}

// Window computes the visible rows of n rows of height stride in a
// viewport of height view scrolled to the normalized position pos.
//
//	w := layout.Window(len(items), 20, 200, scroll.Position().Y)
//	for i := w.First; i < w.First+w.Count; i++ {
//		// row i starts at float32(i)*20 - w.Offset
//	}
//
// First is the row covering Offset; a row ending exactly at Offset is
// skipped. First+Count never exceeds n.
func Window(n int, stride, view, pos float32) ListWindow {
	if n <= 0 || stride <= 0 {
		return ListWindow{}
	}
	total := float32(n) * stride
	offset := max(total-view, 0) * clamp01(pos)

	first := int(floorf(offset / stride))
	if float32(first+1)*stride <= offset {
		first++
	}
	first = min(max(first, 0), n-1)

	count := int(ceilf((view+offset)/stride)) - first + 1
	count = min(max(count, 0), n-first)
	return ListWindow{First: first, Count: count, Offset: offset}
}

// PoolSize returns the number of row renderers a list with a viewport of
// view needs: every row that fits, plus one for the partial row exposed by a
// fractional scroll offset.
func PoolSize(stride, view float32) int {
	if stride <= 0 || view <= 0 {
		return 1
	}
	return int(ceilf(view/stride)) + 1
}

// rowPool is a fixed ring of renderers. Slot head holds row first; the
// i-th visible row lives in slot (head+i) % len(slots).
type rowPool[R any] struct {
	slots []R
	bound []int // logical index bound to each slot, -1 when unbound
	head  int
	first int
	valid bool
}

func newRowPool[R any](size int, factory func() R) rowPool[R] {
	p := rowPool[R]{
		slots: make([]R, size),
		bound: make([]int, size),
	}
	for i := range p.slots {
		p.slots[i] = factory()
		p.bound[i] = -1
	}
	return p
}

func (p *rowPool[R]) size() int { return len(p.slots) }

// slot returns the slot of the i-th row of the window.
func (p *rowPool[R]) slot(i int) int {
	return (p.head + i) % len(p.slots)
}

// scroll moves the window to first and returns the slots that need a new
// binding. A step of one row rotates the ring and rebinds one slot; any
// other change rebinds every slot.
func (p *rowPool[R]) scroll(first int) (slots []int, full bool) {
	n := len(p.slots)
	switch {
	case p.valid && first == p.first:
		return nil, false
	case p.valid && first == p.first+1:
		old := p.head
		p.head = (p.head + 1) % n
		p.first = first
		return []int{old}, false
	case p.valid && first == p.first-1:
		p.head = (p.head - 1 + n) % n
		p.first = first
		return []int{p.head}, false
	}
	// The ring keeps its rotation so slots handed out before the rebind
	// still show the same window positions.
	p.first = first
	p.valid = true
	slots = make([]int, n)
	for i := range slots {
		slots[i] = i
	}
	return slots, true
}

// rowOf returns the logical row a slot represents in the current window.
func (p *rowPool[R]) rowOf(slot int) int {
	n := len(p.slots)
	return p.first + (slot-p.head+n)%n
}

// swap exchanges the renderers of two slots.
func (p *rowPool[R]) swap(a, b int) {
	p.slots[a], p.slots[b] = p.slots[b], p.slots[a]
	p.bound[a], p.bound[b] = p.bound[b], p.bound[a]
}

func (p *rowPool[R]) invalidate() {
	p.valid = false
}
