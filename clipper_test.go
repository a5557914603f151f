package layout

import (
	"slices"
	"testing"
)

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		stride, view float32
		pos          float32
		want         ListWindow
	}{
		{"empty", 0, 20, 200, 0, ListWindow{}},
		{"top", 100, 20, 200, 0, ListWindow{First: 0, Count: 11, Offset: 0}},
		{"bottom", 100, 20, 200, 1, ListWindow{First: 90, Count: 10, Offset: 1800}},
		{"short list", 5, 20, 200, 0.5, ListWindow{First: 0, Count: 5, Offset: 0}},
		{"row boundary", 100, 20, 200, 0.5, ListWindow{First: 45, Count: 11, Offset: 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Window(tt.n, tt.stride, tt.view, tt.pos); got != tt.want {
				t.Errorf("Window = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Every row that reaches into the viewport is inside the window once the
// count is clamped to the pool size.
func TestWindowCoversViewport(t *testing.T) {
	const (
		n      = 64
		stride = float32(16)
		view   = float32(128)
	)
	pool := PoolSize(stride, view)
	for k := 0; k <= 64; k++ {
		pos := float32(k) / 64
		w := Window(n, stride, view, pos)
		count := min(w.Count, pool)
		if w.First+w.Count > n {
			t.Fatalf("pos %v: window %+v runs past %d rows", pos, w, n)
		}
		for i := range n {
			top := float32(i) * stride
			needed := top < w.Offset+view && top+stride > w.Offset
			inside := i >= w.First && i < w.First+count
			if needed && !inside {
				t.Fatalf("pos %v: row %d is visible but outside %+v (pool %d)", pos, i, w, pool)
			}
		}
	}
}

func TestPoolSize(t *testing.T) {
	if got := PoolSize(20, 200); got != 11 {
		t.Errorf("PoolSize(20, 200) = %d, want 11", got)
	}
	if got := PoolSize(30, 200); got != 8 {
		t.Errorf("PoolSize(30, 200) = %d, want 8", got)
	}
	if got := PoolSize(20, 0); got != 1 {
		t.Errorf("PoolSize without a viewport = %d, want 1", got)
	}
}

func TestRowPoolRotation(t *testing.T) {
	made := 0
	p := newRowPool(4, func() int { made++; return made })
	if made != 4 || p.size() != 4 {
		t.Fatalf("expected 4 renderers, made %d", made)
	}

	slots, full := p.scroll(0)
	if !full || !slices.Equal(slots, []int{0, 1, 2, 3}) {
		t.Fatalf("first scroll should rebind everything, got %v full=%v", slots, full)
	}

	slots, full = p.scroll(1)
	if full || !slices.Equal(slots, []int{0}) {
		t.Fatalf("one row down should rebind slot 0, got %v full=%v", slots, full)
	}
	if got := p.rowOf(0); got != 4 {
		t.Errorf("recycled slot shows row %d, want 4", got)
	}
	if got := p.slot(0); got != 1 {
		t.Errorf("first window row lives in slot %d, want 1", got)
	}

	slots, full = p.scroll(0)
	if full || !slices.Equal(slots, []int{0}) {
		t.Fatalf("one row up should rebind slot 0, got %v full=%v", slots, full)
	}
	if got := p.rowOf(0); got != 0 {
		t.Errorf("slot 0 shows row %d, want 0", got)
	}

	if slots, _ := p.scroll(0); slots != nil {
		t.Errorf("unchanged window rebinds %v", slots)
	}

	p.scroll(1)
	head := p.head
	_, full = p.scroll(9)
	if !full || p.head != head {
		t.Errorf("a jump rebinds everything and keeps the rotation, full=%v head %d->%d", full, head, p.head)
	}

	p.invalidate()
	if _, full := p.scroll(9); !full {
		t.Error("invalidated pool should rebind everything")
	}
}

func TestRowPoolSwap(t *testing.T) {
	made := 0
	p := newRowPool(3, func() int { made++; return made })
	p.scroll(0)
	p.bound = []int{0, 1, 2}

	p.swap(0, 2)
	if p.slots[0] != 3 || p.slots[2] != 1 {
		t.Errorf("renderers not swapped: %v", p.slots)
	}
	if !slices.Equal(p.bound, []int{2, 1, 0}) {
		t.Errorf("bindings not swapped: %v", p.bound)
	}
}
