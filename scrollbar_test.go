package layout_test

import (
	"testing"

	"github.com/go-theft-auto/layout"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 0.01 && d > -0.01
}

func TestResolveScrollbars(t *testing.T) {
	tests := []struct {
		name         string
		content      layout.Vec2
		needH, needV bool
		viewport     layout.Vec2
	}{
		{"fits", layout.Vec2{X: 100, Y: 100}, false, false, layout.Vec2{X: 100, Y: 100}},
		{"vertical only", layout.Vec2{X: 50, Y: 200}, false, true, layout.Vec2{X: 90, Y: 100}},
		{"vertical bar forces horizontal", layout.Vec2{X: 95, Y: 200}, true, true, layout.Vec2{X: 90, Y: 90}},
		{"horizontal bar forces vertical", layout.Vec2{X: 200, Y: 95}, true, true, layout.Vec2{X: 90, Y: 90}},
		{"both", layout.Vec2{X: 200, Y: 200}, true, true, layout.Vec2{X: 90, Y: 90}},
	}
	view := layout.Vec2{X: 100, Y: 100}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needH, needV, vp := layout.ResolveScrollbars(tt.content, view, 10)
			if needH != tt.needH || needV != tt.needV || vp != tt.viewport {
				t.Errorf("got h=%v v=%v viewport=%+v, want h=%v v=%v viewport=%+v",
					needH, needV, vp, tt.needH, tt.needV, tt.viewport)
			}

			// Resolving again never flips a flag.
			h2, v2, vp2 := layout.ResolveScrollbars(tt.content, view, 10)
			if h2 != needH || v2 != needV || vp2 != vp {
				t.Error("second resolution differs from the first")
			}
			if needH != (tt.content.X > vp.X) || needV != (tt.content.Y > vp.Y) {
				t.Errorf("flags disagree with the reserved viewport %+v", vp)
			}
		})
	}
}

func TestThumbLength(t *testing.T) {
	if got := layout.ThumbLength(100, 200, 20); got != 50 {
		t.Errorf("ThumbLength(100, 200) = %v, want 50", got)
	}
	if got := layout.ThumbLength(100, 10000, 20); got != 20 {
		t.Errorf("ThumbLength should not go below the minimum, got %v", got)
	}
	if got := layout.ThumbLength(100, 0, 20); got != 100 {
		t.Errorf("ThumbLength without content = %v, want the viewport", got)
	}
}

func TestContentOffset(t *testing.T) {
	if got := layout.ContentOffset(500, 100, 0.25); got != 100 {
		t.Errorf("ContentOffset = %v, want 100", got)
	}
	if got := layout.ContentOffset(500, 100, 2); got != 400 {
		t.Errorf("ContentOffset past the end = %v, want 400", got)
	}
	if got := layout.ContentOffset(50, 100, 0.5); got != 0 {
		t.Errorf("ContentOffset of short content = %v, want 0", got)
	}
}

// scrollFixture is a 200x100 scroll group over 25 rows of 20 pixels: 500
// pixels of content, a 20 pixel thumb and 80 pixels of thumb travel.
type scrollFixture struct {
	t  *testing.T
	ui *layout.GUI
	in *layout.InputState
	g  *layout.Group
}

func newScrollFixture(t *testing.T) *scrollFixture {
	f := &scrollFixture{t: t, ui: newTestGUI(), in: layout.NewInputState()}
	f.frame()
	return f
}

func (f *scrollFixture) build(ctx *layout.Context) {
	ctx.Scroll("rows", layout.Size(200, 100))(func() {
		f.g = ctx.CurrentGroup()
		for range 25 {
			ctx.GetRect(-1, 20)
		}
	})
}

func (f *scrollFixture) frame() {
	runFrame(f.t, f.ui, f.in, f.build)
}

func (f *scrollFixture) press(x, y float32) {
	f.in.SetMousePos(x, y)
	f.in.SetMouseButton(layout.MouseButtonLeft, true)
	f.frame()
}

func (f *scrollFixture) release() {
	f.in.SetMouseButton(layout.MouseButtonLeft, false)
	f.frame()
}

func (f *scrollFixture) key(k layout.Key) {
	f.in.SetKey(k, true)
	f.frame()
	f.in.SetKey(k, false)
}

func (f *scrollFixture) offset() float32 {
	return f.g.Scroll().Offset().Y
}

func TestScrollThumbDrag(t *testing.T) {
	f := newScrollFixture(t)
	if got := f.g.Scroll().ThumbLength(layout.AxisY); got != 20 {
		t.Fatalf("thumb length = %v, want 20", got)
	}

	f.press(194, 10)
	f.in.SetMousePos(194, 50)
	f.frame()
	if got := f.g.Scroll().Position().Y; !approx(got, 0.5) {
		t.Errorf("position after dragging half the travel = %v, want 0.5", got)
	}
	if !approx(f.offset(), 200) {
		t.Errorf("offset = %v, want 200", f.offset())
	}
	f.release()

	// The thumb is released: moving the pointer no longer scrolls.
	f.in.SetMousePos(194, 90)
	f.frame()
	if !approx(f.offset(), 200) {
		t.Errorf("offset changed after release: %v", f.offset())
	}
}

func TestScrollTrackClick(t *testing.T) {
	f := newScrollFixture(t)
	f.press(194, 90)
	if got := f.g.Scroll().Position().Y; !approx(got, 0.9) {
		t.Errorf("position after clicking the track = %v, want 0.9", got)
	}
	if !approx(f.offset(), 360) {
		t.Errorf("offset = %v, want 360", f.offset())
	}
}

func TestScrollWheel(t *testing.T) {
	f := newScrollFixture(t)

	// Outside the group the wheel does nothing.
	f.in.SetMousePos(300, 250)
	f.in.SetMouseWheel(0, -1)
	f.frame()
	if f.offset() != 0 {
		t.Fatalf("wheel outside the group scrolled to %v", f.offset())
	}

	f.in.SetMousePos(50, 50)
	f.in.SetMouseWheel(0, -1)
	f.frame()
	// One notch is 30 pixels of thumb travel: 30/80 of the range.
	if got := f.g.Scroll().Position().Y; !approx(got, 0.375) {
		t.Errorf("position after one notch = %v, want 0.375", got)
	}

	f.in.SetMouseWheel(0, 10)
	f.frame()
	if got := f.g.Scroll().Position().Y; got != 0 {
		t.Errorf("position should clamp at 0, got %v", got)
	}
}

func TestScrollKeys(t *testing.T) {
	f := newScrollFixture(t)
	f.press(50, 50)
	f.release()
	if f.ui.Host().KeyboardControl() != f.g.ID() {
		t.Fatal("clicking the group should give it keyboard control")
	}

	f.key(layout.KeyEnd)
	if !approx(f.offset(), 400) {
		t.Errorf("End: offset = %v, want 400", f.offset())
	}
	f.key(layout.KeyHome)
	if f.offset() != 0 {
		t.Errorf("Home: offset = %v, want 0", f.offset())
	}
	f.key(layout.KeyPageDown)
	if !approx(f.offset(), 80) {
		t.Errorf("PageDown: offset = %v, want 80", f.offset())
	}
	f.key(layout.KeyPageUp)
	if !approx(f.offset(), 0) {
		t.Errorf("PageUp: offset = %v, want 0", f.offset())
	}
}
