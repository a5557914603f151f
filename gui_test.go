package layout_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/layout"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *layout.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

var testDisplay = layout.Vec2{X: 400, Y: 300}

func newTestGUI(opts ...layout.GUIOption) *layout.GUI {
	opts = append([]layout.GUIOption{layout.WithStyle(layout.CompactStyle())}, opts...)
	return layout.New(nil, opts...)
}

func runFrame(t *testing.T, ui *layout.GUI, in *layout.InputState, build func(ctx *layout.Context)) {
	t.Helper()
	if err := ui.Frame(in, testDisplay, 1.0/60.0, build); err != nil {
		t.Fatalf("Frame() returned error: %v", err)
	}
	in.Reset()
}

func expectProtocolPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, layout.ErrProtocol) {
			t.Fatalf("expected a panic wrapping ErrProtocol, got %v", r)
		}
	}()
	fn()
}

func TestFrameRendersOnce(t *testing.T) {
	renderer := &mockRenderer{}
	ui := layout.New(renderer)
	defer ui.Close()

	build := func(ctx *layout.Context) {
		ctx.Vertical("root")(func() {
			ctx.Label("Hello World")
		})
	}
	in := layout.NewInputState()
	runFrame(t, ui, in, build)
	runFrame(t, ui, in, build)

	if renderer.renderCalls != 2 {
		t.Errorf("expected 2 render calls, got %d", renderer.renderCalls)
	}
	if len(ui.DrawList().VtxBuffer) == 0 {
		t.Error("expected the label to produce vertices")
	}
	stats := ui.Stats()
	if stats.Measurements != 1 || stats.Interactions != 1 || stats.Relayouts != 0 {
		t.Errorf("unexpected pass counts for a frame without events: %+v", stats)
	}
}

func TestFrameWithEventRunsInputPass(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()
	build := func(ctx *layout.Context) {
		ctx.Vertical("root")(func() { ctx.Label("row") })
	}
	runFrame(t, ui, in, build)

	in.SetMousePos(5, 5)
	in.SetMouseButton(layout.MouseButtonLeft, true)
	runFrame(t, ui, in, build)

	if got := ui.Stats().Interactions; got != 2 {
		t.Errorf("expected an input pass and a repaint pass, got %d interactions", got)
	}
}

func TestEmptyGroupCollapses(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var outer, empty *layout.Group
	var after layout.Rect
	emptyRuns := 0
	build := func(ctx *layout.Context) {
		ctx.Vertical("outer")(func() {
			outer = ctx.CurrentGroup()
			ctx.Vertical("empty")(func() {
				empty = ctx.CurrentGroup()
				emptyRuns++
			})
			after = ctx.Label("after")
		})
	}
	runFrame(t, ui, in, build)

	if emptyRuns != 1 {
		t.Errorf("empty group body should only run in measurement, ran %d times", emptyRuns)
	}
	if empty.Valid() {
		t.Error("empty group should not receive room")
	}
	if empty.MeasuredSize() != (layout.Vec2{}) {
		t.Errorf("empty group should measure zero, got %+v", empty.MeasuredSize())
	}
	if outer.Entries() != 1 {
		t.Errorf("empty group should not register with its parent, outer has %d entries", outer.Entries())
	}
	if !after.Valid() || after.Y != 0 {
		t.Errorf("sibling should take the empty group's place, got %+v", after)
	}
}

func TestScrollGroupCullsRows(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var g *layout.Group
	var visible []int
	build := func(ctx *layout.Context) {
		ctx.Scroll("rows", layout.Size(200, 100))(func() {
			g = ctx.CurrentGroup()
			for i := range 25 {
				if r := ctx.GetRect(-1, 20); r.Valid() && ctx.Drawing() {
					visible = append(visible, i)
				}
			}
		})
	}
	runFrame(t, ui, in, build)
	if want := []int{0, 1, 2, 3, 4, 5}; !slices.Equal(visible, want) {
		t.Errorf("visible rows at the top = %v, want %v", visible, want)
	}

	sc := g.Scroll()
	if !sc.Active(layout.AxisY) || sc.Active(layout.AxisX) {
		t.Fatalf("expected only a vertical scrollbar, got h=%v v=%v", sc.Active(layout.AxisX), sc.Active(layout.AxisY))
	}
	if sc.ContentSize().Y != 500 || sc.Viewport().Y != 100 {
		t.Fatalf("content %v viewport %v", sc.ContentSize(), sc.Viewport())
	}

	sc.ScrollTo(layout.AxisY, 100)
	visible = visible[:0]
	runFrame(t, ui, in, build)

	// Row 4 ends exactly at the top edge and is culled; row 10 starts at
	// the bottom edge and is kept.
	if want := []int{5, 6, 7, 8, 9, 10}; !slices.Equal(visible, want) {
		t.Errorf("visible rows at offset 100 = %v, want %v", visible, want)
	}
	if sc.Offset().Y != 100 {
		t.Errorf("offset = %v, want 100", sc.Offset().Y)
	}
}

func TestScrollGroupMetInInputPass(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var g *layout.Group
	shown := false
	build := func(ctx *layout.Context) {
		if ctx.Phase() == layout.PhaseInteraction && !ctx.Drawing() {
			shown = true
		}
		if !shown {
			ctx.Label("placeholder")
			return
		}
		ctx.Scroll("late", layout.Size(200, 100))(func() {
			g = ctx.CurrentGroup()
			ctx.GetRect(-1, 20)
			ctx.GetRect(-1, 20)
		})
	}
	runFrame(t, ui, in, build)

	in.SetMousePos(350, 250)
	in.SetMouseButton(layout.MouseButtonLeft, true)
	runFrame(t, ui, in, build)

	if got := ui.Stats().Relayouts; got != 1 {
		t.Errorf("expected one relayout for the guessed scroll group, got %d", got)
	}
	if g == nil {
		t.Fatal("scroll group was never built")
	}
	if g.Scroll().Active(layout.AxisY) {
		t.Error("two short rows should not keep the vertical scrollbar")
	}
	if g.Scroll().ContentSize().Y != 40 {
		t.Errorf("content height = %v, want 40", g.Scroll().ContentSize().Y)
	}
}

func TestCachedGroupSkipsMeasurement(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var outer *layout.Group
	outerRuns, innerRuns := 0, 0
	build := func(ctx *layout.Context) {
		ctx.Vertical("outer")(func() {
			outer = ctx.CurrentGroup()
			if ctx.Measuring() {
				outerRuns++
			}
			ctx.Label("a")
			ctx.Vertical("inner")(func() {
				if ctx.Measuring() {
					innerRuns++
				}
				ctx.Label("b")
			})
		})
	}

	runFrame(t, ui, in, build)
	if outerRuns != 1 || innerRuns != 1 {
		t.Fatalf("first frame measures everything, got outer=%d inner=%d", outerRuns, innerRuns)
	}

	runFrame(t, ui, in, build)
	if outerRuns != 1 || innerRuns != 1 {
		t.Errorf("cached groups should skip measurement, got outer=%d inner=%d", outerRuns, innerRuns)
	}
	if outer.CacheState() != layout.Cached {
		t.Errorf("outer cache = %v, want cached", outer.CacheState())
	}

	if !ui.MarkDirty(outer.ID(), layout.NodeRebuild) {
		t.Fatal("MarkDirty should find the outer group")
	}
	runFrame(t, ui, in, build)
	if outerRuns != 2 || innerRuns != 1 {
		t.Errorf("NodeRebuild re-runs only the marked body, got outer=%d inner=%d", outerRuns, innerRuns)
	}

	outer.MarkDirty(layout.FullRebuild)
	runFrame(t, ui, in, build)
	if outerRuns != 3 || innerRuns != 2 {
		t.Errorf("FullRebuild re-runs the subtree, got outer=%d inner=%d", outerRuns, innerRuns)
	}
}

func TestMarkDirtyLiftsCachedAncestors(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var outer, inner, sibling *layout.Group
	outerRuns, innerRuns, siblingRuns := 0, 0, 0
	build := func(ctx *layout.Context) {
		ctx.Vertical("outer")(func() {
			outer = ctx.CurrentGroup()
			if ctx.Measuring() {
				outerRuns++
			}
			ctx.Vertical("inner")(func() {
				inner = ctx.CurrentGroup()
				if ctx.Measuring() {
					innerRuns++
				}
				ctx.Label("b")
			})
			ctx.Vertical("sibling")(func() {
				sibling = ctx.CurrentGroup()
				if ctx.Measuring() {
					siblingRuns++
				}
				ctx.Label("c")
			})
		})
	}
	runFrame(t, ui, in, build)
	runFrame(t, ui, in, build)
	if outerRuns != 1 || innerRuns != 1 || siblingRuns != 1 {
		t.Fatalf("second frame should be cached, got outer=%d inner=%d sibling=%d", outerRuns, innerRuns, siblingRuns)
	}

	inner.MarkDirty(layout.NodeRebuild)
	if outer.CacheState() != layout.NodeRebuild {
		t.Errorf("outer cache = %v, want NodeRebuild", outer.CacheState())
	}
	if sibling.CacheState() != layout.Cached {
		t.Errorf("sibling cache = %v, want cached", sibling.CacheState())
	}

	runFrame(t, ui, in, build)
	if outerRuns != 2 || innerRuns != 2 {
		t.Errorf("marked group and its ancestor should re-measure, got outer=%d inner=%d", outerRuns, innerRuns)
	}
	if siblingRuns != 1 {
		t.Errorf("cached sibling should keep skipping, ran %d times", siblingRuns)
	}
}

func TestChangedEntryCountRelayouts(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var g *layout.Group
	rows := 2
	build := func(ctx *layout.Context) {
		ctx.Vertical("list")(func() {
			g = ctx.CurrentGroup()
			for range rows {
				ctx.Label("row")
			}
		})
	}
	runFrame(t, ui, in, build)

	rows = 3
	runFrame(t, ui, in, build)
	if got := ui.Stats().Relayouts; got != 1 {
		t.Errorf("expected one relayout, got %d", got)
	}
	if g.Entries() != 3 {
		t.Errorf("entries after relayout = %d, want 3", g.Entries())
	}
	if g.MeasuredSize().Y != 60 {
		t.Errorf("height after relayout = %v, want 60", g.MeasuredSize().Y)
	}

	runFrame(t, ui, in, build)
	if got := ui.Stats().Relayouts; got != 0 {
		t.Errorf("stable frame should not relayout, got %d", got)
	}
}

func TestFlexibleWidth(t *testing.T) {
	if got := layout.FlexibleWidth(300, 100, 10, 4, 2); got != 85 {
		t.Errorf("FlexibleWidth = %v, want 85", got)
	}
	if got := layout.FlexibleWidth(50, 100, 10, 4, 2); got != 0 {
		t.Errorf("overfull FlexibleWidth = %v, want 0", got)
	}
	if got := layout.FlexibleWidth(300, 100, 10, 4, 0); got != 0 {
		t.Errorf("FlexibleWidth without flexible entries = %v, want 0", got)
	}
}

func TestFlexibleGroupSharesWidth(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	var rects []layout.Rect
	build := func(ctx *layout.Context) {
		ctx.Flexible("row", layout.Width(300), layout.Gap(10))(func() {
			rects = rects[:0]
			for _, w := range []float32{40, -1, -1, 60} {
				rects = append(rects, ctx.GetRect(w, 20))
			}
		})
	}
	runFrame(t, ui, in, build)

	want := []layout.Rect{
		{X: 0, Y: 0, W: 40, H: 20},
		{X: 50, Y: 0, W: 85, H: 20},
		{X: 145, Y: 0, W: 85, H: 20},
		{X: 240, Y: 0, W: 60, H: 20},
	}
	if !slices.Equal(rects, want) {
		t.Errorf("rects = %+v\nwant %+v", rects, want)
	}
}

func TestTreeIndentsNestedEntries(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()
	indent := layout.CompactStyle().TreeIndent

	var top, nested, after layout.Rect
	runFrame(t, ui, in, func(ctx *layout.Context) {
		ctx.Tree("files")(func() {
			top = ctx.GetRect(-1, 20)
			ctx.Tree("dir")(func() {
				nested = ctx.GetRect(-1, 20)
			})
			after = ctx.GetRect(-1, 20)
		})
	})

	if top != (layout.Rect{X: 0, Y: 0, W: testDisplay.X, H: 20}) {
		t.Errorf("top-level entry = %+v, want the full display width", top)
	}
	if nested != (layout.Rect{X: indent, Y: 20, W: testDisplay.X - indent, H: 20}) {
		t.Errorf("nested entry = %+v, want it indented by %v", nested, indent)
	}
	if after.X != 0 || after.Y != 40 {
		t.Errorf("entry after the nested tree = %+v, want (0,40)", after)
	}
	if len(ui.DrawList().VtxBuffer) == 0 {
		t.Error("nested tree should draw connectors")
	}
}

func TestConditionalSiblingKeepsKeys(t *testing.T) {
	ui := newTestGUI()
	in := layout.NewInputState()

	showA := true
	var aID, bID layout.ID
	var rowIDs []layout.ID
	build := func(ctx *layout.Context) {
		rowIDs = rowIDs[:0]
		ctx.Vertical("root")(func() {
			if showA {
				ctx.Vertical("a")(func() {
					aID = ctx.CurrentGroup().ID()
					ctx.Label("a")
				})
			}
			ctx.Vertical("b")(func() {
				bID = ctx.CurrentGroup().ID()
				ctx.Label("b")
			})
			for range 2 {
				ctx.Vertical("row")(func() {
					rowIDs = append(rowIDs, ctx.CurrentGroup().ID())
					ctx.Label("row")
				})
			}
		})
	}
	runFrame(t, ui, in, build)
	firstB := bID
	if len(rowIDs) != 2 || rowIDs[0] == rowIDs[1] {
		t.Fatalf("repeated labels need distinct keys, got %v", rowIDs)
	}
	firstRows := slices.Clone(rowIDs)

	showA = false
	runFrame(t, ui, in, build)
	if bID != firstB {
		t.Errorf("sibling key changed when a conditional group disappeared: %v != %v", bID, firstB)
	}
	if !slices.Equal(rowIDs, firstRows) {
		t.Errorf("row keys changed: %v != %v", rowIDs, firstRows)
	}
	if ui.Group(aID) == nil {
		t.Error("dropped group should survive one frame")
	}

	runFrame(t, ui, in, build)
	runFrame(t, ui, in, build)
	if ui.Group(aID) != nil {
		t.Error("dropped group should be evicted")
	}
	if ui.Group(bID) == nil {
		t.Error("live group must not be evicted")
	}
}

func TestProtocolMisusePanics(t *testing.T) {
	tests := []struct {
		name  string
		build func(ctx *layout.Context)
	}{
		{"end without begin", func(ctx *layout.Context) {
			ctx.EndGroup(layout.KindVertical)
		}},
		{"end of wrong kind", func(ctx *layout.Context) {
			ctx.BeginGroup(layout.KindVertical, "a")
			ctx.EndGroup(layout.KindHorizontal)
		}},
		{"group left open", func(ctx *layout.Context) {
			ctx.BeginGroup(layout.KindVertical, "a")
		}},
		{"rect query outside scope", func(ctx *layout.Context) {
			var g *layout.Group
			ctx.Vertical("a")(func() {
				g = ctx.CurrentGroup()
				ctx.Label("x")
			})
			g.GetRect(10, 10)
		}},
		{"register during interaction", func(ctx *layout.Context) {
			ctx.Vertical("a")(func() {
				if !ctx.Measuring() {
					ctx.CurrentGroup().RegisterEntry(10, 10)
				}
				ctx.Label("x")
			})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestGUI()
			expectProtocolPanic(t, func() {
				_ = ui.Frame(layout.NewInputState(), testDisplay, 0.016, tt.build)
			})
		})
	}

	t.Run("rect query outside a frame", func(t *testing.T) {
		ui := newTestGUI()
		expectProtocolPanic(t, func() {
			ui.Context().GetRect(10, 10)
		})
	})
}

func TestDrawHostClipOrigin(t *testing.T) {
	style := layout.DefaultStyle()
	dl := layout.AcquireDrawList()
	defer layout.ReleaseDrawList(dl)
	h := layout.NewDrawHost(dl, &style, 0)

	h.BeginPass(layout.Pass{Phase: layout.PhaseInteraction, Drawing: true, Mouse: layout.Vec2{X: 50, Y: 60}})
	h.PushClip(layout.Rect{X: 10, Y: 20, W: 100, H: 100})
	if m := h.Mouse(); m != (layout.Vec2{X: 40, Y: 40}) {
		t.Errorf("mouse in clip space = %+v, want (40,40)", m)
	}
	h.FillRect(layout.Rect{X: 0, Y: 0, W: 5, H: 5}, layout.ColorWhite)
	if len(dl.VtxBuffer) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	if p := dl.VtxBuffer[0].Pos; p != [2]float32{10, 20} {
		t.Errorf("first vertex at %v, want the clip origin (10,20)", p)
	}
	h.PopClip()
	if m := h.Mouse(); m != (layout.Vec2{X: 50, Y: 60}) {
		t.Errorf("mouse after PopClip = %+v, want window coordinates", m)
	}
	if dl.ClipDepth() != 0 {
		t.Errorf("clip depth after PopClip = %d", dl.ClipDepth())
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := layout.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, layout.ColorWhite)
	layout.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := layout.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	layout.ReleaseDrawList(dl2)
}

func TestVerboseFrame(t *testing.T) {
	layout.SetVerbose(true)
	defer layout.SetVerbose(false)

	ui := newTestGUI()
	in := layout.NewInputState()
	n := 1
	build := func(ctx *layout.Context) {
		ctx.Vertical("root")(func() {
			for range n {
				ctx.Label("row")
			}
		})
	}
	runFrame(t, ui, in, build)
	n = 2
	runFrame(t, ui, in, build)
	if got := ui.Stats().Relayouts; got != 1 {
		t.Errorf("expected one relayout with debug logging on, got %d", got)
	}
}
