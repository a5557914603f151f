/*
Package layout provides a two-phase immediate-mode layout engine and a
virtualized list view built on top of it. It uses a dedicated Context type
(not context.Context) threaded through every call.

# Overview

The UI is described by a build function that runs several times per frame.
Every call site opens and closes groups in the same order in every pass;
the engine keeps a retained node per group, keyed by its parent, its label
and the occurrence of that label among its siblings.

A frame runs these passes:

	measurement   sizes accumulate bottom-up, nothing is drawn
	interaction   rects are assigned top-down and the frame's event is handled
	measurement   again, only if the interaction asked for a relayout
	repaint       rects are assigned again and the draw list is filled

A relayout requested during the repaint pass runs one more measurement and
repaint; anything asked after that waits for the next frame.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := layout.New(renderer)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    in := adapter.Update()

	    ui.Frame(in, layout.Vec2{X: 1280, Y: 720}, dt, func(ctx *layout.Context) {
	        ctx.Vertical("settings", layout.Padding(8))(func() {
	            ctx.Label("Volume")
	            ctx.Flexible("row")(func() {
	                ctx.Label("Left")
	                ctx.GetRect(-1, 20) // takes the remaining width
	                ctx.Label("Right")
	            })
	        })
	        list.Draw(ctx)
	    })
	    adapter.EndFrame()
	    window.SwapBuffers()
	}

# Groups

	ctx.Vertical(label, opts...)    top to bottom
	ctx.Horizontal(label, opts...)  left to right, auto widths take the rest
	ctx.Flexible(label, opts...)    left to right, auto widths share the rest
	ctx.Scroll(label, opts...)      vertical inside a clipped viewport
	ctx.Tree(label, opts...)        vertical, indented per enclosing tree

Inside a group body, ctx.GetRect(w, h) returns InvalidRect during
measurement and the entry's rect during interaction. A width of zero or
less lets the group decide. Entries outside the visible region also come
back as InvalidRect; test with Rect.Valid before drawing.

Bodies that do not register anything collapse: the group takes no space
and is skipped in interaction.

# Caching

A measured group is Cached and skips its body in the next measurement,
re-registering its last size with the parent. MarkDirty(NodeRebuild)
re-runs the body; MarkDirty(FullRebuild) also rebuilds every descendant.
A change of options, kind, offered width or display size rebuilds
automatically, and so does a body that places a different number of
entries than it registered.

# Scroll Groups

Scroll groups reserve a scrollbar for each axis whose content does not
fit, then test both axes again with the reserved space. Positions are
normalized to [0,1]; Group.Scroll returns the state.

	Mouse Wheel      Scroll vertically (when hovered)
	Drag thumb       Scroll by the dragged distance
	Click track      Jump to the clicked position
	Page Up/Down     Scroll by 80% of the viewport
	Home / End       Scroll to top / bottom (when focused)

# List View

ListView binds a fixed pool of RowRenderer values to the rows of a
Sequence that reach into its viewport. Scrolling by one row rebinds one
renderer.

	Click            Select the row, press and drag to reorder
	Ctrl+Click       Toggle the row
	Shift+Click      Extend the selection to the row
	Double Click     OnDoubleClick (within DoubleClickTime)
	Up / Down        Move the selection (when focused)
	Delete           Remove the selected rows (when focused)
	Ctrl+A           Select all
	Escape           Clear the selection

Drag-and-drop payloads are opaque: ValidateDrop answers once per session,
AcceptDrop receives the payload when it is dropped.

# Errors

Protocol misuse (an unbalanced Begin/End, a rect query outside a group
scope, closing a group of the wrong kind) panics with an error wrapping
ErrProtocol. Geometry that does not fit is not an error: the affected
subtree renders nothing.
*/
package layout
