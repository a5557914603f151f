package layout

// EventKind identifies the input event an interaction pass handles.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseDrag
	EventScrollWheel
	EventKeyDown
	EventDragUpdated
	EventDragPerform
	EventDragExited
	EventRepaint
)

var eventKindNames = [...]string{
	EventNone:        "none",
	EventMouseDown:   "mouse-down",
	EventMouseUp:     "mouse-up",
	EventMouseDrag:   "mouse-drag",
	EventScrollWheel: "scroll-wheel",
	EventKeyDown:     "key-down",
	EventDragUpdated: "drag-updated",
	EventDragPerform: "drag-perform",
	EventDragExited:  "drag-exited",
	EventRepaint:     "repaint",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is the single input event of an interaction pass. Mouse is in
// window coordinates; use Context.Mouse for the active group's space.
type Event struct {
	Kind    EventKind
	Mouse   Vec2
	Delta   Vec2 // pointer movement since the previous frame
	Wheel   Vec2 // scroll amount in pixels, positive Y scrolls content up
	Button  MouseButton
	Key     Key
	Shift   bool
	Ctrl    bool // Ctrl or Cmd
	Payload *DragPayload

	used bool
}

// Use consumes the event. Group bodies that have not run yet in this pass
// are skipped; Begin/End pairing is unaffected. Repaint events cannot be
// consumed.
func (e *Event) Use() {
	if e.Kind == EventRepaint || e.Kind == EventNone {
		return
	}
	e.used = true
}

// Used reports whether the event was consumed.
func (e *Event) Used() bool {
	return e.used
}

// IsMouse reports whether the event carries pointer input.
func (e *Event) IsMouse() bool {
	switch e.Kind {
	case EventMouseDown, EventMouseUp, EventMouseDrag, EventScrollWheel:
		return true
	}
	return false
}

// IsDrag reports whether the event belongs to a drag-and-drop session.
func (e *Event) IsDrag() bool {
	return e.Kind == EventDragUpdated || e.Kind == EventDragPerform || e.Kind == EventDragExited
}

// deriveEvent picks the one event this frame's input produces. When several
// happen in the same frame the earlier kinds in the switch win.
func deriveEvent(in *InputState, prevMouse Vec2, wheelStep float32) Event {
	ev := Event{
		Mouse: Vec2{X: in.MouseX, Y: in.MouseY},
		Shift: in.ModShift,
		Ctrl:  in.ModCtrl || in.ModSuper,
	}
	ev.Delta = ev.Mouse.Sub(prevMouse)

	switch {
	case in.DragPhase == DragPerform:
		ev.Kind = EventDragPerform
		ev.Payload = in.DragPayload
	case in.DragPhase == DragExit:
		ev.Kind = EventDragExited
	case in.DragPhase == DragUpdate:
		ev.Kind = EventDragUpdated
		ev.Payload = in.DragPayload
	case in.MouseClicked(MouseButtonLeft):
		ev.Kind = EventMouseDown
		ev.Button = MouseButtonLeft
	case in.MouseClicked(MouseButtonRight):
		ev.Kind = EventMouseDown
		ev.Button = MouseButtonRight
	case in.MouseReleased(MouseButtonLeft):
		ev.Kind = EventMouseUp
		ev.Button = MouseButtonLeft
	case in.MouseDown(MouseButtonLeft) && (ev.Delta.X != 0 || ev.Delta.Y != 0):
		ev.Kind = EventMouseDrag
		ev.Button = MouseButtonLeft
	case in.MouseWheelX != 0 || in.MouseWheelY != 0:
		ev.Kind = EventScrollWheel
		ev.Wheel = Vec2{X: -in.MouseWheelX * wheelStep, Y: -in.MouseWheelY * wheelStep}
	default:
		if k := in.firstPressedKey(); k != KeyNone {
			ev.Kind = EventKeyDown
			ev.Key = k
		}
	}
	return ev
}
