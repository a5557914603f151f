package layout

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the engine reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyCount
)

// DragPhase is the host's drag-and-drop progress for the current frame.
type DragPhase uint8

const (
	DragNone    DragPhase = iota
	DragUpdate            // payload hovering over the window
	DragPerform           // payload dropped this frame
	DragExit              // payload left the window or the drag was cancelled
)

// DragPayload is the opaque content of an OS or in-app drag-and-drop session.
// The layout engine never inspects Items; it only hands them to callers.
type DragPayload struct {
	Items  []any
	Source string
}

// switches tracks up to 32 two-state inputs and their edges since the last
// reset.
type switches[K ~int] struct {
	down, pressed, released uint32
}

func (s *switches[K]) set(k K, down bool) {
	bit := uint32(1) << k
	was := s.down&bit != 0
	switch {
	case down && !was:
		s.down |= bit
		s.pressed |= bit
	case !down && was:
		s.down &^= bit
		s.released |= bit
	}
}

func (s *switches[K]) test(mask uint32, k K) bool {
	return k >= 0 && k < 32 && mask&(uint32(1)<<k) != 0
}

func (s *switches[K]) clearEdges() {
	s.pressed, s.released = 0, 0
}

// InputState is the raw input of one frame. A backend fills it between
// frames; GUI.Frame turns it into at most one Event.
type InputState struct {
	// Pointer position in display coordinates.
	MouseX, MouseY float32

	// Wheel movement in notches; positive Y is away from the user.
	MouseWheelX float32
	MouseWheelY float32

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	DragPhase   DragPhase
	DragPayload *DragPayload

	buttons switches[MouseButton]
	keys    switches[Key]
}

// NewInputState returns an InputState with nothing held.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset drops the edges and wheel movement of the frame just rendered.
// Held buttons and keys stay held. A drop or an exit ends the drag session.
func (s *InputState) Reset() {
	s.buttons.clearEdges()
	s.keys.clearEdges()
	s.MouseWheelX, s.MouseWheelY = 0, 0
	if s.DragPhase == DragPerform || s.DragPhase == DragExit {
		s.DragPhase, s.DragPayload = DragNone, nil
	}
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.buttons.set(button, down)
}

func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keys.set(key, down)
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX, s.MouseWheelY = x, y
}

// SetDrag reports the host's drag-and-drop phase for this frame.
func (s *InputState) SetDrag(phase DragPhase, payload *DragPayload) {
	s.DragPhase, s.DragPayload = phase, payload
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return s.buttons.test(s.buttons.down, button)
}

// MouseClicked reports whether button went down since the last Reset.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return s.buttons.test(s.buttons.pressed, button)
}

// MouseReleased reports whether button went up since the last Reset.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return s.buttons.test(s.buttons.released, button)
}

func (s *InputState) KeyDown(key Key) bool {
	return s.keys.test(s.keys.down, key)
}

// KeyPressed reports whether key went down since the last Reset.
func (s *InputState) KeyPressed(key Key) bool {
	return s.keys.test(s.keys.pressed, key)
}

// firstPressedKey returns the lowest key pressed this frame, or KeyNone.
func (s *InputState) firstPressedKey() Key {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if s.KeyPressed(k) {
			return k
		}
	}
	return KeyNone
}
