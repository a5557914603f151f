package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/layout"
)

var glfwKeys = map[glfw.Key]layout.Key{
	glfw.KeyUp:        layout.KeyUp,
	glfw.KeyDown:      layout.KeyDown,
	glfw.KeyPageUp:    layout.KeyPageUp,
	glfw.KeyPageDown:  layout.KeyPageDown,
	glfw.KeyHome:      layout.KeyHome,
	glfw.KeyEnd:       layout.KeyEnd,
	glfw.KeyDelete:    layout.KeyDelete,
	glfw.KeyBackspace: layout.KeyBackspace,
	glfw.KeyEnter:     layout.KeyEnter,
	glfw.KeyKPEnter:   layout.KeyEnter,
	glfw.KeyEscape:    layout.KeyEscape,
	glfw.KeyA:         layout.KeyA,
}

var glfwButtons = map[glfw.MouseButton]layout.MouseButton{
	glfw.MouseButtonLeft:   layout.MouseButtonLeft,
	glfw.MouseButtonRight:  layout.MouseButtonRight,
	glfw.MouseButtonMiddle: layout.MouseButtonMiddle,
}

// GLFWInputAdapter collects GLFW window input into a layout.InputState.
//
// Callbacks fire during glfw.PollEvents, so a frame reads as:
//
//	glfw.PollEvents()
//	in := adapter.Update()
//	ui.Frame(in, size, dt, build)
//	adapter.EndFrame()
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *layout.InputState
}

// NewGLFWInputAdapter installs input callbacks on window. It replaces any
// key, button, scroll, cursor or drop callbacks already set.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, input: layout.NewInputState()}
	window.SetKeyCallback(a.onKey)
	window.SetMouseButtonCallback(a.onButton)
	window.SetScrollCallback(a.onScroll)
	window.SetCursorPosCallback(a.onCursor)
	window.SetDropCallback(a.onDrop)
	return a
}

func (a *GLFWInputAdapter) held(left, right glfw.Key) bool {
	return a.window.GetKey(left) == glfw.Press || a.window.GetKey(right) == glfw.Press
}

// Update samples the cursor and modifiers and returns the frame's input.
func (a *GLFWInputAdapter) Update() *layout.InputState {
	x, y := a.window.GetCursorPos()
	in := a.input
	in.SetMousePos(float32(x), float32(y))
	in.ModCtrl = a.held(glfw.KeyLeftControl, glfw.KeyRightControl)
	in.ModShift = a.held(glfw.KeyLeftShift, glfw.KeyRightShift)
	in.ModAlt = a.held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	in.ModSuper = a.held(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return in
}

// EndFrame drops the edges of the frame that just ran.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) Input() *layout.InputState {
	return a.input
}

func (a *GLFWInputAdapter) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}
	if action == glfw.Repeat {
		// Auto-repeat counts as a fresh press.
		a.input.SetKey(k, false)
	}
	a.input.SetKey(k, action != glfw.Release)
}

func (a *GLFWInputAdapter) onButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if b, ok := glfwButtons[button]; ok {
		a.input.SetMouseButton(b, action == glfw.Press)
	}
}

func (a *GLFWInputAdapter) onScroll(_ *glfw.Window, dx, dy float64) {
	a.input.SetMouseWheel(float32(dx), float32(dy))
}

func (a *GLFWInputAdapter) onCursor(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

// onDrop reports dropped file paths. GLFW has no hover phase, so the drop
// arrives as a single perform.
func (a *GLFWInputAdapter) onDrop(_ *glfw.Window, names []string) {
	items := make([]any, len(names))
	for i, n := range names {
		items[i] = n
	}
	a.input.SetDrag(layout.DragPerform, &layout.DragPayload{Items: items, Source: "glfw"})
}
