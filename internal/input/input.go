package input

import (
	"math"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionPointer Action = iota // primary button: drag to orbit, click to tap
	ActionQuit
	ActionToggleOverlay
	ActionFullscreen
	ActionCount // Sentinel value for array sizing
)

// TapSlop is how far, in pixels, the pointer may travel between press and release
// for the release to still count as a tap.
const TapSlop = 5.0

// InputManager maps physical keys/buttons to logical actions and accumulates
// pointer drags between frames
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Pointer tracking
	havePos      bool
	lastX, lastY float64
	dragX, dragY float64
	travel       float64
	tapped       bool
}

// NewInputManager creates a new InputManager with default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyV, ActionToggleOverlay)
	im.BindKey(glfw.KeyF, ActionFullscreen)
	im.BindMouseButton(glfw.MouseButtonLeft, ActionPointer)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event. Releasing the pointer
// after moving less than TapSlop registers a tap.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press
	im.apply(actions, isPressed)

	im.mu.Lock()
	for _, act := range actions {
		if act != ActionPointer {
			continue
		}
		if isPressed {
			im.travel = 0
		} else if im.travel < TapSlop {
			im.tapped = true
		}
	}
	im.mu.Unlock()
}

// HandleCursorPos records pointer motion; motion counts as drag only while the
// pointer action is held
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if !im.havePos {
		im.lastX, im.lastY = x, y
		im.havePos = true
		return
	}
	dx, dy := x-im.lastX, y-im.lastY
	im.lastX, im.lastY = x, y

	if !im.currentState[ActionPointer] {
		return
	}
	im.dragX += dx
	im.dragY += dy
	im.travel += math.Hypot(dx, dy)
}

func (im *InputManager) apply(actions []Action, isPressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetCallbacks installs GLFW key, mouse button and cursor callbacks
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
}

// ConsumeDrag returns the pointer drag accumulated since the last call
func (im *InputManager) ConsumeDrag() (dx, dy float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	dx, dy = im.dragX, im.dragY
	im.dragX, im.dragY = 0, 0
	return dx, dy
}

// ConsumeTap reports whether a tap happened since the last call
func (im *InputManager) ConsumeTap() bool {
	im.mu.Lock()
	defer im.mu.Unlock()

	t := im.tapped
	im.tapped = false
	return t
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
