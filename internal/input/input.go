package input

import (
	"mini-voxel/internal/game"
	"mini-voxel/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionBreak
	ActionPlace
	ActionQuit
	ActionToggleWireframe
	ActionCount // Sentinel value for array sizing
)

// Source is polled once per frame. *glfw.Window satisfies it.
type Source interface {
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
	GetCursorPos() (x, y float64)
}

// Manager maps physical keys and buttons to actions and turns one poll of a
// Source into a game.Input.
type Manager struct {
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool

	mouse player.MouseTracker
}

// NewManager creates a Manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionBreak)
	m.BindMouseButton(glfw.MouseButtonRight, ActionPlace)

	return m
}

// BindKey binds a physical key to an action. Several keys may share one action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to an action.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// Poll reads the source and returns this frame's input.
func (m *Manager) Poll(src Source) game.Input {
	m.prevState = m.currentState
	m.currentState = [ActionCount]bool{}

	for key, actions := range m.keyToActions {
		if a := src.GetKey(key); a == glfw.Press || a == glfw.Repeat {
			m.set(actions)
		}
	}
	for button, actions := range m.mouseButtonToActions {
		if src.GetMouseButton(button) == glfw.Press {
			m.set(actions)
		}
	}

	x, y := src.GetCursorPos()
	dx, dy := m.mouse.Delta(x, y)

	var keys player.MoveKeys
	if m.IsActive(ActionMoveForward) {
		keys |= player.MoveForward
	}
	if m.IsActive(ActionMoveBackward) {
		keys |= player.MoveBack
	}
	if m.IsActive(ActionMoveLeft) {
		keys |= player.MoveLeft
	}
	if m.IsActive(ActionMoveRight) {
		keys |= player.MoveRight
	}

	return game.Input{
		MouseDX:         dx,
		MouseDY:         dy,
		CursorX:         x,
		CursorY:         y,
		Keys:            keys,
		Break:           m.IsActive(ActionBreak),
		Place:           m.IsActive(ActionPlace),
		Quit:            m.IsActive(ActionQuit),
		ToggleWireframe: m.JustPressed(ActionToggleWireframe),
	}
}

func (m *Manager) set(actions []Action) {
	for _, a := range actions {
		m.currentState[a] = true
	}
}

// IsActive reports whether the action was held at the last poll.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.currentState[action]
}

// JustPressed reports whether the action went down at the last poll.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.currentState[action] && !m.prevState[action]
}

// Reset clears held state and re-arms the mouse baseline, so the next poll
// yields no look delta.
func (m *Manager) Reset() {
	m.currentState = [ActionCount]bool{}
	m.prevState = [ActionCount]bool{}
	m.mouse.Reset()
}
