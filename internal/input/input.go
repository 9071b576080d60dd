package input

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

// Action constants using iota
const (
	ActionNone Action = iota
	ActionTurnDoors
	ActionTurnWalls
	ActionReset
	ActionCameraDefault
	ActionCameraAlternate
	ActionCameraFront
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:            "none",
	ActionTurnDoors:       "turn-doors",
	ActionTurnWalls:       "turn-walls",
	ActionReset:           "reset",
	ActionCameraDefault:   "camera-default",
	ActionCameraAlternate: "camera-alternate",
	ActionCameraFront:     "camera-front",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// InputManager maps physical keys to logical actions.
// It is used only from the main thread that owns the window.
type InputManager struct {
	keyToAction map[glfw.Key]Action
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToAction: make(map[glfw.Key]Action),
	}

	im.BindKey(glfw.KeyQ, ActionTurnDoors)
	im.BindKey(glfw.KeyP, ActionTurnWalls)
	im.BindKey(glfw.KeyR, ActionReset)

	// Both the number row and the keypad switch cameras
	im.BindKey(glfw.Key0, ActionCameraDefault)
	im.BindKey(glfw.KeyKP0, ActionCameraDefault)
	im.BindKey(glfw.Key1, ActionCameraAlternate)
	im.BindKey(glfw.KeyKP1, ActionCameraAlternate)
	im.BindKey(glfw.Key2, ActionCameraFront)
	im.BindKey(glfw.KeyKP2, ActionCameraFront)

	return im
}

// BindKey binds a physical key to a logical action, replacing any previous binding
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action <= ActionNone || action >= ActionCount {
		return
	}
	im.keyToAction[key] = action
}

// UnbindKey removes the binding for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.keyToAction, key)
}

// Lookup returns the action bound to key, or ActionNone
func (im *InputManager) Lookup(key glfw.Key) Action {
	return im.keyToAction[key]
}

// HandleKeyEvent translates a key event into an action. Presses and
// auto-repeats are reported; releases and unbound keys yield ActionNone.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) Action {
	if action != glfw.Press && action != glfw.Repeat {
		return ActionNone
	}
	return im.Lookup(key)
}
