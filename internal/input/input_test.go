package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()
	cases := map[glfw.Key]Action{
		glfw.KeyQ:   ActionTurnDoors,
		glfw.KeyP:   ActionTurnWalls,
		glfw.KeyR:   ActionReset,
		glfw.Key0:   ActionCameraDefault,
		glfw.KeyKP0: ActionCameraDefault,
		glfw.Key1:   ActionCameraAlternate,
		glfw.KeyKP1: ActionCameraAlternate,
		glfw.Key2:   ActionCameraFront,
		glfw.KeyKP2: ActionCameraFront,
		glfw.KeyW:   ActionNone,
		glfw.Key3:   ActionNone,
	}
	for key, want := range cases {
		assert.Equal(t, want, im.HandleKeyEvent(key, glfw.Press), "key %d", key)
	}
}

func TestOnlyPressAndRepeatTrigger(t *testing.T) {
	im := NewInputManager()
	assert.Equal(t, ActionTurnDoors, im.HandleKeyEvent(glfw.KeyQ, glfw.Press))
	assert.Equal(t, ActionTurnDoors, im.HandleKeyEvent(glfw.KeyQ, glfw.Repeat))
	assert.Equal(t, ActionNone, im.HandleKeyEvent(glfw.KeyQ, glfw.Release))
}

func TestRebind(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyD, ActionTurnDoors)
	im.UnbindKey(glfw.KeyQ)
	im.BindKey(glfw.KeyE, ActionNone)
	im.BindKey(glfw.KeyE, ActionCount)

	assert.Equal(t, ActionTurnDoors, im.Lookup(glfw.KeyD))
	assert.Equal(t, ActionNone, im.Lookup(glfw.KeyQ))
	assert.Equal(t, ActionNone, im.Lookup(glfw.KeyE))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "turn-walls", ActionTurnWalls.String())
	assert.Equal(t, "Action(99)", Action(99).String())
}
