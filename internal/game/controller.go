package game

import (
	"log/slog"

	"turnstile/internal/graphics"
	"turnstile/internal/input"
	"turnstile/internal/scene"
)

// Renderer draws a scene from a camera
type Renderer interface {
	Render(root *scene.Node, camera graphics.Camera)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(root *scene.Node, camera graphics.Camera)

// Render calls f
func (f RendererFunc) Render(root *scene.Node, camera graphics.Camera) { f(root, camera) }

// Controller applies input actions to the state. Every accepted action makes
// one discrete change followed by exactly one render.
type Controller struct {
	state    *State
	renderer Renderer
	step     float64
	log      *slog.Logger
}

// NewController creates a controller that turns groups by stepDegrees per press
func NewController(state *State, r Renderer, stepDegrees float64, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{state: state, renderer: r, step: stepDegrees, log: log}
}

// Apply performs the action and re-renders. It returns false, without
// rendering, for actions it does not handle.
func (c *Controller) Apply(action input.Action) bool {
	s := c.state
	switch action {
	case input.ActionTurnDoors:
		s.SetDoorsYaw(s.DoorsYaw() + c.step)
	case input.ActionTurnWalls:
		s.SetWallsYaw(s.WallsYaw() + c.step)
	case input.ActionReset:
		s.SetWallsYaw(0)
		s.SetDoorsYaw(0)
	case input.ActionCameraDefault:
		s.SetView(graphics.ViewDefault)
	case input.ActionCameraAlternate:
		s.SetView(graphics.ViewAlternate)
	case input.ActionCameraFront:
		s.SetView(graphics.ViewFront)
	default:
		return false
	}

	c.log.Debug("action applied",
		"action", action,
		"walls_yaw", s.WallsYaw(),
		"doors_yaw", s.DoorsYaw(),
		"view", s.Camera.View,
	)
	c.Render()
	return true
}

// Render draws the current state once
func (c *Controller) Render() {
	c.renderer.Render(c.state.Root, c.state.Camera)
}
