package game

import (
	"fmt"
	"math"

	"turnstile/internal/graphics"
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// State is everything that changes after startup: the yaw of the walls and
// doors groups and the active camera. The scene graph itself is built once.
type State struct {
	Root  *scene.Node
	Walls *scene.Node
	Doors *scene.Node

	Camera graphics.Camera

	// yaws in degrees, kept in [0, 360)
	wallsYaw float64
	doorsYaw float64
}

// WallsYaw returns the walls group rotation about Y in degrees
func (s *State) WallsYaw() float64 { return s.wallsYaw }

// DoorsYaw returns the doors group rotation about Y in degrees
func (s *State) DoorsYaw() float64 { return s.doorsYaw }

// SetWallsYaw sets the walls rotation and updates the group node
func (s *State) SetWallsYaw(deg float64) {
	s.wallsYaw = wrapDegrees(deg)
	s.Walls.Rotation[1] = mgl32.DegToRad(float32(s.wallsYaw))
}

// SetDoorsYaw sets the doors rotation and updates the group node
func (s *State) SetDoorsYaw(deg float64) {
	s.doorsYaw = wrapDegrees(deg)
	s.Doors.Rotation[1] = mgl32.DegToRad(float32(s.doorsYaw))
}

// SetAspect widens or narrows the camera to a new width over height ratio.
// It reports whether the camera changed.
func (s *State) SetAspect(aspect float32) bool {
	if aspect <= 0 || math.Abs(float64(aspect-s.Camera.AspectRatio())) < 1e-6 {
		return false
	}
	s.Camera = s.Camera.WithAspect(aspect)
	return true
}

// SetView replaces the camera with a new one at the given view
func (s *State) SetView(v graphics.View) {
	s.Camera = s.Camera.WithView(v)
}

// Status describes the state for the on-screen overlay
func (s *State) Status() []string {
	return []string{
		fmt.Sprintf("walls %3.0f deg   doors %3.0f deg   view %s", s.wallsYaw, s.doorsYaw, s.Camera.View),
	}
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
