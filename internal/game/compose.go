package game

import (
	"fmt"

	"turnstile/internal/config"
	"turnstile/internal/graphics"
	"turnstile/internal/ground"
	"turnstile/internal/scene"
	"turnstile/internal/turnstile"
	"turnstile/internal/wall"
)

// Compose builds the scene once: ground, then the walls group, then the
// turnstile group, all attached to a fresh root. The camera starts at the
// default view with the given width over height aspect.
func Compose(cfg config.Config, aspect float32) (*State, error) {
	root := scene.NewGroup("scene")

	root.Add(ground.Build())

	walls, err := wall.BuildWalls()
	if err != nil {
		return nil, fmt.Errorf("build walls: %w", err)
	}
	root.Add(walls)
	root.Add(turnstile.Build())

	camera := graphics.NewOrthoCamera(
		aspect,
		cfg.Camera.ViewLength,
		cfg.Camera.Near,
		cfg.Camera.Far,
		graphics.ViewDefault,
	)
	return NewState(root, camera)
}

// NewState wraps a composed scene. The root must hold the walls and doors groups.
func NewState(root *scene.Node, camera graphics.Camera) (*State, error) {
	s := &State{
		Root:   root,
		Walls:  root.Find(wall.GroupName),
		Doors:  root.Find(turnstile.GroupName),
		Camera: camera,
	}
	if s.Walls == nil {
		return nil, fmt.Errorf("scene has no %q group", wall.GroupName)
	}
	if s.Doors == nil {
		return nil, fmt.Errorf("scene has no %q group", turnstile.GroupName)
	}
	return s, nil
}
