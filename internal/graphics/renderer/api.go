package renderer

import (
	"turnstile/internal/graphics"
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera graphics.Camera
	Root   *scene.Node
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	// Status is free-form text shown by overlay renderables
	Status []string
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
