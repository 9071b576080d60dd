package wall

import (
	"turnstile/internal/geometry"
	"turnstile/internal/scene"
)

// NewColoredBrick builds a unit block whose six quads are painted with the
// brick palette in face order front, right, back, left, top, bottom
func NewColoredBrick() *scene.Mesh {
	g := geometry.NewBlock(geometry.BlockWidth)
	for q := 0; q < geometry.QuadCount; q++ {
		g.SetQuadColor(q, geometry.Palette[q])
	}
	return scene.NewMesh(g, scene.Material{VertexColors: true})
}
