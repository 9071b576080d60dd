package ground

import (
	"math"

	"turnstile/internal/geometry"
	"turnstile/internal/scene"
)

// Ground plane size
const Size = 600

var Color = geometry.HexColor(0x33cc33)

// Build returns the ground plane, laid flat and visible from both sides
func Build() *scene.Node {
	mesh := scene.NewMesh(geometry.NewPlane(Size, Size), scene.Material{
		Color:       Color,
		DoubleSided: true,
	})
	n := scene.NewMeshNode("ground", mesh)
	n.Rotation[0] = math.Pi / 2
	return n
}
