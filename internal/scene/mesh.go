package scene

import (
	"turnstile/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a mesh is shaded. All materials are unlit.
type Material struct {
	// Color is used for every face unless VertexColors is set
	Color mgl32.Vec3
	// VertexColors draws each face with its own geometry.Face color
	VertexColors bool
	// DoubleSided disables back-face culling for the mesh
	DoubleSided bool
}

// Mesh pairs immutable geometry with a material
type Mesh struct {
	Geometry *geometry.Geometry
	Material Material
}

// NewMesh creates a mesh
func NewMesh(g *geometry.Geometry, m Material) *Mesh {
	return &Mesh{Geometry: g, Material: m}
}

// Vertices returns the interleaved position/color buffer for the mesh
func (m *Mesh) Vertices() []float32 {
	return m.Geometry.Triangles(m.Material.VertexColors, m.Material.Color)
}
