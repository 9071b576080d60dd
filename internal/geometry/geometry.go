package geometry

import "github.com/go-gl/mathgl/mgl32"

// Face is one triangle of a geometry, referencing three vertices by index.
// Color is only used by materials that draw per-face colors.
type Face struct {
	A, B, C int
	Color   mgl32.Vec3
}

// Geometry holds indexed triangle data
type Geometry struct {
	Vertices []mgl32.Vec3
	Faces    []Face
}

// FloatsPerVertex is the stride of the interleaved buffer produced by Triangles:
// position (3) followed by color (3).
const FloatsPerVertex = 6

// Clone returns a deep copy of the geometry
func (g *Geometry) Clone() *Geometry {
	out := &Geometry{
		Vertices: make([]mgl32.Vec3, len(g.Vertices)),
		Faces:    make([]Face, len(g.Faces)),
	}
	copy(out.Vertices, g.Vertices)
	copy(out.Faces, g.Faces)
	return out
}

// Normal returns the unit normal of face i following its winding order
func (g *Geometry) Normal(i int) mgl32.Vec3 {
	f := g.Faces[i]
	a, b, c := g.Vertices[f.A], g.Vertices[f.B], g.Vertices[f.C]
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// SetQuadColor colors the two triangles that make up quad q (faces 2q and 2q+1)
func (g *Geometry) SetQuadColor(q int, color mgl32.Vec3) {
	g.Faces[2*q].Color = color
	g.Faces[2*q+1].Color = color
}

// SetColor paints every face with the same color
func (g *Geometry) SetColor(color mgl32.Vec3) {
	for i := range g.Faces {
		g.Faces[i].Color = color
	}
}

// Triangles flattens the geometry into a non-indexed, interleaved
// [x y z r g b] buffer, three vertices per face. When useFaceColors is false
// every vertex gets the supplied color instead of its face color.
func (g *Geometry) Triangles(useFaceColors bool, color mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(g.Faces)*3*FloatsPerVertex)
	for _, f := range g.Faces {
		c := color
		if useFaceColors {
			c = f.Color
		}
		for _, idx := range [3]int{f.A, f.B, f.C} {
			v := g.Vertices[idx]
			out = append(out, v[0], v[1], v[2], c[0], c[1], c[2])
		}
	}
	return out
}

// HexColor converts a 0xRRGGBB value into an RGB vector in [0, 1]
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255.0,
		float32((hex>>8)&0xff) / 255.0,
		float32(hex&0xff) / 255.0,
	}
}
