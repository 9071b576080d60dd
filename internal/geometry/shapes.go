package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewPlane builds a width x height rectangle in the XY plane, centered on the
// origin and facing +Z
func NewPlane(width, height float32) *Geometry {
	hw, hh := width/2, height/2
	return &Geometry{
		Vertices: []mgl32.Vec3{
			{-hw, hh, 0},
			{-hw, -hh, 0},
			{hw, -hh, 0},
			{hw, hh, 0},
		},
		Faces: []Face{
			{A: 0, B: 1, C: 2},
			{A: 2, B: 3, C: 0},
		},
	}
}

// NewCylinder builds a capped cylinder along Y, centered on the origin.
// segments below 3 are raised to 3.
func NewCylinder(radiusTop, radiusBottom, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	hh := height / 2
	g := &Geometry{
		Vertices: make([]mgl32.Vec3, 0, segments*2+2),
		Faces:    make([]Face, 0, segments*4),
	}

	// Rings: top ring at [0, segments), bottom ring at [segments, 2*segments)
	for ring, y := range [2]float32{hh, -hh} {
		r := radiusTop
		if ring == 1 {
			r = radiusBottom
		}
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			g.Vertices = append(g.Vertices, mgl32.Vec3{
				r * float32(math.Sin(theta)),
				y,
				r * float32(math.Cos(theta)),
			})
		}
	}
	topCenter := len(g.Vertices)
	g.Vertices = append(g.Vertices, mgl32.Vec3{0, hh, 0})
	bottomCenter := len(g.Vertices)
	g.Vertices = append(g.Vertices, mgl32.Vec3{0, -hh, 0})

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		t0, t1 := i, next
		b0, b1 := segments+i, segments+next

		// side quad
		g.Faces = append(g.Faces,
			Face{A: t0, B: b0, C: b1},
			Face{A: b1, B: t1, C: t0},
		)
		// caps
		g.Faces = append(g.Faces,
			Face{A: topCenter, B: t0, C: t1},
			Face{A: bottomCenter, B: b1, C: b0},
		)
	}
	return g
}
