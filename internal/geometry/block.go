package geometry

import "github.com/go-gl/mathgl/mgl32"

// BlockWidth is the edge length of one wall brick
const BlockWidth = 40

// Quad indices of a block, in face order
const (
	QuadFront = iota
	QuadRight
	QuadBack
	QuadLeft
	QuadTop
	QuadBottom
	QuadCount
)

// boxFaces is shared by every axis-aligned box. Vertex layout:
//
//	0 (-x +y +z)   1 (-x -y +z)   2 (+x -y +z)   3 (+x +y +z)
//	4 (+x +y -z)   5 (+x -y -z)   6 (-x -y -z)   7 (-x +y -z)
var boxFaces = [QuadCount * 2][3]int{
	// front
	{0, 1, 2}, {2, 3, 0},
	// right
	{3, 2, 5}, {5, 4, 3},
	// back
	{4, 5, 6}, {6, 7, 4},
	// left
	{7, 6, 1}, {1, 0, 7},
	// top
	{7, 0, 3}, {3, 4, 7},
	// bottom
	{1, 6, 5}, {5, 2, 1},
}

// NewBlock builds a cube of the given edge length centered on the origin.
// It has 8 vertices and 12 counter-clockwise triangles, two per quad, in the
// order front, right, back, left, top, bottom.
func NewBlock(width float32) *Geometry {
	h := width / 2
	return NewCuboid(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, h, h})
}

// NewCuboid builds an axis-aligned box spanning min..max with the same
// vertex and face layout as NewBlock
func NewCuboid(min, max mgl32.Vec3) *Geometry {
	g := &Geometry{
		Vertices: []mgl32.Vec3{
			{min[0], max[1], max[2]},
			{min[0], min[1], max[2]},
			{max[0], min[1], max[2]},
			{max[0], max[1], max[2]},
			{max[0], max[1], min[2]},
			{max[0], min[1], min[2]},
			{min[0], min[1], min[2]},
			{min[0], max[1], min[2]},
		},
		Faces: make([]Face, 0, len(boxFaces)),
	}
	for _, f := range boxFaces {
		g.Faces = append(g.Faces, Face{A: f[0], B: f[1], C: f[2]})
	}
	return g
}
