// Package turnstile builds the rotating door assembly in the gap between the walls.
package turnstile

import (
	"math"

	"turnstile/internal/geometry"
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// GroupName is the name of the node holding the pole and both doors
const GroupName = "doors"

// Pole dimensions
const (
	PoleRadius   = 5
	PoleHeight   = 180
	PoleSegments = 16
)

// Door panel dimensions
const (
	DoorWidth     = 80
	DoorHeight    = 160
	DoorThickness = 10
)

var (
	PoleColor = geometry.HexColor(0x1a1a1a)
	DoorColor = geometry.HexColor(0x686868)
)

// NewDoorMesh builds one door panel standing on y=0, centered on the
// vertical axis
func NewDoorMesh() *scene.Mesh {
	g := geometry.NewCuboid(
		mgl32.Vec3{-DoorWidth / 2, 0, -DoorThickness / 2},
		mgl32.Vec3{DoorWidth / 2, DoorHeight, DoorThickness / 2},
	)
	return scene.NewMesh(g, scene.Material{Color: DoorColor})
}

// NewPoleMesh builds the center pole
func NewPoleMesh() *scene.Mesh {
	g := geometry.NewCylinder(PoleRadius, PoleRadius, PoleHeight, PoleSegments)
	return scene.NewMesh(g, scene.Material{Color: PoleColor})
}

// Build returns the door group: pole, first door, and a second door turned
// a quarter turn so both read as a cross from above
func Build() *scene.Node {
	pole := scene.NewMeshNode("pole", NewPoleMesh())
	pole.Position[1] = PoleHeight / 2

	door := scene.NewMeshNode("door", NewDoorMesh())
	door2 := door.Clone()
	door2.Name = "door2"
	door2.Rotation[1] = math.Pi / 2

	group := scene.NewGroup(GroupName)
	group.Add(pole, door, door2)
	return group
}
