// Package wall assembles the brick walls on either side of the turnstile.
package wall

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"turnstile/internal/geometry"
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Wall layout
const (
	Columns = 5
	Rows    = 4
)

// GroupName is the name of the node holding both walls
const GroupName = "walls"

// ErrInvalidSide is returned for a side that is neither Left nor Right
var ErrInvalidSide = errors.New("invalid wall side")

// Side selects which wall to build
type Side int

const (
	Left Side = iota + 1
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is Left or Right
func (s Side) Valid() bool {
	return s == Left || s == Right
}

// Direction is the sign of the X axis the wall grows along: -1 for Left, +1 for Right
func (s Side) Direction() float32 {
	switch s {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

// ParseSide converts "left" or "right" (case-insensitive) into a Side
func ParseSide(tag string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, tag)
	}
}

// Interlocked reports whether the brick at (row, col) gets the extra quarter
// turn. Every second brick in row-major order is turned.
func Interlocked(row, col int) bool {
	return (row*Columns+col)%2 == 1
}

// BrickTransform returns the local position and rotation of the brick at
// (row, col) inside a wall group
func BrickTransform(side Side, row, col int) (position, rotation mgl32.Vec3) {
	dir := side.Direction()
	const half = geometry.BlockWidth / 2
	position = mgl32.Vec3{
		dir*half + dir*geometry.BlockWidth*float32(col),
		half + geometry.BlockWidth*float32(row),
		0,
	}
	rotation = mgl32.Vec3{math.Pi, 0, 0}
	if Interlocked(row, col) {
		rotation[0] += math.Pi / 2
	}
	return position, rotation
}

// Build assembles one wall of Rows x Columns bricks in running bond. The
// group itself is shifted one block width outward so the two walls leave a
// gap for the turnstile.
func Build(side Side) (*scene.Node, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSide, side)
	}
	brick := scene.NewMeshNode("brick", NewColoredBrick())

	group := scene.NewGroup(side.String() + "-wall")
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			b := brick.Clone()
			b.Name = fmt.Sprintf("brick-%d-%d", row, col)
			b.Position, b.Rotation = BrickTransform(side, row, col)
			group.Add(b)
		}
	}
	group.Position[0] = side.Direction() * geometry.BlockWidth
	return group, nil
}

// BuildWalls builds the left and right walls under a single group that
// rotates them together
func BuildWalls() (*scene.Node, error) {
	walls := scene.NewGroup(GroupName)
	for _, side := range []Side{Left, Right} {
		w, err := Build(side)
		if err != nil {
			return nil, err
		}
		walls.Add(w)
	}
	return walls, nil
}
