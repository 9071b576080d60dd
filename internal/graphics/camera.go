package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// View names one of the fixed camera positions
type View int

const (
	// ViewDefault looks at the scene from the south-east corner
	ViewDefault View = iota
	// ViewAlternate looks from the opposite corner along Z
	ViewAlternate
	// ViewFront looks straight along -Z at ground level
	ViewFront
)

var viewPositions = map[View]mgl32.Vec3{
	ViewDefault:   {300, 300, 300},
	ViewAlternate: {300, 300, -300},
	ViewFront:     {0, 0, 300},
}

func (v View) String() string {
	switch v {
	case ViewDefault:
		return "default"
	case ViewAlternate:
		return "alternate"
	case ViewFront:
		return "front"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Position returns the eye position of the view. Unknown views fall back to ViewDefault.
func (v View) Position() mgl32.Vec3 {
	if p, ok := viewPositions[v]; ok {
		return p
	}
	return viewPositions[ViewDefault]
}

// Camera is an orthographic camera. It is a value: switching views builds a
// new Camera rather than moving an existing one.
type Camera struct {
	Left, Right float32
	Top, Bottom float32
	Near, Far   float32

	View     View
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// NewOrthoCamera creates a camera whose view volume is viewLength tall and
// aspect*viewLength wide, placed at the given view and looking at the origin
func NewOrthoCamera(aspect, viewLength, near, far float32, view View) Camera {
	hw := aspect * viewLength / 2
	hh := viewLength / 2
	return Camera{
		Left:     -hw,
		Right:    hw,
		Top:      hh,
		Bottom:   -hh,
		Near:     near,
		Far:      far,
		View:     view,
		Position: view.Position(),
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// WithView returns a fresh camera with the same projection placed at another view
func (c Camera) WithView(view View) Camera {
	out := c
	out.View = view
	out.Position = view.Position()
	out.Target = mgl32.Vec3{0, 0, 0}
	out.Up = mgl32.Vec3{0, 1, 0}
	return out
}

// WithAspect returns a camera with the same height and view whose width is
// aspect times the height
func (c Camera) WithAspect(aspect float32) Camera {
	out := c
	hw := aspect * (c.Top - c.Bottom) / 2
	mid := (c.Left + c.Right) / 2
	out.Left = mid - hw
	out.Right = mid + hw
	return out
}

// Projection returns the orthographic projection matrix
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
}

// ViewMatrix returns the look-at matrix
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// AspectRatio returns width over height of the view volume
func (c Camera) AspectRatio() float32 {
	return (c.Right - c.Left) / (c.Top - c.Bottom)
}
