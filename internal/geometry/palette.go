package geometry

import "github.com/go-gl/mathgl/mgl32"

// Brick face colors, one per quad in face order front, right, back, left, top, bottom
var Palette = [QuadCount]mgl32.Vec3{
	HexColor(0x009933), // dark green
	HexColor(0x9966ff), // soft purple
	HexColor(0x0000ff), // dark blue
	HexColor(0x66ff99), // mint green
	HexColor(0x009999), // aqua blue
	HexColor(0x00ffff), // light blue
}
