package wall

import (
	"math"
	"testing"

	"turnstile/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredBrickFacePairs(t *testing.T) {
	mesh := NewColoredBrick()
	require.True(t, mesh.Material.VertexColors)
	faces := mesh.Geometry.Faces
	require.Len(t, faces, 12)

	colors := map[mgl32.Vec3]bool{}
	for q := 0; q < geometry.QuadCount; q++ {
		assert.Equal(t, geometry.Palette[q], faces[2*q].Color, "quad %d", q)
		assert.Equal(t, faces[2*q].Color, faces[2*q+1].Color, "quad %d pair differs", q)
		colors[faces[2*q].Color] = true
	}
	assert.Len(t, colors, 6)
}

func TestColoredBrickDeterministic(t *testing.T) {
	a, b := NewColoredBrick(), NewColoredBrick()
	assert.NotSame(t, a.Geometry, b.Geometry)
	assert.Equal(t, a.Geometry, b.Geometry)
	assert.Equal(t, a.Material, b.Material)
}

func TestBuildProducesGrid(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		t.Run(side.String(), func(t *testing.T) {
			w, err := Build(side)
			require.NoError(t, err)
			require.Len(t, w.Children, Rows*Columns)

			dir := side.Direction()
			assert.Equal(t, dir*geometry.BlockWidth, w.Position[0])

			for i, b := range w.Children {
				row, col := i/Columns, i%Columns
				want := mgl32.Vec3{
					dir*20 + dir*geometry.BlockWidth*float32(col),
					20 + geometry.BlockWidth*float32(row),
					0,
				}
				assert.Equal(t, want, b.Position, "brick %d", i)

				wantRot := float32(math.Pi)
				if i%2 == 1 {
					wantRot += math.Pi / 2
				}
				assert.InDelta(t, wantRot, b.Rotation[0], 1e-6, "brick %d", i)
				assert.Zero(t, b.Rotation[1])
				assert.Zero(t, b.Rotation[2])
			}
		})
	}
}

func TestBuildSharesOneBrickMesh(t *testing.T) {
	w, err := Build(Right)
	require.NoError(t, err)
	first := w.Children[0].Mesh
	require.NotNil(t, first)
	for _, b := range w.Children[1:] {
		assert.Same(t, first, b.Mesh)
	}
}

func TestInterlockedEveryOtherBrick(t *testing.T) {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if Interlocked(row, col) {
				count++
			}
		}
	}
	assert.Equal(t, 10, count)
	assert.False(t, Interlocked(0, 0))
	assert.True(t, Interlocked(0, 1))
	// row 1 starts at index 5, which is odd
	assert.True(t, Interlocked(1, 0))
	assert.True(t, Interlocked(3, 4))
}

func TestBuildRejectsInvalidSide(t *testing.T) {
	for _, side := range []Side{0, 3, -1} {
		w, err := Build(side)
		assert.ErrorIs(t, err, ErrInvalidSide)
		assert.Nil(t, w)
	}
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("LEFT")
	require.NoError(t, err)
	assert.Equal(t, Left, s)

	s, err = ParseSide(" right ")
	require.NoError(t, err)
	assert.Equal(t, Right, s)

	_, err = ParseSide("center")
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestBuildWallsDoNotOverlap(t *testing.T) {
	walls, err := BuildWalls()
	require.NoError(t, err)
	require.Len(t, walls.Children, 2)
	assert.Equal(t, GroupName, walls.Name)
	assert.Equal(t, 40, walls.MeshCount())

	left, right := walls.Children[0], walls.Children[1]
	assert.Equal(t, "left-wall", left.Name)
	assert.Equal(t, "right-wall", right.Name)

	// innermost brick centers in world space sit 60 units from the middle
	innerLeft := left.Position.Add(left.Children[0].Position)
	innerRight := right.Position.Add(right.Children[0].Position)
	assert.Equal(t, float32(-60), innerLeft[0])
	assert.Equal(t, float32(60), innerRight[0])
}

func BenchmarkBuildWalls(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = BuildWalls()
	}
}
