package scene

import (
	"math"
	"testing"

	"turnstile/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneSharesMeshButNotTransform(t *testing.T) {
	mesh := NewMesh(geometry.NewBlock(1), Material{})
	root := NewGroup("root")
	child := NewMeshNode("child", mesh)
	child.Position = mgl32.Vec3{1, 2, 3}
	root.Add(child)

	clone := root.Clone()
	require.Len(t, clone.Children, 1)
	assert.Same(t, mesh, clone.Children[0].Mesh)
	assert.NotSame(t, child, clone.Children[0])

	clone.Children[0].Position = mgl32.Vec3{}
	clone.Children[0].Rotation[0] = 1
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, child.Position)
	assert.Equal(t, float32(0), child.Rotation[0])
}

func TestWalkComposesParentTransforms(t *testing.T) {
	root := NewGroup("root")
	root.Rotation[1] = math.Pi / 2
	child := NewMeshNode("child", nil)
	child.Position = mgl32.Vec3{10, 0, 0}
	root.Add(child)

	var got mgl32.Vec3
	root.Walk(func(n *Node, world mgl32.Mat4) {
		if n == child {
			got = world.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		}
	})
	// a quarter turn about Y maps +X onto -Z
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -10}, 1e-4), "got %v", got)
}

func TestLocalMatrixOrder(t *testing.T) {
	n := NewGroup("n")
	n.Position = mgl32.Vec3{0, 5, 0}
	n.Rotation[0] = math.Pi / 2

	// rotation is applied before translation: +Z rotates onto -Y, then lifts by 5
	p := n.LocalMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1}).Vec3()
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{0, 4, 0}, 1e-4), "got %v", p)
}

func TestFindAndMeshCount(t *testing.T) {
	mesh := NewMesh(geometry.NewBlock(1), Material{})
	root := NewGroup("root")
	walls := NewGroup("walls")
	walls.Add(NewMeshNode("a", mesh), NewMeshNode("b", mesh))
	root.Add(walls, NewMeshNode("c", mesh))

	assert.Same(t, walls, root.Find("walls"))
	assert.Nil(t, root.Find("missing"))
	assert.Equal(t, 3, root.MeshCount())
}

func TestMeshVerticesUsesMaterial(t *testing.T) {
	g := geometry.NewPlane(2, 2)
	g.SetColor(mgl32.Vec3{0, 1, 0})

	solid := NewMesh(g, Material{Color: mgl32.Vec3{1, 0, 0}})
	assert.Equal(t, []float32{1, 0, 0}, solid.Vertices()[3:6])

	colored := NewMesh(g, Material{Color: mgl32.Vec3{1, 0, 0}, VertexColors: true})
	assert.Equal(t, []float32{0, 1, 0}, colored.Vertices()[3:6])
}
