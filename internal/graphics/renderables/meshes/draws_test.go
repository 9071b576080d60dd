package meshes

import (
	"testing"

	"turnstile/internal/geometry"
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectDrawsOrdersDoubleSidedLast(t *testing.T) {
	flat := scene.NewMesh(geometry.NewPlane(1, 1), scene.Material{DoubleSided: true})
	box := scene.NewMesh(geometry.NewBlock(1), scene.Material{})

	root := scene.NewGroup("root")
	group := scene.NewGroup("group")
	group.Position = mgl32.Vec3{0, 10, 0}
	boxNode := scene.NewMeshNode("box", box)
	boxNode.Position = mgl32.Vec3{1, 0, 0}
	group.Add(boxNode)
	root.Add(scene.NewMeshNode("ground", flat), group)

	draws := CollectDraws(root)
	require.Len(t, draws, 2)
	assert.Same(t, box, draws[0].Mesh)
	assert.Same(t, flat, draws[1].Mesh)

	origin := draws[0].Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.Equal(t, mgl32.Vec3{1, 10, 0}, origin)
}

func TestCollectDrawsNilRoot(t *testing.T) {
	assert.Nil(t, CollectDraws(nil))
}
