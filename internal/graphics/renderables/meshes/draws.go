package meshes

import (
	"turnstile/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw is one mesh instance ready to be submitted
type Draw struct {
	Mesh  *scene.Mesh
	Model mgl32.Mat4
}

// CollectDraws flattens the scene graph into draw calls in traversal order.
// Single-sided meshes come first so double-sided ones only toggle culling once.
func CollectDraws(root *scene.Node) []Draw {
	if root == nil {
		return nil
	}
	var single, double []Draw
	root.Walk(func(n *scene.Node, world mgl32.Mat4) {
		if n.Mesh == nil {
			return
		}
		d := Draw{Mesh: n.Mesh, Model: world}
		if n.Mesh.Material.DoubleSided {
			double = append(double, d)
		} else {
			single = append(single, d)
		}
	})
	return append(single, double...)
}
