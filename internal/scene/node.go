// Package scene is a minimal retained scene graph: nodes carry a transform
// and optionally a mesh, and own their children.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is an element of the scene graph. A node without a Mesh acts as a group.
type Node struct {
	Name     string
	Position mgl32.Vec3
	// Rotation is an Euler rotation in radians applied in X, Y, Z order
	Rotation mgl32.Vec3
	Mesh     *Mesh
	Children []*Node
}

// NewGroup creates an empty named group node
func NewGroup(name string) *Node {
	return &Node{Name: name}
}

// NewMeshNode creates a node that draws the given mesh
func NewMeshNode(name string, mesh *Mesh) *Node {
	return &Node{Name: name, Mesh: mesh}
}

// Add appends children to the node
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Clone copies the node and its whole subtree. Meshes are shared, transforms are not.
func (n *Node) Clone() *Node {
	out := &Node{
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Mesh:     n.Mesh,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// LocalMatrix returns T * Rx * Ry * Rz for this node
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2]).
		Mul4(mgl32.HomogRotate3DX(n.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation[2]))
}

// Walk visits the node and every descendant depth-first, parents before
// children, passing each node's world matrix
func (n *Node) Walk(fn func(node *Node, world mgl32.Mat4)) {
	n.walk(mgl32.Ident4(), fn)
}

func (n *Node) walk(parent mgl32.Mat4, fn func(*Node, mgl32.Mat4)) {
	world := parent.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// Find returns the first node in the subtree with the given name, or nil
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// MeshCount returns the number of mesh-bearing nodes in the subtree
func (n *Node) MeshCount() int {
	count := 0
	n.Walk(func(node *Node, _ mgl32.Mat4) {
		if node.Mesh != nil {
			count++
		}
	})
	return count
}
