package meshes

import (
	"path/filepath"

	"turnstile/internal/geometry"
	"turnstile/internal/graphics"
	renderer "turnstile/internal/graphics/renderer"
	"turnstile/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderName is the base name of the scene shader pair inside the shaders directory
const ShaderName = "scene"

type gpuMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// Meshes draws every mesh node of the scene graph with flat, unlit colors.
// Each distinct mesh is uploaded once and shared by all nodes that use it.
type Meshes struct {
	shadersDir string
	shader     *graphics.Shader
	uploaded   map[*scene.Mesh]*gpuMesh
}

// NewMeshes creates a new mesh renderable
func NewMeshes(shadersDir string) *Meshes {
	return &Meshes{
		shadersDir: shadersDir,
		uploaded:   make(map[*scene.Mesh]*gpuMesh),
	}
}

// Init compiles the scene shader
func (m *Meshes) Init() error {
	var err error
	m.shader, err = graphics.LoadShader(filepath.Join(m.shadersDir, ShaderName), ShaderName)
	return err
}

// Render draws all meshes reachable from ctx.Root
func (m *Meshes) Render(ctx renderer.RenderContext) {
	draws := CollectDraws(ctx.Root)
	if len(draws) == 0 {
		return
	}

	m.shader.Use()
	m.shader.SetMatrix4("proj", &ctx.Proj[0])
	m.shader.SetMatrix4("view", &ctx.View[0])

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	culling := true
	for _, d := range draws {
		gm := m.upload(d.Mesh)
		if d.Mesh.Material.DoubleSided == culling {
			culling = !culling
			if culling {
				gl.Enable(gl.CULL_FACE)
			} else {
				gl.Disable(gl.CULL_FACE)
			}
		}
		model := d.Model
		m.shader.SetMatrix4("model", &model[0])
		gl.BindVertexArray(gm.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, gm.vertexCount)
	}
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

// Dispose cleans up OpenGL resources
func (m *Meshes) Dispose() {
	for mesh, gm := range m.uploaded {
		gl.DeleteVertexArrays(1, &gm.vao)
		gl.DeleteBuffers(1, &gm.vbo)
		delete(m.uploaded, mesh)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}

// SetViewport is a no-op; the camera carries the projection
func (m *Meshes) SetViewport(width, height int) {}

func (m *Meshes) upload(mesh *scene.Mesh) *gpuMesh {
	if gm, ok := m.uploaded[mesh]; ok {
		return gm
	}
	vertices := mesh.Vertices()
	gm := &gpuMesh{vertexCount: int32(len(vertices) / geometry.FloatsPerVertex)}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	m.uploaded[mesh] = gm
	return gm
}
