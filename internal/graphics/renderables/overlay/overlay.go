package overlay

import (
	"image"
	"path/filepath"
	"slices"

	"turnstile/internal/graphics"
	renderer "turnstile/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderName is the base name of the overlay shader pair inside the shaders directory
const ShaderName = "overlay"

// Overlay draws the status lines from the render context as a text panel in
// the top-left corner of the window
type Overlay struct {
	shadersDir string
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	texture    uint32

	lines  []string
	size   image.Point
	width  int
	height int
}

// NewOverlay creates a new overlay renderable
func NewOverlay(shadersDir string, width, height int) *Overlay {
	return &Overlay{shadersDir: shadersDir, width: width, height: height}
}

// Init compiles the shader and allocates the quad buffers
func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.LoadShader(filepath.Join(o.shadersDir, ShaderName), ShaderName)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	// 6 vertices of (x, y, u, v), filled per panel size
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)
	return nil
}

// Render draws the panel, re-rasterizing only when the text changed
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if len(ctx.Status) == 0 {
		return
	}
	if !slices.Equal(o.lines, ctx.Status) {
		o.refresh(ctx.Status)
	}
	if o.texture == 0 {
		return
	}

	proj := mgl32.Ortho2D(0, float32(o.width), float32(o.height), 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMatrix4("proj", &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	o.shader.SetInt("panel", 0)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}

// SetViewport updates the pixel projection
func (o *Overlay) SetViewport(width, height int) {
	o.width = width
	o.height = height
}

func (o *Overlay) refresh(lines []string) {
	o.lines = slices.Clone(lines)
	img := RasterizeText(lines)
	if img == nil {
		return
	}

	if o.texture == 0 {
		o.texture = graphics.UploadRGBA(img)
	} else {
		graphics.ReplaceRGBA(o.texture, img)
	}

	size := img.Rect.Size()
	if size == o.size {
		return
	}
	o.size = size
	quad := PanelQuad(float32(size.X), float32(size.Y))
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(quad))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// PanelQuad returns two triangles covering (0,0)..(w,h) in pixel space with
// texture coordinates matching image row order
func PanelQuad(w, h float32) []float32 {
	return []float32{
		0, 0, 0, 0,
		0, h, 0, 1,
		w, h, 1, 1,
		w, h, 1, 1,
		w, 0, 1, 0,
		0, 0, 0, 0,
	}
}
