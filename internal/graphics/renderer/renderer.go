package renderer

import (
	"log/slog"
	"time"

	"turnstile/internal/graphics"
	"turnstile/internal/profiling"
	"turnstile/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// slowRender is the render duration above which the per-renderable breakdown is logged
const slowRender = 16 * time.Millisecond

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	clearColor  mgl32.Vec3
	status      func() []string
	tracker     *profiling.Tracker
	log         *slog.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithClearColor sets the background color
func WithClearColor(c mgl32.Vec3) Option {
	return func(r *Renderer) { r.clearColor = c }
}

// WithStatus sets the source of overlay status lines
func WithStatus(fn func() []string) Option {
	return func(r *Renderer) { r.status = fn }
}

// WithLogger sets the logger used for slow render reports
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs []Renderable, opts ...Option) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		clearColor:  mgl32.Vec3{1, 1, 1},
		tracker:     profiling.NewTracker(),
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(renderer)
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return renderer, nil
}

// Render draws the scene as seen from the camera
func (r *Renderer) Render(root *scene.Node, camera graphics.Camera) {
	r.tracker.Reset()
	stop := r.tracker.Track("renderer.Render")

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: camera,
		Root:   root,
		View:   camera.ViewMatrix(),
		Proj:   camera.Projection(),
	}
	if r.status != nil {
		ctx.Status = r.status()
	}

	for _, renderable := range r.renderables {
		done := r.tracker.Track(profiling.NameOf(renderable))
		renderable.Render(ctx)
		done()
	}

	stop()
	if total := r.tracker.Get("renderer.Render"); total > slowRender {
		r.log.Warn("slow render", "duration", total, "top", r.tracker.TopN(3))
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport forwards new framebuffer dimensions to every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
