package game

import (
	"fmt"
	"log/slog"

	"turnstile/internal/config"
	"turnstile/internal/graphics"
	"turnstile/internal/graphics/renderables/meshes"
	"turnstile/internal/graphics/renderables/overlay"
	"turnstile/internal/graphics/renderer"
	"turnstile/internal/input"
	"turnstile/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// help lists the key bindings shown above the status line
var help = []string{
	"q  turn doors      p  turn walls      r  reset",
	"0  corner view     1  opposite corner 2  front view",
	"esc  quit",
}

// App owns the window, the scene state and the renderer for the lifetime of the process
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	state        *State
	controller   *Controller
	cfg          config.Config
	log          *slog.Logger
}

// NewApp composes the scene and sets up rendering on the current context
func NewApp(window *glfw.Window, cfg config.Config, log *slog.Logger) (*App, error) {
	width, height := window.GetSize()
	state, err := Compose(cfg, windowAspect(width, height, cfg))
	if err != nil {
		return nil, err
	}

	rs := []renderer.Renderable{meshes.NewMeshes(cfg.ShadersDir)}
	opts := []renderer.Option{
		renderer.WithClearColor(mgl32.Vec3{1, 1, 1}),
		renderer.WithLogger(log),
	}
	if cfg.ShowHelp {
		rs = append(rs, overlay.NewOverlay(cfg.ShadersDir, width, height))
		opts = append(opts, renderer.WithStatus(func() []string {
			return append(append([]string{}, help...), state.Status()...)
		}))
	}

	r, err := renderer.NewRenderer(rs, opts...)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	app := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		renderer:     r,
		state:        state,
		cfg:          cfg,
		log:          log,
	}
	app.controller = NewController(state, RendererFunc(app.present), cfg.RotationStep, log)

	log.Info("scene composed",
		"meshes", state.Root.MeshCount(),
		"view", state.Camera.View,
		"window", fmt.Sprintf("%dx%d", width, height),
	)
	return app, nil
}

// Run draws the first frame and then sleeps until events arrive, until the window closes
func (a *App) Run() {
	SetupInputHandlers(a)
	a.controller.Render()

	for !a.window.ShouldClose() {
		glfw.WaitEvents()
	}
}

// Dispose releases GPU resources
func (a *App) Dispose() {
	a.renderer.Dispose()
}

// resize follows a framebuffer size change, for example after the window
// moves to a monitor with another content scale
func (a *App) resize(fbWidth, fbHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	width, height := a.window.GetSize()
	a.renderer.UpdateViewport(width, height)
	if a.state.SetAspect(windowAspect(width, height, a.cfg)) {
		a.log.Debug("camera aspect changed", "window", fmt.Sprintf("%dx%d", width, height))
	}
	a.controller.Render()
}

// windowAspect is width over height, or the configured ratio while the
// window has no area
func windowAspect(width, height int, cfg config.Config) float32 {
	if width <= 0 || height <= 0 {
		return cfg.AspectRatio()
	}
	return float32(width) / float32(height)
}

func (a *App) present(root *scene.Node, camera graphics.Camera) {
	a.renderer.Render(root, camera)
	a.window.SwapBuffers()
}
