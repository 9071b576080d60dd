package game

import (
	"turnstile/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes key presses to the controller and repaints when
// the window system asks for it
func SetupInputHandlers(app *App) {
	im := app.inputManager

	// Handle keyboard actions. Escape only closes the window.
	app.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		if a := im.HandleKeyEvent(key, action); a != input.ActionNone {
			app.controller.Apply(a)
		}
	})

	// Framebuffer size changes with the monitor content scale; the window is not resizable
	app.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.resize(width, height)
	})

	// Refresh callback (window exposed or uncovered)
	app.window.SetRefreshCallback(func(w *glfw.Window) {
		app.controller.Render()
	})
}
