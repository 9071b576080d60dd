package main

import (
	"log/slog"
	"os"
	"runtime"

	"turnstile/internal/config"
	"turnstile/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		closer.Fatalln(err)
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		closer.Fatalln(err)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	log.Info("turnstile starting", "config", cfgPath, "log_level", level)
	// GL teardown stays on the main thread in the defers below
	closer.Bind(func() {
		log.Info("turnstile stopped")
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		closer.Fatalln("create window:", err)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, cfg, log)
	if err != nil {
		closer.Fatalln(err)
	}
	defer app.Dispose()

	app.Run()
}
