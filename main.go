package main

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	flag "github.com/spf13/pflag"

	"github.com/MetalSteel/OpenGLTutorial/config"
	"github.com/MetalSteel/OpenGLTutorial/render"
)

func init() {
	// GLFW and GL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.StringP("config", "c", "", "config file (.toml, .yaml)")
	scene := flag.StringP("scene", "s", "", "scene to draw: "+strings.Join(render.SceneNames(), ", "))
	shaderDir := flag.String("shader-dir", "", "load shaders from this directory instead of the bundled ones")
	watch := flag.Bool("watch", false, "reload shaders from --shader-dir when they change")
	width := flag.Int("width", 0, "window width")
	height := flag.Int("height", 0, "window height")
	verbose := flag.BoolP("verbose", "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			slog.Error("could not load config", "path", *configPath, "err", err)
			return 1
		}
	}

	if flag.CommandLine.Changed("scene") {
		cfg.Scene = *scene
	}
	if flag.CommandLine.Changed("shader-dir") {
		cfg.Shaders.Dir = *shaderDir
	}
	if flag.CommandLine.Changed("watch") {
		cfg.Shaders.Watch = *watch
	}
	if flag.CommandLine.Changed("width") {
		cfg.Window.Width = *width
	}
	if flag.CommandLine.Changed("height") {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		return 1
	}

	if err := glfw.Init(); err != nil {
		slog.Error("Could not initialize glfw", "err", err)
		return 1
	}
	defer glfw.Terminate()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		return 1
	}
	defer app.Close()

	app.Run()
	return 0
}
