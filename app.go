package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/MetalSteel/OpenGLTutorial/camera"
	"github.com/MetalSteel/OpenGLTutorial/config"
	"github.com/MetalSteel/OpenGLTutorial/input"
	"github.com/MetalSteel/OpenGLTutorial/render"
	"github.com/MetalSteel/OpenGLTutorial/shaders"
)

// App holds everything the render loop and the input callbacks share.
type App struct {
	windowHandler *WindowHandler
	camera        *camera.Camera
	controller    *input.CameraController
	renderer      *render.Renderer
	scene         render.Scene
	shaderFS      fs.FS
	watcher       *render.Watcher
	startTime     float64
}

func NewApp(cfg config.Config) (app *App, err error) {
	windowHandler, err := NewWindowHandler(cfg.Window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			windowHandler.destroy()
		}
	}()

	dev, err := render.NewGLDevice()
	if err != nil {
		return nil, err
	}

	width, height := windowHandler.framebufferSize()
	renderer := render.NewRenderer(dev, width, height)
	windowHandler.SetResizeCallback(renderer.Resize)

	cam := camera.New(cfg.Camera.Settings())
	controller := input.NewCameraController(cam)
	windowHandler.inputHandler.SetSink(controller)

	var shaderFS fs.FS = shaders.FS
	if cfg.Shaders.Dir != "" {
		shaderFS = os.DirFS(cfg.Shaders.Dir)
	}

	scene, err := render.NewScene(cfg.Scene)
	if err != nil {
		return nil, err
	}
	if err := scene.Load(dev, shaderFS); err != nil {
		scene.Delete()
		return nil, fmt.Errorf("Could not load scene %v: %w", cfg.Scene, err)
	}
	renderer.UseScene(scene)
	slog.Info("scene loaded", "scene", scene.Name(), "programs", len(scene.Programs()))

	app = &App{
		windowHandler: windowHandler,
		camera:        cam,
		controller:    controller,
		renderer:      renderer,
		scene:         scene,
		shaderFS:      shaderFS,
		startTime:     windowHandler.getTime(),
	}

	if cfg.Shaders.Watch {
		watcher, err := render.NewWatcher(cfg.Shaders.Dir)
		if err != nil {
			scene.Delete()
			return nil, err
		}
		app.watcher = watcher
		slog.Info("watching shaders", "dir", cfg.Shaders.Dir)
	}

	return app, nil
}

func (app *App) Run() {
	for !app.windowHandler.shouldClose() {
		app.windowHandler.startFrame()

		if app.controller.QuitRequested() {
			app.windowHandler.close()
		}
		app.controller.Update(app.windowHandler.getTimeSinceLastFrame())
		app.renderer.SetWireframe(app.controller.Wireframe())

		if app.watcher != nil {
			if changed := app.watcher.Changed(); len(changed) > 0 {
				app.scene.Reload(app.renderer.Device, app.shaderFS, changed)
			}
		}

		app.renderer.BeginFrame()
		app.scene.Draw(app.renderer, app.frame())

		app.windowHandler.endFrame()
	}
}

func (app *App) frame() render.Frame {
	return render.Frame{
		View:           app.camera.ViewMatrix(),
		Projection:     app.camera.ProjectionMatrix(app.renderer.Aspect(), render.NearPlane, render.FarPlane),
		CameraPosition: app.camera.Position(),
		Time:           float32(app.windowHandler.getTime() - app.startTime),
	}
}

func (app *App) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.scene.Delete()
	app.windowHandler.destroy()
	return err
}
