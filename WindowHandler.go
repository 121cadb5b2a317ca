package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MetalSteel/OpenGLTutorial/config"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler

	firstFrame    bool
	deltaTime     float64
	lastFrameTime float64

	onResize func(width, height int)
}

// NewWindowHandler creates the window and makes its context current.
// glfw.Init must have been called on the locked main thread.
func NewWindowHandler(cfg config.Window) (*WindowHandler, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not create OpenGL window: %w", err)
	}
	glfwWindow.MakeContextCurrent()

	// Hide the cursor and keep it in the window for mouse look
	glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	windowHandler := &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: NewInputHandler(),
		firstFrame:   true,
	}
	glfwWindow.SetFramebufferSizeCallback(windowHandler.framebufferSizeCallback)
	windowHandler.inputHandler.attach(glfwWindow)

	return windowHandler, nil
}

func (windowHandler *WindowHandler) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	if windowHandler.onResize != nil {
		windowHandler.onResize(width, height)
	}
}

// SetResizeCallback registers fn for framebuffer size changes.
func (windowHandler *WindowHandler) SetResizeCallback(fn func(width, height int)) {
	windowHandler.onResize = fn
}

func (windowHandler *WindowHandler) framebufferSize() (int, int) {
	return windowHandler.glfwWindow.GetFramebufferSize()
}

// startFrame polls window events and updates the frame time.
func (windowHandler *WindowHandler) startFrame() {
	// Window events for keyboard and mouse
	glfw.PollEvents()

	currentFrameTime := glfw.GetTime()

	if windowHandler.firstFrame {
		windowHandler.lastFrameTime = currentFrameTime
		windowHandler.firstFrame = false
	}

	windowHandler.deltaTime = currentFrameTime - windowHandler.lastFrameTime
	windowHandler.lastFrameTime = currentFrameTime
}

func (windowHandler *WindowHandler) endFrame() {
	windowHandler.glfwWindow.SwapBuffers()
}

func (windowHandler *WindowHandler) close() {
	windowHandler.glfwWindow.SetShouldClose(true)
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) getTimeSinceLastFrame() float64 {
	return windowHandler.deltaTime
}

func (windowHandler *WindowHandler) getTime() float64 {
	return glfw.GetTime()
}

func (windowHandler *WindowHandler) destroy() {
	windowHandler.glfwWindow.Destroy()
}
