package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MetalSteel/OpenGLTutorial/input"
)

// InputHandler turns GLFW callbacks into input.Sink events.
type InputHandler struct {
	keyToAction map[glfw.Key]input.Action
	sink        input.Sink
}

func NewInputHandler() *InputHandler {
	actionToKeyMap := map[input.Action]glfw.Key{
		input.MoveForward:  glfw.KeyW,
		input.MoveBackward: glfw.KeyS,
		input.MoveLeft:     glfw.KeyA,
		input.MoveRight:    glfw.KeyD,
		input.Quit:         glfw.KeyEscape,
		input.Wireframe:    glfw.KeyQ,
		input.Fill:         glfw.KeyE,
	}

	keyToAction := make(map[glfw.Key]input.Action, len(actionToKeyMap))
	for action, key := range actionToKeyMap {
		keyToAction[key] = action
	}

	return &InputHandler{
		keyToAction: keyToAction,
	}
}

// SetSink registers the receiver of all input events.
func (handler *InputHandler) SetSink(sink input.Sink) {
	handler.sink = sink
}

func (handler *InputHandler) attach(window *glfw.Window) {
	window.SetKeyCallback(handler.keyCallback)
	window.SetCursorPosCallback(handler.cursorPosCallback)
	window.SetCursorEnterCallback(handler.cursorEnterCallback)
	window.SetScrollCallback(handler.scrollCallback)
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {

	a, ok := handler.keyToAction[key]
	if !ok || handler.sink == nil {
		return
	}

	switch action {
	case glfw.Press:
		handler.sink.ActionChanged(a, true)
	case glfw.Release:
		handler.sink.ActionChanged(a, false)
	}
}

func (handler *InputHandler) cursorPosCallback(window *glfw.Window, x float64, y float64) {
	if handler.sink != nil {
		handler.sink.CursorMoved(x, y)
	}
}

func (handler *InputHandler) cursorEnterCallback(window *glfw.Window, entered bool) {
	if handler.sink != nil {
		handler.sink.CursorEntered(entered)
	}
}

func (handler *InputHandler) scrollCallback(window *glfw.Window, xoff float64, yoff float64) {
	if handler.sink != nil {
		handler.sink.Scrolled(xoff, yoff)
	}
}
