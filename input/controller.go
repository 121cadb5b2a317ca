package input

import (
	"github.com/MetalSteel/OpenGLTutorial/camera"
)

var movements = map[Action]camera.Movement{
	MoveForward:  camera.Forward,
	MoveBackward: camera.Backward,
	MoveLeft:     camera.Left,
	MoveRight:    camera.Right,
}

// CameraController drives a camera from input events. Movement keys are
// sampled, so a held key moves the camera on every Update.
type CameraController struct {
	camera  *camera.Camera
	pressed   [actionCount]bool
	quit      bool
	wireframe bool
}

func NewCameraController(c *camera.Camera) *CameraController {
	return &CameraController{camera: c}
}

func (c *CameraController) Camera() *camera.Camera {
	return c.camera
}

func (c *CameraController) ActionChanged(a Action, pressed bool) {
	if a < 0 || a >= actionCount {
		return
	}
	c.pressed[a] = pressed
	if !pressed {
		return
	}
	switch a {
	case Quit:
		c.quit = true
	case Wireframe:
		c.wireframe = true
	case Fill:
		c.wireframe = false
	}
}

func (c *CameraController) CursorMoved(x, y float64) {
	c.camera.ApplyMouseDelta(float32(x), float32(y))
}

func (c *CameraController) CursorEntered(entered bool) {
	if entered {
		c.camera.ResetMouse()
	}
}

func (c *CameraController) Scrolled(xOffset, yOffset float64) {
	c.camera.ApplyScroll(float32(yOffset))
}

func (c *CameraController) IsActive(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return c.pressed[a]
}

// Update moves the camera for every movement key held down, dt is the
// time since the previous frame in seconds.
func (c *CameraController) Update(dt float64) {
	for _, a := range []Action{MoveForward, MoveBackward, MoveLeft, MoveRight} {
		if c.pressed[a] {
			c.camera.ApplyMovement(movements[a], float32(dt))
		}
	}
}

func (c *CameraController) QuitRequested() bool {
	return c.quit
}

// Wireframe reports whether polygons should be drawn as outlines.
func (c *CameraController) Wireframe() bool {
	return c.wireframe
}
