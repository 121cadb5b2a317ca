package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	NearPlane = float32(0.1)
	FarPlane  = float32(100.0)
)

// Frame is the per-frame state handed to a scene.
type Frame struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	Time           float32 // seconds since start
}

// DefaultClearColor is used for scenes that do not pick their own.
var DefaultClearColor = mgl32.Vec4{0, 0, 0, 1}

// ClearColorer is implemented by scenes with their own background colour.
type ClearColorer interface {
	ClearColor() mgl32.Vec4
}

type Renderer struct {
	Device     Device
	ClearColor mgl32.Vec4

	width     int32
	height    int32
	wireframe bool
}

func NewRenderer(dev Device, width, height int) *Renderer {
	r := &Renderer{
		Device:     dev,
		ClearColor: DefaultClearColor,
	}
	r.Resize(width, height)
	return r
}

func (r *Renderer) Resize(width, height int) {
	r.width = int32(width)
	r.height = int32(height)
	r.Device.Viewport(r.width, r.height)
}

// Aspect returns the framebuffer aspect ratio, 1 while the window is minimized.
func (r *Renderer) Aspect() float32 {
	if r.width <= 0 || r.height <= 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// UseScene takes the clear colour from scene when it has one.
func (r *Renderer) UseScene(scene Scene) {
	r.ClearColor = DefaultClearColor
	if c, ok := scene.(ClearColorer); ok {
		r.ClearColor = c.ClearColor()
	}
}

// SetWireframe changes the polygon mode, the device is only called when it differs.
func (r *Renderer) SetWireframe(enabled bool) {
	if enabled == r.wireframe {
		return
	}
	r.wireframe = enabled
	r.Device.SetWireframe(enabled)
}

func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

func (r *Renderer) BeginFrame() {
	r.Device.Clear(r.ClearColor)
}

// PrepareShader activates shader and passes the camera matrices to it.
func (r *Renderer) PrepareShader(shader *Shader, frame Frame) {
	shader.Use()
	shader.SetMat4("view", frame.View)
	shader.SetMat4("projection", frame.Projection)
}
