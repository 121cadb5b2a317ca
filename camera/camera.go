package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinFOV   = float32(1)
	MaxPitch = float32(89)
)

// Movement is the direction of a keyboard driven camera move.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Settings holds the initial pose and tuning of a camera.
type Settings struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees, measured from +X in the XZ plane
	Pitch       float32 // degrees
	FOV         float32 // degrees
	MaxFOV      float32 // degrees
	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel
}

func DefaultSettings() Settings {
	return Settings{
		Position:    mgl32.Vec3{0, 0, 3},
		Yaw:         -90,
		Pitch:       0,
		FOV:         45,
		MaxFOV:      90,
		Speed:       2.5,
		Sensitivity: 0.03,
	}
}

// Camera is a first person camera driven by key, cursor and scroll input.
// front, up and right are derived from yaw and pitch and are only written by updateVectors.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3

	fov    float32
	maxFOV float32

	speed       float32
	sensitivity float32

	lastX      float32
	lastY      float32
	firstMouse bool
}

func New(s Settings) *Camera {
	c := &Camera{
		position:    s.Position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         s.Yaw,
		pitch:       clampPitch(s.Pitch),
		maxFOV:      math32.Max(s.MaxFOV, MinFOV),
		speed:       s.Speed,
		sensitivity: s.Sensitivity,
		firstMouse:  true,
	}
	c.fov = mgl32.Clamp(s.FOV, MinFOV, c.maxFOV)
	c.updateVectors()
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	// The second argument is the point looked at, not the direction
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, near, far)
}

// ApplyMovement moves the camera by speed*dt so that the distance covered
// per second does not depend on the frame rate.
func (c *Camera) ApplyMovement(m Movement, dt float32) {
	velocity := c.speed * dt
	switch m {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	}
}

// ApplyMouseDelta takes an absolute cursor position and turns the camera by
// the distance moved since the previous call.
func (c *Camera) ApplyMouseDelta(x, y float32) {
	if c.firstMouse {
		c.lastX = x
		c.lastY = y
		c.firstMouse = false
	}

	// Screen y grows downwards
	xOffset := (x - c.lastX) * c.sensitivity
	yOffset := (c.lastY - y) * c.sensitivity
	c.lastX = x
	c.lastY = y

	c.yaw += xOffset
	c.pitch = clampPitch(c.pitch + yOffset)
	c.updateVectors()
}

// ApplyScroll zooms in when scrolling up.
func (c *Camera) ApplyScroll(yOffset float32) {
	c.fov = mgl32.Clamp(c.fov-yOffset, MinFOV, c.maxFOV)
}

// ResetMouse makes the next cursor position the new reference point,
// e.g. after the cursor re-enters the window.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

func (c *Camera) SetMaxFOV(maxFOV float32) {
	c.maxFOV = math32.Max(maxFOV, MinFOV)
	c.fov = mgl32.Clamp(c.fov, MinFOV, c.maxFOV)
}

func (c *Camera) FOV() float32 { return c.fov }
func (c *Camera) MaxFOV() float32 { return c.maxFOV }
func (c *Camera) Yaw() float32 { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }
func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Up() mgl32.Vec3 { return c.up }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }
func (c *Camera) Speed() float32 { return c.speed }
func (c *Camera) Sensitivity() float32 { return c.sensitivity }

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Sin(yaw),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}
