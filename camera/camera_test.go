package camera

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertOrthonormal(t *testing.T, c *Camera) {
	t.Helper()
	front, up, right := c.Front(), c.Up(), c.Right()
	assert.InDelta(t, 1, front.Len(), epsilon, "front length")
	assert.InDelta(t, 1, up.Len(), epsilon, "up length")
	assert.InDelta(t, 1, right.Len(), epsilon, "right length")
	assert.InDelta(t, 0, front.Dot(up), epsilon, "front.up")
	assert.InDelta(t, 0, front.Dot(right), epsilon, "front.right")
	assert.InDelta(t, 0, up.Dot(right), epsilon, "up.right")
}

// assertVecNear compares component-wise with an absolute tolerance.
// cos(-90°) is -4.37e-8 in float32, not 0.
func assertVecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], epsilon, msgAndArgs...)
}

func assertMatNear(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], epsilon, "got %v want %v", got, want)
}

func TestDefaultViewMatrix(t *testing.T) {
	c := New(DefaultSettings())

	assertVecNear(t, mgl32.Vec3{0, 0, -1}, c.Front(), "front")
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.Up(), "up")
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.Right(), "right")

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	assertMatNear(t, want, c.ViewMatrix())
}

func TestBasisOrthonormal(t *testing.T) {
	for yaw := float32(-360); yaw <= 360; yaw += 15 {
		for pitch := -MaxPitch; pitch <= MaxPitch; pitch += 8.9 {
			s := DefaultSettings()
			s.Yaw = yaw
			s.Pitch = pitch
			assertOrthonormal(t, New(s))
		}
	}
}

func TestFirstMouseSampleDoesNotRotate(t *testing.T) {
	for _, pos := range [][2]float32{{0, 0}, {400, 300}, {-1e6, 1e6}} {
		c := New(DefaultSettings())
		c.ApplyMouseDelta(pos[0], pos[1])
		assert.Equal(t, float32(-90), c.Yaw())
		assert.Equal(t, float32(0), c.Pitch())
	}
}

func TestMouseDelta(t *testing.T) {
	c := New(DefaultSettings())
	c.ApplyMouseDelta(400, 300)
	c.ApplyMouseDelta(500, 200)

	// +100 px right, 100 px up
	assert.InDelta(t, -90+100*0.03, c.Yaw(), epsilon)
	assert.InDelta(t, 100*0.03, c.Pitch(), epsilon)
	assertOrthonormal(t, c)
}

func TestResetMouse(t *testing.T) {
	c := New(DefaultSettings())
	c.ApplyMouseDelta(0, 0)
	c.ApplyMouseDelta(10, 0)
	yaw := c.Yaw()

	c.ResetMouse()
	c.ApplyMouseDelta(5000, 5000)
	assert.Equal(t, yaw, c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
}

func TestPitchClamped(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	c := New(DefaultSettings())
	c.ApplyMouseDelta(0, 0)
	for i := 0; i < 1000; i++ {
		c.ApplyMouseDelta(r.Float32()*1e5-5e4, r.Float32()*1e6-5e5)
		require.GreaterOrEqual(t, c.Pitch(), -MaxPitch)
		require.LessOrEqual(t, c.Pitch(), MaxPitch)
	}
	assertOrthonormal(t, c)

	c.ApplyMouseDelta(0, -1e9)
	assert.Equal(t, MaxPitch, c.Pitch())
	c.ApplyMouseDelta(0, 1e9)
	assert.Equal(t, -MaxPitch, c.Pitch())
}

func TestScroll(t *testing.T) {
	c := New(DefaultSettings())
	c.ApplyScroll(10)
	assert.Equal(t, float32(35), c.FOV())
	c.ApplyScroll(50)
	assert.Equal(t, float32(1), c.FOV())
	c.ApplyScroll(-500)
	assert.Equal(t, float32(90), c.FOV())
}

func TestScrollStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	c := New(DefaultSettings())
	for i := 0; i < 1000; i++ {
		c.ApplyScroll(r.Float32()*40 - 20)
		require.GreaterOrEqual(t, c.FOV(), MinFOV)
		require.LessOrEqual(t, c.FOV(), c.MaxFOV())
	}
}

func TestSetMaxFOVReclamps(t *testing.T) {
	c := New(DefaultSettings())
	c.SetMaxFOV(30)
	assert.Equal(t, float32(30), c.FOV())
	c.SetMaxFOV(0)
	assert.Equal(t, MinFOV, c.MaxFOV())
	assert.Equal(t, MinFOV, c.FOV())
}

func TestNewClampsSettings(t *testing.T) {
	s := DefaultSettings()
	s.Pitch = 120
	s.FOV = 200
	c := New(s)
	assert.Equal(t, MaxPitch, c.Pitch())
	assert.Equal(t, float32(90), c.FOV())
	assertOrthonormal(t, c)
}

func TestMovementRoundTrip(t *testing.T) {
	tests := []struct {
		there, back Movement
	}{
		{Forward, Backward},
		{Backward, Forward},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		t.Run(tt.there.String(), func(t *testing.T) {
			s := DefaultSettings()
			s.Yaw = 33
			s.Pitch = -20
			c := New(s)
			start := c.Position()
			c.ApplyMovement(tt.there, 0.016)
			assert.InDelta(t, 2.5*0.016, c.Position().Sub(start).Len(), epsilon, "moved")
			c.ApplyMovement(tt.back, 0.016)
			assertVecNear(t, start, c.Position())
		})
	}
}

func TestMovementScalesWithDeltaTime(t *testing.T) {
	c := New(DefaultSettings())
	c.ApplyMovement(Forward, 2)
	// speed 2.5 along -Z for 2 seconds
	assertVecNear(t, mgl32.Vec3{0, 0, -2}, c.Position())

	c.ApplyMovement(Right, 0.4)
	assert.InDelta(t, 1, c.Position().X(), epsilon)
}

func TestProjectionMatrixUsesFOV(t *testing.T) {
	c := New(DefaultSettings())
	want := mgl32.Perspective(45*math32.Pi/180, 800.0/600.0, 0.1, 100)
	assertMatNear(t, want, c.ProjectionMatrix(800.0/600.0, 0.1, 100))
}
