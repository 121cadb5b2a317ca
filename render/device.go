package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Device is the part of the graphics API used by this package.
// Every call must happen on the thread that owns the GL context.
type Device interface {
	CreateShader(stage Stage) uint32
	// CompileShader reports whether compilation succeeded and returns the info log.
	CompileShader(shader uint32, source string) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	// LinkProgram attaches the shaders, links and reports the result with the info log.
	LinkProgram(program uint32, shaders ...uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	UniformMatrix4f(location int32, m mgl32.Mat4)

	// CreateMesh uploads vertices and indices (indices may be nil) and
	// describes the vertex layout, one entry per attribute holding its float count.
	CreateMesh(vertices []float32, indices []uint32, layout []int32) (vao uint32)
	DrawArrays(vao uint32, count int32)
	DrawElements(vao uint32, count int32)
	DeleteMesh(vao uint32)

	Clear(color mgl32.Vec4)
	Viewport(width, height int32)
	// SetWireframe switches both polygon faces between line and fill rasterization.
	SetWireframe(enabled bool)
}
