package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const floatSize = 4

type meshBuffers struct {
	vbo uint32
	ebo uint32
}

// GLDevice implements Device with OpenGL 4.1 core.
type GLDevice struct {
	meshes map[uint32]meshBuffers
}

// NewGLDevice loads the GL function pointers for the current context.
// The window's context must already be current on the calling thread.
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("Could not initialize OpenGL: %w", err)
	}

	slog.Info("OpenGL context ready",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)

	return &GLDevice{
		meshes: make(map[uint32]meshBuffers),
	}, nil
}

func (d *GLDevice) CreateShader(stage Stage) uint32 {
	switch stage {
	case FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *GLDevice) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (d *GLDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *GLDevice) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *GLDevice) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *GLDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *GLDevice) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *GLDevice) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *GLDevice) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (d *GLDevice) UniformMatrix4f(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *GLDevice) CreateMesh(vertices []float32, indices []uint32, layout []int32) uint32 {
	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	var stride int32
	for _, size := range layout {
		stride += size
	}

	offset := 0
	for i, size := range layout {
		gl.VertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride*floatSize, gl.PtrOffset(offset*floatSize))
		gl.EnableVertexAttribArray(uint32(i))
		offset += int(size)
	}

	gl.BindVertexArray(0)
	d.meshes[vao] = meshBuffers{vbo: vbo, ebo: ebo}
	return vao
}

func (d *GLDevice) DrawArrays(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}

func (d *GLDevice) DrawElements(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

func (d *GLDevice) DeleteMesh(vao uint32) {
	buffers, ok := d.meshes[vao]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteBuffers(1, &buffers.vbo)
	if buffers.ebo != 0 {
		gl.DeleteBuffers(1, &buffers.ebo)
	}
	delete(d.meshes, vao)
}

func (d *GLDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *GLDevice) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
