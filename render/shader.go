package render

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// StageError is the compile log of one shader stage, or the link log
// when Stage is nil.
type StageError struct {
	Stage *Stage
	Log   string
}

func (e *StageError) Error() string {
	if e.Stage == nil {
		return fmt.Sprintf("Failed to link program: %v", strings.TrimSpace(e.Log))
	}
	return fmt.Sprintf("Failed to compile %v shader: %v", *e.Stage, strings.TrimSpace(e.Log))
}

// BuildError collects every stage that failed while building a Shader.
type BuildError struct {
	Failures []*StageError
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *BuildError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Shader is a linked GPU program.
type Shader struct {
	dev     Device
	program uint32
}

// NewShader compiles and links a program from vertex and fragment source.
// A stage that fails to compile is logged and the build carries on, so the
// returned Shader is never nil. The error reports every failed stage and
// callers should not draw with a Shader that came back with one.
func NewShader(dev Device, vertexSource, fragmentSource string) (*Shader, error) {
	var failures []*StageError

	compile := func(stage Stage, source string) uint32 {
		shader := dev.CreateShader(stage)
		if ok, log := dev.CompileShader(shader, source); !ok {
			slog.Error("shader compilation failed", "stage", stage, "log", strings.TrimSpace(log))
			failures = append(failures, &StageError{Stage: &stage, Log: log})
		}
		return shader
	}

	vertexShader := compile(VertexStage, vertexSource)
	fragmentShader := compile(FragmentStage, fragmentSource)

	program := dev.CreateProgram()
	if ok, log := dev.LinkProgram(program, vertexShader, fragmentShader); !ok {
		slog.Error("program linking failed", "log", strings.TrimSpace(log))
		failures = append(failures, &StageError{Log: log})
	}

	// The program keeps what it needs after linking
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	sh := &Shader{dev: dev, program: program}
	if len(failures) > 0 {
		return sh, &BuildError{Failures: failures}
	}
	return sh, nil
}

// LoadShader reads both sources from fsys verbatim and builds a Shader.
// A missing or unreadable file is returned before anything is created on the device.
func LoadShader(dev Device, fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("Failed to read vertex shader: %w", err)
	}
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("Failed to read fragment shader: %w", err)
	}
	return NewShader(dev, string(vertexSource), string(fragmentSource))
}

func (sh *Shader) ID() uint32 {
	return sh.program
}

func (sh *Shader) Use() {
	sh.dev.UseProgram(sh.program)
}

func (sh *Shader) Delete() {
	if sh.program == 0 {
		return
	}
	sh.dev.DeleteProgram(sh.program)
	sh.program = 0
}

// The setters look the location up on every call. Names that are not
// active uniforms are ignored.

func (sh *Shader) SetInt(name string, v int32) {
	if loc := sh.location(name); loc >= 0 {
		sh.dev.Uniform1i(loc, v)
	}
}

func (sh *Shader) SetFloat(name string, v float32) {
	if loc := sh.location(name); loc >= 0 {
		sh.dev.Uniform1f(loc, v)
	}
}

func (sh *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := sh.location(name); loc >= 0 {
		sh.dev.Uniform3f(loc, v)
	}
}

func (sh *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := sh.location(name); loc >= 0 {
		sh.dev.UniformMatrix4f(loc, m)
	}
}

func (sh *Shader) location(name string) int32 {
	return sh.dev.UniformLocation(sh.program, name)
}
