package render

import (
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var uniformDecl = regexp.MustCompile(`uniform\s+(\w+)\s+(\w+)\s*;`)

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	deleted  bool
}

type fakeProgram struct {
	shaders   []uint32
	linked    bool
	deleted   bool
	locations map[string]int32
	values    map[string]any
}

type fakeMesh struct {
	vertices []float32
	indices  []uint32
	layout   []int32
	deleted  bool
}

type fakeDraw struct {
	program uint32
	vao     uint32
	count   int32
	indexed bool
	values  map[string]any
}

// fakeDevice is an in-memory Device. Sources compile when they declare
// void main and have balanced braces; a program links when every attached
// shader compiled. Uniforms declared in the sources are active.
type fakeDevice struct {
	nextID     uint32
	shaders    map[uint32]*fakeShader
	programs   map[uint32]*fakeProgram
	meshes     map[uint32]*fakeMesh
	current    uint32
	draws      []fakeDraw
	clears     int
	clearColor mgl32.Vec4
	viewport   [2]int32

	wireframe    bool
	polygonModes int

	// writes made while no program was in use
	strayWrites int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		meshes:   make(map[uint32]*fakeMesh),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CreateShader(stage Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDevice) CompileShader(shader uint32, source string) (bool, string) {
	s := d.shaders[shader]
	s.source = source
	if !strings.Contains(source, "void main") {
		return false, "ERROR: 0:1: 'main' : function not defined\n"
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return false, "ERROR: 0:1: '' : syntax error: unexpected end of file\n"
	}
	s.compiled = true
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.shaders[shader].deleted = true
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{
		locations: make(map[string]int32),
		values:    make(map[string]any),
	}
	return id
}

func (d *fakeDevice) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	p := d.programs[program]
	p.shaders = shaders
	for _, id := range shaders {
		if !d.shaders[id].compiled {
			return false, "error: linking with uncompiled shader\n"
		}
	}
	for _, id := range shaders {
		for _, m := range uniformDecl.FindAllStringSubmatch(d.shaders[id].source, -1) {
			if _, ok := p.locations[m[2]]; !ok {
				p.locations[m[2]] = int32(len(p.locations))
			}
			// struct members resolve as name.member
			if m[1][0] >= 'A' && m[1][0] <= 'Z' {
				p.locations[m[2]+"."] = -2
			}
		}
	}
	p.linked = true
	return true, ""
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.current = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.programs[program].deleted = true
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if !p.linked {
		return -1
	}
	if loc, ok := p.locations[name]; ok && loc >= 0 {
		return loc
	}
	if i := strings.Index(name, "."); i > 0 {
		if _, ok := p.locations[name[:i+1]]; ok {
			loc, ok := p.locations[name]
			if !ok {
				loc = int32(len(p.locations))
				p.locations[name] = loc
			}
			return loc
		}
	}
	return -1
}

func (d *fakeDevice) write(location int32, v any) {
	p, ok := d.programs[d.current]
	if !ok {
		d.strayWrites++
		return
	}
	for name, loc := range p.locations {
		if loc == location {
			p.values[name] = v
			return
		}
	}
}

func (d *fakeDevice) Uniform1i(location int32, v int32) { d.write(location, v) }
func (d *fakeDevice) Uniform1f(location int32, v float32) { d.write(location, v) }
func (d *fakeDevice) Uniform3f(location int32, v mgl32.Vec3) { d.write(location, v) }
func (d *fakeDevice) UniformMatrix4f(location int32, m mgl32.Mat4) { d.write(location, m) }

func (d *fakeDevice) CreateMesh(vertices []float32, indices []uint32, layout []int32) uint32 {
	id := d.id()
	d.meshes[id] = &fakeMesh{vertices: vertices, indices: indices, layout: layout}
	return id
}

func (d *fakeDevice) draw(vao uint32, count int32, indexed bool) {
	values := make(map[string]any)
	if p, ok := d.programs[d.current]; ok {
		for k, v := range p.values {
			values[k] = v
		}
	}
	d.draws = append(d.draws, fakeDraw{program: d.current, vao: vao, count: count, indexed: indexed, values: values})
}

func (d *fakeDevice) DrawArrays(vao uint32, count int32) { d.draw(vao, count, false) }
func (d *fakeDevice) DrawElements(vao uint32, count int32) { d.draw(vao, count, true) }

func (d *fakeDevice) DeleteMesh(vao uint32) {
	if m, ok := d.meshes[vao]; ok {
		m.deleted = true
	}
}

func (d *fakeDevice) Clear(color mgl32.Vec4) {
	d.clears++
	d.clearColor = color
}

func (d *fakeDevice) Viewport(width, height int32) { d.viewport = [2]int32{width, height} }

func (d *fakeDevice) SetWireframe(enabled bool) {
	d.wireframe = enabled
	d.polygonModes++
}

func (d *fakeDevice) value(program uint32, name string) (any, bool) {
	v, ok := d.programs[program].values[name]
	return v, ok
}
