package render

import (
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
)

// LightPosition is where the lamp cube of the lit scenes sits.
var LightPosition = mgl32.Vec3{1.2, 1.0, 2.0}

// Material is a Phong material with plain colours.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// Light is a Phong light. The attenuation terms are only used by point lights.
type Light struct {
	Position  mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

var Emerald = Material{
	Ambient:   mgl32.Vec3{0.0215, 0.1745, 0.0215},
	Diffuse:   mgl32.Vec3{0.07568, 0.61424, 0.07568},
	Specular:  mgl32.Vec3{0.633, 0.727811, 0.633},
	Shininess: 0.6 * 128,
}

func (m Material) apply(sh *Shader) {
	sh.SetVec3("material.ambient", m.Ambient)
	sh.SetVec3("material.diffuse", m.Diffuse)
	sh.SetVec3("material.specular", m.Specular)
	sh.SetFloat("material.shininess", m.Shininess)
}

func (l Light) apply(sh *Shader) {
	sh.SetVec3("light.position", l.Position)
	sh.SetVec3("light.ambient", l.Ambient)
	sh.SetVec3("light.diffuse", l.Diffuse)
	sh.SetVec3("light.specular", l.Specular)
	sh.SetFloat("light.constant", l.Constant)
	sh.SetFloat("light.linear", l.Linear)
	sh.SetFloat("light.quadratic", l.Quadratic)
}

func lampModel(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
}

// quadScene draws a single flat coloured quad with indexed geometry.
type quadScene struct {
	programSet
	mesh  *Mesh
	Color mgl32.Vec3
}

func newQuadScene() *quadScene {
	return &quadScene{
		programSet: newProgramSet(ProgramSource{Name: "quad", Vertex: "quad.vert", Fragment: "quad.frag"}),
		Color:      mgl32.Vec3{1.0, 0.5, 0.2},
	}
}

func (s *quadScene) Name() string { return "quad" }

func (s *quadScene) ClearColor() mgl32.Vec4 { return mgl32.Vec4{0.2, 0.3, 0.3, 1.0} }

func (s *quadScene) Load(dev Device, fsys fs.FS) error {
	if err := s.load(dev, fsys); err != nil {
		return err
	}
	s.mesh = NewMesh(dev, QuadVertices, QuadIndices, 3)
	return nil
}

func (s *quadScene) Reload(dev Device, fsys fs.FS, changed []string) {
	s.reload(dev, fsys, changed)
}

func (s *quadScene) Draw(r *Renderer, frame Frame) {
	sh := s.shader("quad")
	if sh == nil || s.mesh == nil {
		return
	}
	r.PrepareShader(sh, frame)
	sh.SetMat4("model", mgl32.Ident4())
	sh.SetVec3("color", s.Color)
	s.mesh.Draw()
}

func (s *quadScene) Delete() {
	s.delete()
	if s.mesh != nil {
		s.mesh.Delete()
		s.mesh = nil
	}
}

// phongScene draws a lamp and a rotating cube lit by it.
type phongScene struct {
	programSet
	cube     *Mesh
	Light    Light
	Material Material
}

func newPhongScene() *phongScene {
	return &phongScene{
		programSet: newProgramSet(
			ProgramSource{Name: "lamp", Vertex: "lamp.vert", Fragment: "lamp.frag"},
			ProgramSource{Name: "object", Vertex: "phong.vert", Fragment: "phong.frag"},
		),
		Light: Light{
			Position: LightPosition,
			Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:  mgl32.Vec3{0.8, 0.8, 0.8},
			Specular: mgl32.Vec3{1, 1, 1},
			Constant: 1,
		},
		Material: Emerald,
	}
}

func (s *phongScene) Name() string { return "phong" }

func (s *phongScene) Load(dev Device, fsys fs.FS) error {
	if err := s.load(dev, fsys); err != nil {
		return err
	}
	s.cube = NewMesh(dev, CubeVertices, nil, 3, 3)
	return nil
}

func (s *phongScene) Reload(dev Device, fsys fs.FS, changed []string) {
	s.reload(dev, fsys, changed)
}

func (s *phongScene) Draw(r *Renderer, frame Frame) {
	if s.cube == nil {
		return
	}

	if lamp := s.shader("lamp"); lamp != nil {
		r.PrepareShader(lamp, frame)
		lamp.SetMat4("model", lampModel(s.Light.Position))
		s.cube.Draw()
	}

	if obj := s.shader("object"); obj != nil {
		r.PrepareShader(obj, frame)
		axis := mgl32.Vec3{0.5, 1.0, 0.0}.Normalize()
		obj.SetMat4("model", mgl32.HomogRotate3D(frame.Time*0.5, axis))
		obj.SetVec3("cameraPosition", frame.CameraPosition)
		s.Material.apply(obj)
		s.Light.apply(obj)
		s.cube.Draw()
	}
}

func (s *phongScene) Delete() {
	s.delete()
	if s.cube != nil {
		s.cube.Delete()
		s.cube = nil
	}
}

var BoxPositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// attenuationScene draws a field of boxes lit by a point light that fades with distance.
type attenuationScene struct {
	programSet
	cube     *Mesh
	Light    Light
	Material Material
}

func newAttenuationScene() *attenuationScene {
	return &attenuationScene{
		programSet: newProgramSet(
			ProgramSource{Name: "lamp", Vertex: "lamp.vert", Fragment: "lamp.frag"},
			ProgramSource{Name: "box", Vertex: "phong.vert", Fragment: "attenuation.frag"},
		),
		Light: Light{
			Position:  LightPosition,
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:  mgl32.Vec3{1, 1, 1},
			Constant:  1.0,
			Linear:    0.7,
			Quadratic: 1.8,
		},
		Material: Material{
			Ambient:   mgl32.Vec3{0.8, 0.55, 0.3},
			Diffuse:   mgl32.Vec3{0.8, 0.55, 0.3},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess: 64,
		},
	}
}

func (s *attenuationScene) Name() string { return "attenuation" }

func (s *attenuationScene) Load(dev Device, fsys fs.FS) error {
	if err := s.load(dev, fsys); err != nil {
		return err
	}
	s.cube = NewMesh(dev, CubeVertices, nil, 3, 3)
	return nil
}

func (s *attenuationScene) Reload(dev Device, fsys fs.FS, changed []string) {
	s.reload(dev, fsys, changed)
}

func (s *attenuationScene) Draw(r *Renderer, frame Frame) {
	if s.cube == nil {
		return
	}

	if lamp := s.shader("lamp"); lamp != nil {
		r.PrepareShader(lamp, frame)
		lamp.SetMat4("model", lampModel(s.Light.Position))
		s.cube.Draw()
	}

	box := s.shader("box")
	if box == nil {
		return
	}
	r.PrepareShader(box, frame)
	box.SetVec3("cameraPosition", frame.CameraPosition)
	s.Material.apply(box)
	s.Light.apply(box)

	axis := mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()
	for i, pos := range BoxPositions {
		angle := mgl32.DegToRad(20 * float32(i))
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.HomogRotate3D(angle, axis))
		box.SetMat4("model", model)
		s.cube.Draw()
	}
}

func (s *attenuationScene) Delete() {
	s.delete()
	if s.cube != nil {
		s.cube.Delete()
		s.cube = nil
	}
}
