package render

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sort"
)

// ProgramSource names the files a scene program is built from.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
}

type Scene interface {
	Name() string
	Programs() []ProgramSource
	// Load builds the scene's shaders and meshes. It fails if any program fails to build.
	Load(dev Device, fsys fs.FS) error
	// Reload rebuilds the programs that use one of the changed files. A program
	// that fails to build is logged and the previous one stays in use.
	Reload(dev Device, fsys fs.FS, changed []string)
	Draw(r *Renderer, frame Frame)
	Delete()
}

var scenes = map[string]func() Scene{
	"quad":        func() Scene { return newQuadScene() },
	"phong":       func() Scene { return newPhongScene() },
	"attenuation": func() Scene { return newAttenuationScene() },
}

// NewScene returns the named built-in scene.
func NewScene(name string) (Scene, error) {
	newScene, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("Unknown scene %q, available: %v", name, SceneNames())
	}
	return newScene(), nil
}

func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// programSet holds the shaders of a scene by program name.
type programSet struct {
	sources []ProgramSource
	shaders map[string]*Shader
}

func newProgramSet(sources ...ProgramSource) programSet {
	return programSet{
		sources: sources,
		shaders: make(map[string]*Shader),
	}
}

func (p *programSet) Programs() []ProgramSource {
	return p.sources
}

func (p *programSet) shader(name string) *Shader {
	return p.shaders[name]
}

func (p *programSet) load(dev Device, fsys fs.FS) error {
	var errs []error
	for _, src := range p.sources {
		sh, err := LoadShader(dev, fsys, src.Vertex, src.Fragment)
		if err != nil {
			if sh != nil {
				sh.Delete()
			}
			errs = append(errs, fmt.Errorf("Failed to build program %v: %w", src.Name, err))
			continue
		}
		p.shaders[src.Name] = sh
	}
	return errors.Join(errs...)
}

func (p *programSet) reload(dev Device, fsys fs.FS, changed []string) {
	for _, src := range p.sources {
		if !slices.Contains(changed, src.Vertex) && !slices.Contains(changed, src.Fragment) {
			continue
		}

		sh, err := LoadShader(dev, fsys, src.Vertex, src.Fragment)
		if err != nil {
			if sh != nil {
				sh.Delete()
			}
			slog.Error("shader reload failed, keeping previous program", "program", src.Name, "err", err)
			continue
		}

		if old := p.shaders[src.Name]; old != nil {
			old.Delete()
		}
		p.shaders[src.Name] = sh
		slog.Info("shader reloaded", "program", src.Name)
	}
}

func (p *programSet) delete() {
	for name, sh := range p.shaders {
		sh.Delete()
		delete(p.shaders, name)
	}
}
