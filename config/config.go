package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/MetalSteel/OpenGLTutorial/camera"
)

type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

type Camera struct {
	Position    [3]float32 `toml:"position" yaml:"position"`
	Yaw         float32    `toml:"yaw" yaml:"yaw"`
	Pitch       float32    `toml:"pitch" yaml:"pitch"`
	FOV         float32    `toml:"fov" yaml:"fov"`
	MaxFOV      float32    `toml:"max_fov" yaml:"max_fov"`
	Speed       float32    `toml:"speed" yaml:"speed"`
	Sensitivity float32    `toml:"sensitivity" yaml:"sensitivity"`
}

type Shaders struct {
	// Dir overrides the bundled shaders with files from disk.
	Dir   string `toml:"dir" yaml:"dir"`
	Watch bool   `toml:"watch" yaml:"watch"`
}

type Config struct {
	Window  Window  `toml:"window" yaml:"window"`
	Camera  Camera  `toml:"camera" yaml:"camera"`
	Shaders Shaders `toml:"shaders" yaml:"shaders"`
	Scene   string  `toml:"scene" yaml:"scene"`
}

func Default() Config {
	s := camera.DefaultSettings()
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "OpenGLTutorial",
		},
		Camera: Camera{
			Position:    [3]float32(s.Position),
			Yaw:         s.Yaw,
			Pitch:       s.Pitch,
			FOV:         s.FOV,
			MaxFOV:      s.MaxFOV,
			Speed:       s.Speed,
			Sensitivity: s.Sensitivity,
		},
		Scene: "phong",
	}
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
// The result is not validated, so command line overrides can still be
// applied before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("Could not read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		// an empty document keeps the defaults
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return cfg, fmt.Errorf("Unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("Could not parse %v: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.MaxFOV < camera.MinFOV {
		errs = append(errs, fmt.Errorf("camera max_fov must be at least %v, got %v", camera.MinFOV, c.Camera.MaxFOV))
	}
	if c.Camera.FOV < camera.MinFOV || c.Camera.FOV > c.Camera.MaxFOV {
		errs = append(errs, fmt.Errorf("camera fov must be within [%v, %v], got %v", camera.MinFOV, c.Camera.MaxFOV, c.Camera.FOV))
	}
	if c.Camera.Pitch < -camera.MaxPitch || c.Camera.Pitch > camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera pitch must be within [%v, %v], got %v", -camera.MaxPitch, camera.MaxPitch, c.Camera.Pitch))
	}
	if c.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera speed must not be negative, got %v", c.Camera.Speed))
	}
	if c.Shaders.Watch && c.Shaders.Dir == "" {
		errs = append(errs, errors.New("shaders watch needs a shaders dir"))
	}
	return errors.Join(errs...)
}

func (c Camera) Settings() camera.Settings {
	return camera.Settings{
		Position:    mgl32.Vec3(c.Position),
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		FOV:         c.FOV,
		MaxFOV:      c.MaxFOV,
		Speed:       c.Speed,
		Sensitivity: c.Sensitivity,
	}
}
