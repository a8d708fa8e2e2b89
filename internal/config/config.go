package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// ErrInvalid is returned by Validate for preferences the viewer cannot run with.
var ErrInvalid = errors.New("invalid viewer config")

// Prefs holds window, model and overlay settings. Persisted across runs.
type Prefs struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Title         string  `yaml:"title"`
	TargetFPS     int     `yaml:"target_fps"`
	Size          float64 `yaml:"size"`
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per frame
	PointRadius   int     `yaml:"point_radius"`
	LineThickness int     `yaml:"line_thickness"`
	ShowFPS       bool    `yaml:"show_fps"`
	ShowMemAlloc  bool    `yaml:"show_memalloc"`
	LogPath       string  `yaml:"log_path,omitempty"`
}

// Default returns the preferences of an 800x600 window showing 200-unit shapes.
func Default() Prefs {
	return Prefs{
		Width:         800,
		Height:        600,
		Title:         "3D Model Visualization",
		TargetFPS:     60,
		Size:          200,
		RotationSpeed: 0.03,
		PointRadius:   5,
		LineThickness: 2,
		LogPath:       "logs/viewer.txt",
	}
}

// Load reads preferences from path. Keys absent from the file keep their
// Default() value. A missing file is not an error. If the file cannot be
// parsed, Load returns Default() together with the parse error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that would break the viewer.
func (p Prefs) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("window %dx%d: %w", p.Width, p.Height, ErrInvalid)
	case p.TargetFPS <= 0:
		return fmt.Errorf("target_fps %d: %w", p.TargetFPS, ErrInvalid)
	case !(p.Size > 0):
		return fmt.Errorf("size %v: %w", p.Size, ErrInvalid)
	case p.RotationSpeed < 0:
		return fmt.Errorf("rotation_speed %v: %w", p.RotationSpeed, ErrInvalid)
	case p.PointRadius < 0 || p.LineThickness < 0:
		return fmt.Errorf("point_radius %d, line_thickness %d: %w", p.PointRadius, p.LineThickness, ErrInvalid)
	}
	return nil
}
