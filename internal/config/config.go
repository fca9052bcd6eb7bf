// Package config handles loading the effect configuration for the tools.
package config

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/unixpickle/cell-dissolve/dissolve"
	"github.com/unixpickle/model3d/model3d"
)

// Config holds all tool settings.
type Config struct {
	Effect    EffectConfig    `yaml:"effect"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Transform TransformConfig `yaml:"transform"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EffectConfig holds the per-frame effect parameters that do not depend on
// time.
type EffectConfig struct {
	CellDensity          float64    `yaml:"cell_density"`
	CellSize             float64    `yaml:"cell_size"`
	HighlightProbability float64    `yaml:"highlight_probability"`
	Inflation            float64    `yaml:"inflation"`
	Swirl                float64    `yaml:"swirl"`
	Scatter              float64    `yaml:"scatter"`
	Origin               [3]float64 `yaml:"origin"`
}

// SweepConfig describes the motion of the wipe plane.
type SweepConfig struct {
	Normal     [3]float64 `yaml:"normal"`
	Start      float64    `yaml:"start"`
	Speed      float64    `yaml:"speed"`
	FrameDelta float64    `yaml:"frame_delta"` // Time between frames for motion vectors
}

// TransformConfig is the object-to-world transform, applied as
// scale, then rotation about Y, then translation.
type TransformConfig struct {
	Translate [3]float64 `yaml:"translate"`
	RotateY   float64    `yaml:"rotate_y"` // Degrees
	Scale     float64    `yaml:"scale"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	ImageSize int `yaml:"image_size"`
	Frames    int `yaml:"frames"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with a visible default effect.
func Default() *Config {
	return &Config{
		Effect: EffectConfig{
			CellDensity:          0.5,
			CellSize:             0.05,
			HighlightProbability: 0.2,
			Inflation:            1,
			Swirl:                0.5,
			Scatter:              1,
		},
		Sweep: SweepConfig{
			Normal:     [3]float64{0, -1, 0},
			Start:      -1,
			Speed:      1,
			FrameDelta: 1.0 / 30,
		},
		Transform: TransformConfig{
			Scale: 1,
		},
		Render: RenderConfig{
			ImageSize: 400,
			Frames:    1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Matrix returns the object-to-world matrix.
func (t TransformConfig) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2])
	rotate := mgl64.HomogRotate3DY(mgl64.DegToRad(t.RotateY))
	scale := mgl64.Scale3D(t.Scale, t.Scale, t.Scale)
	return translate.Mul4(rotate).Mul4(scale)
}

// Sweep returns the configured plane motion.
func (s SweepConfig) Sweep() dissolve.Sweep {
	return dissolve.Sweep{
		Normal: model3d.NewCoord3DArray(s.Normal),
		Start:  s.Start,
		Speed:  s.Speed,
	}
}

// Parameters returns the effect parameters for time t.
func (c *Config) Parameters(t float64) dissolve.EffectParameters {
	base := dissolve.EffectParameters{
		CellDensity:          c.Effect.CellDensity,
		CellSize:             c.Effect.CellSize,
		HighlightProbability: c.Effect.HighlightProbability,
		Inflation:            c.Effect.Inflation,
		Swirl:                c.Effect.Swirl,
		Scatter:              c.Effect.Scatter,
		Origin:               model3d.NewCoord3DArray(c.Effect.Origin),
	}
	return c.Sweep.Sweep().Params(base, t, c.Sweep.FrameDelta)
}

// EffectAt returns the effect for the frame at time t.
func (c *Config) EffectAt(t float64) *dissolve.Effect {
	return &dissolve.Effect{
		Params:  c.Parameters(t),
		ToWorld: dissolve.MatrixToWorld(c.Transform.Matrix()),
	}
}
