package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.5, cfg.Effect.CellDensity)
	assert.Equal(t, 0.05, cfg.Effect.CellSize)
	assert.Equal(t, [3]float64{0, -1, 0}, cfg.Sweep.Normal)
	assert.Equal(t, 1.0, cfg.Transform.Scale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "effect.yaml")
	yamlContent := `
effect:
  cell_density: 1
  cell_size: 0.2
  origin: [1, 0, 2]
sweep:
  normal: [0, 1, 0]
  start: 0
  speed: 2
  frame_delta: 0.5
transform:
  translate: [0, 10, 0]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Effect.CellDensity)
	assert.Equal(t, 0.2, cfg.Effect.CellSize)
	assert.Equal(t, [3]float64{1, 0, 2}, cfg.Effect.Origin)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset values keep their defaults.
	assert.Equal(t, 0.2, cfg.Effect.HighlightProbability)
	assert.Equal(t, 1.0, cfg.Transform.Scale)
	assert.Equal(t, 400, cfg.Render.ImageSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "effect.yaml")
	cfg := Default()
	cfg.Effect.Swirl = 3
	cfg.Transform.RotateY = 90
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEffectAt(t *testing.T) {
	cfg := Default()
	cfg.Sweep = SweepConfig{Normal: [3]float64{0, 2, 0}, Start: 1, Speed: 2, FrameDelta: 0.25}
	cfg.Transform.Translate = [3]float64{0, 10, 0}
	cfg.Effect.Origin = [3]float64{1, 2, 3}

	effect := cfg.EffectAt(1)
	assert.Equal(t, model3d.Y(1), effect.Params.Plane.Normal)
	assert.InDelta(t, 3.0, effect.Params.Plane.Distance, 1e-12)
	assert.InDelta(t, 2.5, effect.Params.PrevPlane.Distance, 1e-12)
	assert.Equal(t, model3d.XYZ(1, 2, 3), effect.Params.Origin)

	world := effect.ToWorld.Apply(model3d.XYZ(1, 1, 1))
	assert.InDelta(t, 0, world.Dist(model3d.XYZ(1, 11, 1)), 1e-9)
}

func TestTransformMatrix(t *testing.T) {
	m := TransformConfig{Translate: [3]float64{1, 0, 0}, RotateY: 90, Scale: 2}.Matrix()
	v := m.Mul4x1([4]float64{1, 0, 0, 1})
	assert.InDelta(t, 1, v[0], 1e-9)
	assert.InDelta(t, 0, v[1], 1e-9)
	assert.InDelta(t, -2, v[2], 1e-9)
}

func TestFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "effect.yaml")
	require.NoError(t, Default().SaveTo(configPath))

	var flags Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Register(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", configPath,
		"-debug",
		"-frame-delta", "0.1",
	}))

	cfg, err := flags.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 0.1, cfg.Sweep.FrameDelta)
}
