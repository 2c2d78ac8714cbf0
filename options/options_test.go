package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuning(t *testing.T) {
	tune := DefaultTuning()
	assert.Equal(t, float32(0.005), tune.Moon.RotationStep)
	assert.Equal(t, float32(1.3), tune.Moon.HoverScale)
	assert.Equal(t, float32(1.5), tune.Moon.IdleScale)
	assert.Equal(t, float32(0.1), tune.Moon.Ease)
	assert.Equal(t, float32(0.001), tune.TimeStep)
	assert.Equal(t, float32(0.8), tune.Bloom.Strength)
	assert.Equal(t, uint32(0x111111), tune.ClearColor)
	assert.Equal(t, 5000, tune.Stars.Count)
}

func TestLoadTuningOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
moon:
  ease: 0.2
  hover_scale: 1.1
bloom:
  strength: 1.5
stars:
  count: 10
`), 0o644))

	tune, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), tune.Moon.Ease)
	assert.Equal(t, float32(1.1), tune.Moon.HoverScale)
	assert.Equal(t, float32(1.5), tune.Moon.IdleScale)
	assert.Equal(t, float32(1.5), tune.Bloom.Strength)
	assert.Equal(t, float32(0.5), tune.Bloom.Threshold)
	assert.Equal(t, 10, tune.Stars.Count)
	assert.Equal(t, float32(100), tune.Stars.Radius)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("moon: [1, 2"), 0o644))
	_, err = LoadTuning(path)
	assert.Error(t, err)
}

func TestLoadTuningEmptyPath(t *testing.T) {
	tune, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tune)
}

func TestValidate(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := Register(fs)
	require.NoError(t, fs.Parse(nil))
	assert.NoError(t, o.Validate())

	require.NoError(t, fs.Parse([]string{"-record", "-codec", "vp9"}))
	assert.Error(t, o.Validate())

	require.NoError(t, fs.Parse([]string{"-codec", "hevc", "-fps", "0"}))
	assert.Error(t, o.Validate())

	require.NoError(t, fs.Parse([]string{"-fps", "30", "-width", "-1"}))
	assert.Error(t, o.Validate())
}
