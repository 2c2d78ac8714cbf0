package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.Set(1, 0, color.NRGBA{R: 255, A: 255})
	path := writePNG(t, src)

	rgba, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba.RGBAAt(1, 0))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Decode(path)
	assert.Error(t, err)
}

func TestVFlip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		src.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	out := vflip(src)
	assert.Equal(t, uint8(2), out.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), out.RGBAAt(0, 2).R)
}

func TestGLWrap(t *testing.T) {
	assert.Equal(t, int32(gl.MIRRORED_REPEAT), glWrap(WrapMirroredRepeat))
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), glWrap(WrapClamp))
	assert.Equal(t, int32(gl.REPEAT), glWrap(WrapRepeat))
}
