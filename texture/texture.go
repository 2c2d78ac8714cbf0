// Package texture loads image files into OpenGL 2D textures.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/moonshader/logger"
	"go.uber.org/zap"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Wrap is a texture coordinate wrapping mode.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClamp
	WrapMirroredRepeat
)

// Texture is an uploaded RGBA8 2D texture with mipmaps.
type Texture struct {
	id uint32
}

// Decode reads and decodes an image file into RGBA.
func Decode(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	logger.Log.Debug("decoded texture", zap.String("path", path), zap.String("format", format))
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Load decodes path and uploads it with the given wrap mode on both axes.
func Load(path string, wrap Wrap) (*Texture, error) {
	rgba, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return New(rgba, wrap)
}

// New uploads an RGBA image. Rows are flipped so that v=0 is the bottom of
// the image, matching GL texture space.
func New(rgba *image.RGBA, wrap Wrap) (*Texture, error) {
	if rgba == nil {
		return nil, fmt.Errorf("texture image is nil")
	}
	rgba = vflip(rgba)
	width := int32(rgba.Rect.Dx())
	height := int32(rgba.Rect.Dy())

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	mode := glWrap(wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Log.Info("texture uploaded", zap.Int32("width", width), zap.Int32("height", height))
	return &Texture{id: textureID}, nil
}

// vflip returns a vertically flipped copy of src.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()
	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

func glWrap(w Wrap) int32 {
	switch w {
	case WrapClamp:
		return gl.CLAMP_TO_EDGE
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func (t *Texture) ID() uint32 {
	return t.id
}

func (t *Texture) Destroy() {
	if t == nil || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
