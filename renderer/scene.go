package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/moon"
	"github.com/richinsley/moonshader/options"
	"github.com/richinsley/moonshader/shader"
	"github.com/richinsley/moonshader/stars"
	"github.com/richinsley/moonshader/texture"
)

// Scene is the fixed scene graph: camera, starfield backdrop and moon.
type Scene struct {
	Camera     *camera.Camera
	Stars      *stars.Field
	Moon       *moon.Mesh
	ClearColor mgl32.Vec4
	elapsed    float32
}

// ClearColorRGB converts a 0xRRGGBB value to an opaque colour.
func ClearColorRGB(hex uint32) mgl32.Vec4 {
	return mgl32.Vec4{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
		1,
	}
}

// LoadScene builds every node of the scene once.
func LoadScene(opts *options.SceneOptions, tuning options.Tuning, width, height int) (*Scene, error) {
	s := &Scene{
		Camera:     camera.New(width, height),
		ClearColor: ClearColorRGB(tuning.ClearColor),
	}

	var err error
	s.Stars, err = stars.NewField(tuning.Stars)
	if err != nil {
		return nil, err
	}

	tex, err := texture.Load(*opts.Texture, texture.WrapMirroredRepeat)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	vs, err := shader.LoadSource(*opts.MoonVertex, shader.DefaultMoonVertex())
	if err != nil {
		tex.Destroy()
		s.Destroy()
		return nil, err
	}
	fs, err := shader.LoadSource(*opts.MoonFragment, shader.DefaultMoonFragment())
	if err != nil {
		tex.Destroy()
		s.Destroy()
		return nil, err
	}
	s.Moon, err = moon.NewMesh(vs, fs, tex, tuning.Moon)
	if err != nil {
		tex.Destroy()
		s.Destroy()
		return nil, fmt.Errorf("failed to create moon: %w", err)
	}
	s.Moon.SetResolution(width, height)

	logger.Log.Info("scene loaded")
	return s, nil
}

// Draw rasterises the backdrop, then the moon.
func (s *Scene) Draw() {
	vp := s.Camera.Projection().Mul4(s.Camera.View())
	s.Stars.Draw(vp, s.elapsed)
	s.Moon.Draw(s.Camera)
}

// Destroy releases every node's GL resources.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	if s.Moon != nil {
		s.Moon.Destroy()
	}
	if s.Stars != nil {
		s.Stars.Destroy()
	}
	logger.Log.Info("scene destroyed")
}
