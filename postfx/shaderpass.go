package postfx

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/shader"
	xlate "github.com/richinsley/moonshader/translator"
)

// ShaderPass applies an externally supplied WebGL2 fragment program to the
// chain's buffer. The program sees tDiffuse, resolution and time.
type ShaderPass struct {
	program uint32
	quad    *Quad

	diffuseLoc    int32
	resolutionLoc int32
	timeLoc       int32

	resolution mgl32.Vec2
	time       float32
	width      int
	height     int
}

// NewShaderPass translates and links fragmentSource against the fullscreen
// vertex stage.
func NewShaderPass(fragmentSource string, quad *Quad) (*ShaderPass, error) {
	vs, err := xlate.Translate(shader.PostVertexShader(), "vertex")
	if err != nil {
		return nil, err
	}
	fs, err := xlate.Translate(fragmentSource, "fragment")
	if err != nil {
		return nil, err
	}
	program, err := shader.NewProgram(vs.Code, fs.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to create post-processing program: %w", err)
	}
	return &ShaderPass{
		program:       program,
		quad:          quad,
		diffuseLoc:    shader.UniformLocation(fs.Variables, program, "tDiffuse"),
		resolutionLoc: shader.UniformLocation(fs.Variables, program, "resolution"),
		timeLoc:       shader.UniformLocation(fs.Variables, program, "time"),
	}, nil
}

func (p *ShaderPass) Name() string { return "shader" }

// ResolutionUniform is the inverse-resolution vector given to the shader.
func ResolutionUniform(width, height int) mgl32.Vec2 {
	return mgl32.Vec2{1 / float32(width), 2 / float32(height)}
}

func (p *ShaderPass) SetSize(width, height int) {
	p.width, p.height = width, height
	p.resolution = ResolutionUniform(width, height)
}

func (p *ShaderPass) SetTime(t float32) {
	p.time = t
}

func (p *ShaderPass) Resolution() mgl32.Vec2 { return p.resolution }

func (p *ShaderPass) Time() float32 { return p.time }

func (p *ShaderPass) Render(src, dst RenderTarget) {
	bindOutput(dst, p.width, p.height)
	gl.UseProgram(p.program)
	bindTexture(0, src.Texture(), p.diffuseLoc)
	if p.resolutionLoc != -1 {
		gl.Uniform2f(p.resolutionLoc, p.resolution[0], p.resolution[1])
	}
	if p.timeLoc != -1 {
		gl.Uniform1f(p.timeLoc, p.time)
	}
	p.quad.Draw()
	unbindTexture(0)
}

func (p *ShaderPass) Destroy() {
	gl.DeleteProgram(p.program)
}
