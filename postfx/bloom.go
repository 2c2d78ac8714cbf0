package postfx

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/moonshader/shader"
)

// BloomParams are the fixed glow filter parameters.
type BloomParams struct {
	Strength  float32 `yaml:"strength"`
	Radius    float32 `yaml:"radius"`
	Threshold float32 `yaml:"threshold"`
}

func DefaultBloomParams() BloomParams {
	return BloomParams{Strength: 0.8, Radius: 1, Threshold: 0.5}
}

// blurIterations is the number of horizontal+vertical blur pairs.
const blurIterations = 3

// BloomPass extracts bright regions, blurs them at half resolution and adds
// them back on top of the source.
type BloomPass struct {
	params BloomParams
	quad   *Quad

	brightProgram    uint32
	blurProgram      uint32
	compositeProgram uint32

	brightTextureLoc    int32
	thresholdLoc        int32
	blurTextureLoc      int32
	directionLoc        int32
	compositeTextureLoc int32
	compositeBloomLoc   int32
	strengthLoc         int32

	// ping-pong pair for the separable blur
	blur   [2]RenderTarget
	width  int
	height int
}

func NewBloomPass(params BloomParams, quad *Quad) (*BloomPass, error) {
	p := &BloomPass{params: params, quad: quad}
	var err error
	if p.brightProgram, err = shader.NewProgram(shader.QuadVertexShader(), shader.BrightPassFragmentShader()); err != nil {
		return nil, fmt.Errorf("failed to create bright-pass program: %w", err)
	}
	if p.blurProgram, err = shader.NewProgram(shader.QuadVertexShader(), shader.BlurFragmentShader()); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("failed to create blur program: %w", err)
	}
	if p.compositeProgram, err = shader.NewProgram(shader.QuadVertexShader(), shader.CompositeFragmentShader()); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("failed to create bloom composite program: %w", err)
	}
	p.brightTextureLoc = shader.Location(p.brightProgram, "u_texture")
	p.thresholdLoc = shader.Location(p.brightProgram, "u_threshold")
	p.blurTextureLoc = shader.Location(p.blurProgram, "u_texture")
	p.directionLoc = shader.Location(p.blurProgram, "u_direction")
	p.compositeTextureLoc = shader.Location(p.compositeProgram, "u_texture")
	p.compositeBloomLoc = shader.Location(p.compositeProgram, "u_bloom")
	p.strengthLoc = shader.Location(p.compositeProgram, "u_strength")

	for i := range p.blur {
		if p.blur[i], err = newTarget(1, 1); err != nil {
			p.Destroy()
			return nil, fmt.Errorf("failed to create bloom target %d: %w", i, err)
		}
	}
	return p, nil
}

func (p *BloomPass) Name() string { return "bloom" }

func (p *BloomPass) Params() BloomParams { return p.params }

// bloomSize is the half-resolution size of the internal blur targets.
func bloomSize(width, height int) (int, int) {
	return max(1, width/2), max(1, height/2)
}

func (p *BloomPass) SetSize(width, height int) {
	p.width, p.height = width, height
	bw, bh := bloomSize(width, height)
	for _, t := range p.blur {
		if t != nil {
			t.Resize(bw, bh)
		}
	}
}

func (p *BloomPass) Render(src, dst RenderTarget) {
	bw, bh := bloomSize(p.width, p.height)

	// bright-pass: src -> blur[0]
	p.blur[0].Bind()
	gl.UseProgram(p.brightProgram)
	bindTexture(0, src.Texture(), p.brightTextureLoc)
	gl.Uniform1f(p.thresholdLoc, p.params.Threshold)
	p.quad.Draw()

	// separable blur, ping-ponging between the two targets
	for i := 0; i < blurIterations; i++ {
		spread := p.params.Radius * float32(i+1)
		p.blurStep(p.blur[0], p.blur[1], spread/float32(bw), 0)
		p.blurStep(p.blur[1], p.blur[0], 0, spread/float32(bh))
	}

	// composite: src + blur[0]*strength -> dst
	bindOutput(dst, p.width, p.height)
	gl.UseProgram(p.compositeProgram)
	bindTexture(0, src.Texture(), p.compositeTextureLoc)
	bindTexture(1, p.blur[0].Texture(), p.compositeBloomLoc)
	gl.Uniform1f(p.strengthLoc, p.params.Strength)
	p.quad.Draw()

	unbindTexture(1)
	unbindTexture(0)
}

func (p *BloomPass) blurStep(from, to RenderTarget, dx, dy float32) {
	to.Bind()
	gl.UseProgram(p.blurProgram)
	bindTexture(0, from.Texture(), p.blurTextureLoc)
	gl.Uniform2f(p.directionLoc, dx, dy)
	p.quad.Draw()
}

func (p *BloomPass) Destroy() {
	for _, t := range p.blur {
		if t != nil {
			t.Destroy()
		}
	}
	gl.DeleteProgram(p.brightProgram)
	gl.DeleteProgram(p.blurProgram)
	gl.DeleteProgram(p.compositeProgram)
}

func bindTexture(unit uint32, texture uint32, loc int32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	if loc != -1 {
		gl.Uniform1i(loc, int32(unit))
	}
}

func unbindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
