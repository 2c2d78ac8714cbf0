package postfx

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawer rasterises a scene graph into the currently bound framebuffer.
type Drawer interface {
	Draw()
}

// RenderPass rasterises the scene, producing the unmodified colour buffer.
type RenderPass struct {
	scene      Drawer
	clearColor mgl32.Vec4
	width      int
	height     int
}

func NewRenderPass(scene Drawer, clearColor mgl32.Vec4) *RenderPass {
	return &RenderPass{scene: scene, clearColor: clearColor}
}

func (p *RenderPass) Name() string { return "render" }

func (p *RenderPass) SetSize(width, height int) {
	p.width, p.height = width, height
}

func (p *RenderPass) Render(_, dst RenderTarget) {
	bindOutput(dst, p.width, p.height)
	gl.ClearColor(p.clearColor[0], p.clearColor[1], p.clearColor[2], p.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	p.scene.Draw()
	gl.Disable(gl.DEPTH_TEST)
}

func (p *RenderPass) Destroy() {}
