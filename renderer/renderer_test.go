package renderer

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/richinsley/moonshader/moon"
	"github.com/richinsley/moonshader/postfx"
	"github.com/stretchr/testify/assert"
)

type fakeMesh struct {
	calls *[]string
	last  moon.FrameContext
}

func (m *fakeMesh) Update(fc moon.FrameContext, cam *camera.Camera) {
	m.last = fc
	*m.calls = append(*m.calls, "update")
}

func (m *fakeMesh) SetResolution(width, height int) {
	*m.calls = append(*m.calls, fmt.Sprintf("resolution %dx%d", width, height))
}

type fakeChain struct {
	calls *[]string
	out   postfx.RenderTarget
}

func (c *fakeChain) SetSize(width, height int) {
	*c.calls = append(*c.calls, fmt.Sprintf("size %dx%d", width, height))
}

func (c *fakeChain) Step() float32 {
	*c.calls = append(*c.calls, "step")
	return 0
}

func (c *fakeChain) Render(out postfx.RenderTarget) {
	c.out = out
	*c.calls = append(*c.calls, "render")
}

func (c *fakeChain) Destroy() {}

func newFakeRenderer() (*Renderer, *[]string, *fakeMesh) {
	calls := &[]string{}
	mesh := &fakeMesh{calls: calls}
	r := &Renderer{
		scene:    &Scene{Camera: camera.New(800, 600)},
		mesh:     mesh,
		composer: &fakeChain{calls: calls},
		width:    800,
		height:   600,
	}
	return r, calls, mesh
}

func TestRenderFrameOrder(t *testing.T) {
	r, calls, _ := newFakeRenderer()
	fc := moon.FrameContext{Elapsed: 1.5, Size: moon.Size{Width: 1024, Height: 768}}

	r.RenderFrame(fc, nil)
	assert.Equal(t, []string{
		"resolution 1024x768",
		"size 1024x768",
		"update",
		"step",
		"render",
	}, *calls)
	assert.Equal(t, float32(1.5), r.scene.elapsed)
	assert.InDelta(t, 1024.0/768.0, r.scene.Camera.Aspect, 1e-6)
}

func TestRenderFrameSameSizeSkipsResize(t *testing.T) {
	r, calls, _ := newFakeRenderer()
	r.RenderFrame(moon.FrameContext{Size: moon.Size{Width: 800, Height: 600}}, nil)
	r.RenderFrame(moon.FrameContext{Size: moon.Size{Width: 0, Height: 0}}, nil)
	assert.Equal(t, []string{"update", "step", "render", "update", "step", "render"}, *calls)
}

func TestFrameContextKeepsLastPointer(t *testing.T) {
	r, _, _ := newFakeRenderer()

	fc := r.FrameContext(0, mgl32.Vec2{0.25, -0.5}, true, 800, 600)
	assert.True(t, fc.PointerActive)
	assert.Equal(t, mgl32.Vec2{0.25, -0.5}, fc.Pointer)

	fc = r.FrameContext(0, mgl32.Vec2{1, 1}, false, 800, 600)
	assert.False(t, fc.PointerActive)
	assert.Equal(t, mgl32.Vec2{0.25, -0.5}, fc.Pointer)
	assert.Equal(t, moon.Size{Width: 800, Height: 600}, fc.Size)
	assert.Equal(t, r.scene.Camera.Viewport(), fc.Viewport)
}

func TestRecordedFramesAreNeverHovered(t *testing.T) {
	r, _, mesh := newFakeRenderer()
	for i := 0; i < 3; i++ {
		fc := r.FrameContext(float64(i)/60, mgl32.Vec2{}, false, 800, 600)
		r.RenderFrame(fc, nil)
		assert.False(t, mesh.last.PointerActive)
	}
}
