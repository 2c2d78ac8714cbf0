package renderer

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/richinsley/moonshader/graphics"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/moon"
	"github.com/richinsley/moonshader/options"
	"github.com/richinsley/moonshader/postfx"
	"github.com/richinsley/moonshader/shader"
	"go.uber.org/zap"
)

// glInitOnce ensures gl.Init() is called only once per process.
var glInitOnce sync.Once

// meshUpdater is the per-frame side of the moon.
type meshUpdater interface {
	Update(fc moon.FrameContext, cam *camera.Camera)
	SetResolution(width, height int)
}

// postChain is the post-processing side of a frame.
type postChain interface {
	SetSize(width, height int)
	Step() float32
	Render(out postfx.RenderTarget)
	Destroy()
}

// Renderer owns the GL context, the scene and the post-processing chain,
// and drives one frame at a time.
type Renderer struct {
	context   graphics.Context
	scene     *Scene
	mesh      meshUpdater
	composer  postChain
	quad      *postfx.Quad
	offscreen *postfx.Target
	width     int
	height    int
	// last position reported while the pointer was over the window
	pointer mgl32.Vec2
}

func NewRenderer(width, height int, ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		width:   width,
		height:  height,
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	logger.Log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return r, nil
}

// InitScene builds the scene graph and the post-processing chain at the
// current framebuffer size.
func (r *Renderer) InitScene(opts *options.SceneOptions, tuning options.Tuning) error {
	width, height := r.context.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		width, height = r.width, r.height
	}
	r.width, r.height = width, height

	scene, err := LoadScene(opts, tuning, width, height)
	if err != nil {
		return err
	}
	r.scene = scene
	r.mesh = scene.Moon
	r.quad = postfx.NewQuad()

	bloom, err := postfx.NewBloomPass(tuning.Bloom, r.quad)
	if err != nil {
		return err
	}
	postSource, err := shader.LoadSource(*opts.PostFragment, shader.DefaultPostFragment())
	if err != nil {
		bloom.Destroy()
		return err
	}
	custom, err := postfx.NewShaderPass(postSource, r.quad)
	if err != nil {
		bloom.Destroy()
		return err
	}
	composer, err := postfx.NewComposer(postfx.NewRenderPass(scene, scene.ClearColor), bloom, custom, width, height)
	if err != nil {
		bloom.Destroy()
		custom.Destroy()
		return err
	}
	composer.SetTimeStep(tuning.TimeStep)
	r.composer = composer
	return nil
}

// resize resynchronises every size-dependent resource.
func (r *Renderer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.scene.Camera.SetAspect(width, height)
	r.mesh.SetResolution(width, height)
	r.composer.SetSize(width, height)
	logger.Log.Info("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// FrameContext resizes to the given framebuffer size, then captures the
// inputs of one frame. When active is false the last known pointer position
// is kept and the moon cannot be hovered.
func (r *Renderer) FrameContext(elapsed float64, pointer mgl32.Vec2, active bool, width, height int) moon.FrameContext {
	r.resize(width, height)
	if active {
		r.pointer = pointer
	}
	return moon.FrameContext{
		Elapsed:       elapsed,
		Pointer:       r.pointer,
		PointerActive: active,
		Viewport:      r.scene.Camera.Viewport(),
		Size:          moon.Size{Width: r.width, Height: r.height},
	}
}

// RenderFrame updates the mesh, rasterises the scene and runs the
// post-processing chain into out (the window when nil).
func (r *Renderer) RenderFrame(fc moon.FrameContext, out postfx.RenderTarget) {
	r.resize(fc.Size.Width, fc.Size.Height)
	r.mesh.Update(fc, r.scene.Camera)
	r.scene.elapsed = float32(fc.Elapsed)
	r.composer.Step()
	r.composer.Render(out)
}

// Run is the interactive loop; it returns when the window is closed.
func (r *Renderer) Run() {
	startTime := r.context.Time()
	var frames int64
	for !r.context.ShouldClose() {
		width, height := r.context.GetFramebufferSize()
		pointer, active := r.context.PointerNDC()
		fc := r.FrameContext(r.context.Time()-startTime, pointer, active, width, height)
		r.RenderFrame(fc, nil)
		r.context.EndFrame()
		frames++
	}
	logger.Log.Info("render loop finished", zap.Int64("frames", frames))
}

// Shutdown releases every GL resource the renderer owns. The context
// itself is shut down by its owner.
func (r *Renderer) Shutdown() {
	if r.composer != nil {
		r.composer.Destroy()
	}
	if r.offscreen != nil {
		r.offscreen.Destroy()
	}
	if r.quad != nil {
		r.quad.Destroy()
	}
	r.scene.Destroy()
}
