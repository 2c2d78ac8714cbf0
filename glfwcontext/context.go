package glfwcontext

import (
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/logger"
	"go.uber.org/zap"
)

const windowTitle = "moonshader"

// Context is a GLFW window with a 4.1 core profile GL context.
type Context struct {
	window *glfw.Window
}

// New creates the window. Hidden windows are used for offscreen recording.
func New(width, height int, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetKeyCallback(glfwKeyCallback)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		logger.Log.Debug("framebuffer resized", zap.Int("width", w), zap.Int("height", h))
	})
	return c, nil
}

func glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// PointerNDC converts the cursor position from window coordinates. The
// second result is false when the cursor is outside the window.
func (c *Context) PointerNDC() (mgl32.Vec2, bool) {
	if c.window == nil {
		return mgl32.Vec2{}, false
	}
	winWidth, winHeight := c.window.GetSize()
	cursorX, cursorY := c.window.GetCursorPos()
	return ToNDC(cursorX, cursorY, winWidth, winHeight)
}

// ToNDC maps a window-space cursor (origin top-left, y down) to normalized
// device coordinates. Positions outside the window report false and are
// clamped to the edge.
func ToNDC(cursorX, cursorY float64, winWidth, winHeight int) (mgl32.Vec2, bool) {
	if winWidth <= 0 || winHeight <= 0 {
		return mgl32.Vec2{}, false
	}
	inside := cursorX >= 0 && cursorY >= 0 &&
		cursorX <= float64(winWidth) && cursorY <= float64(winHeight)
	x := cursorX/float64(winWidth)*2 - 1
	y := -(cursorY/float64(winHeight)*2 - 1)
	return mgl32.Vec2{
		mgl32.Clamp(float32(x), -1, 1),
		mgl32.Clamp(float32(y), -1, 1),
	}, inside
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logger.Log.Info("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logger.Log.Info("GLFW terminated")
}
