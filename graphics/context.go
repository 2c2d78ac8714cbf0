package graphics

import "github.com/go-gl/mathgl/mgl32"

// Context defines the interface for an OpenGL context and its input surface.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// PointerNDC returns the cursor in normalized device coordinates,
	// x right and y up, each in [-1, 1]. The second result is false when
	// no pointer is over the surface.
	PointerNDC() (mgl32.Vec2, bool)
}
