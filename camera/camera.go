// Package camera holds the perspective camera the scene is rasterised from.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is the world-unit size of the plane through the camera target
// that exactly fills the screen.
type Viewport struct {
	Width  float32
	Height float32
}

// Camera is a perspective camera looking at a fixed target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FOV      float32 // vertical field of view, degrees
	Near     float32
	Far      float32
	Aspect   float32
}

// New returns the scene's default camera: positioned at (0, 2, 2) looking at
// the origin with a 90 degree field of view.
func New(width, height int) *Camera {
	c := &Camera{
		Position: mgl32.Vec3{0, 2, 2},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      90,
		Near:     0.1,
		Far:      1000,
		Aspect:   1,
	}
	c.SetAspect(width, height)
	return c
}

// SetAspect updates the aspect ratio from framebuffer dimensions. A zero
// height (minimised window) leaves the aspect unchanged.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Distance is the length from the camera to its target.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// Viewport returns the visible plane size at the target distance.
func (c *Camera) Viewport() Viewport {
	h := 2 * math32.Tan(mgl32.DegToRad(c.FOV)/2) * c.Distance()
	return Viewport{Width: h * c.Aspect, Height: h}
}

// Ray returns a world-space ray through the given normalized device
// coordinates. The direction is unit length.
func (c *Camera) Ray(ndc mgl32.Vec2) (origin, dir mgl32.Vec3) {
	inv := c.Projection().Mul4(c.View()).Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return c.Position, f.Sub(n).Normalize()
}
