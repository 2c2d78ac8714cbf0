package moon

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
)

// Hover turns per-frame hit results into pointer-enter and pointer-leave
// transitions.
type Hover struct {
	hovered bool
}

// Update records this frame's hit result and reports whether the pointer
// just entered or left the mesh.
func (h *Hover) Update(hit bool) (entered, left bool) {
	entered = hit && !h.hovered
	left = !hit && h.hovered
	h.hovered = hit
	return entered, left
}

func (h *Hover) Hovered() bool {
	return h.hovered
}

// Pick reports whether the ray through the pointer hits the sphere bounding
// the mesh.
func Pick(cam *camera.Camera, pointer mgl32.Vec2, center mgl32.Vec3, radius float32) bool {
	origin, dir := cam.Ray(pointer)
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return false
	}
	// Both intersections behind the camera.
	if c > 0 && b > 0 {
		return false
	}
	return true
}
