// Package moon implements the interactive moon mesh: a textured icosahedron
// whose transform and shader uniforms follow the pointer every frame.
package moon

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
)

// Size is a framebuffer size in pixels.
type Size struct {
	Width  int
	Height int
}

// FrameContext is the per-tick input supplied by the host loop. It is
// read-only to the update logic.
type FrameContext struct {
	Elapsed  float64         // seconds since scene start
	Pointer  mgl32.Vec2      // normalized device coordinates in [-1, 1]
	Viewport camera.Viewport // world-unit size of the visible plane
	Size     Size
	// PointerActive is false when no pointer is over the surface. Pointer
	// then holds the last known position and nothing can be hovered.
	PointerActive bool
}

// Tuning holds the hand-tuned visual constants of the mesh update.
type Tuning struct {
	RotationStep    float32 `yaml:"rotation_step"`
	HoverScale      float32 `yaml:"hover_scale"`
	IdleScale       float32 `yaml:"idle_scale"`
	Ease            float32 `yaml:"ease"`
	SpeedFactor     float32 `yaml:"speed_factor"`
	WidthDivisor    float32 `yaml:"width_divisor"`
	HeightDivisor   float32 `yaml:"height_divisor"`
	PositionDivisor float32 `yaml:"position_divisor"`
	MouseGain       float32 `yaml:"mouse_gain"`
}

// DefaultTuning returns the constants the scene was designed with.
func DefaultTuning() Tuning {
	return Tuning{
		RotationStep:    0.005,
		HoverScale:      1.3,
		IdleScale:       1.5,
		Ease:            0.1,
		SpeedFactor:     0.2,
		WidthDivisor:    2,
		HeightDivisor:   1.5,
		PositionDivisor: 20,
		MouseGain:       1.1,
	}
}

// State is the mesh's transform and per-frame uniform state. Rotation and
// Scale carry over between frames; everything else is recomputed.
type State struct {
	Rotation     mgl32.Vec2 // x and y axes, always equal
	Scale        float32
	Position     mgl32.Vec3
	MouseSpeed   float32
	MouseUniform float32
}

// NewState returns the state of a freshly mounted mesh.
func NewState(t Tuning) State {
	return State{Scale: t.IdleScale}
}

// pointerWorld scales the pointer onto the viewport plane.
func pointerWorld(pointer mgl32.Vec2, vp camera.Viewport, t Tuning) (x, y float32) {
	return pointer.X() * vp.Width / t.WidthDivisor, pointer.Y() * vp.Height / t.HeightDivisor
}

// MouseSpeed is the product of the scaled pointer coordinates.
func MouseSpeed(pointer mgl32.Vec2, vp camera.Viewport, t Tuning) float32 {
	x, y := pointerWorld(pointer, vp, t)
	return x * y * t.SpeedFactor
}

// MouseUniform is the value fed to the material's "mouse" uniform.
func MouseUniform(elapsed float64, speed float32, t Tuning) float32 {
	return math32.Sin(float32(elapsed)) * t.MouseGain * speed
}

// EaseScale moves scale a fixed fraction of the way toward the hover target.
func EaseScale(scale float32, hovered bool, t Tuning) float32 {
	target := t.IdleScale
	if hovered {
		target = t.HoverScale
	}
	return scale + (target-scale)*t.Ease
}

// PointerPosition places the mesh under the pointer, damped by the position
// divisor.
func PointerPosition(pointer mgl32.Vec2, vp camera.Viewport, t Tuning) mgl32.Vec3 {
	x, y := pointerWorld(pointer, vp, t)
	return mgl32.Vec3{x / t.PositionDivisor, y / t.PositionDivisor, 0}
}

// Step advances the state by one frame.
func (s State) Step(fc FrameContext, hovered bool, t Tuning) State {
	next := s
	next.MouseSpeed = MouseSpeed(fc.Pointer, fc.Viewport, t)
	next.MouseUniform = MouseUniform(fc.Elapsed, next.MouseSpeed, t)

	r := s.Rotation.Y() + t.RotationStep
	next.Rotation = mgl32.Vec2{r, r}

	next.Scale = EaseScale(s.Scale, hovered, t)
	next.Position = PointerPosition(fc.Pointer, fc.Viewport, t)
	return next
}

// Model returns the model matrix: translate, then rotate X then Y, then scale.
func (s State) Model() mgl32.Mat4 {
	return mgl32.Translate3D(s.Position.X(), s.Position.Y(), s.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(s.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(s.Rotation.Y())).
		Mul4(mgl32.Scale3D(s.Scale, s.Scale, s.Scale))
}
