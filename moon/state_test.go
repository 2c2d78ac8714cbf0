package moon

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/stretchr/testify/assert"
)

var testViewport = camera.Viewport{Width: 8, Height: 6}

func frame(elapsed float64, x, y float32) FrameContext {
	return FrameContext{
		Elapsed:  elapsed,
		Pointer:  mgl32.Vec2{x, y},
		Viewport: testViewport,
		Size:     Size{800, 600},
	}
}

func TestMouseSpeed(t *testing.T) {
	tune := DefaultTuning()
	// x = 0.5*8/2 = 2, y = 0.5*6/1.5 = 2
	assert.InDelta(t, 2*2*0.2, MouseSpeed(mgl32.Vec2{0.5, 0.5}, testViewport, tune), 1e-6)
	assert.Equal(t, float32(0), MouseSpeed(mgl32.Vec2{0, 0.9}, testViewport, tune))
}

func TestMouseUniformFollowsSine(t *testing.T) {
	tune := DefaultTuning()
	for _, elapsed := range []float64{0, 0.3, 1, math.Pi / 2, 12.5} {
		want := math.Sin(elapsed) * 1.1 * 0.8
		assert.InDelta(t, want, MouseUniform(elapsed, 0.8, tune), 1e-5, "t=%v", elapsed)
	}
}

func TestMouseUniformZeroWithoutSpeed(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune)
	for _, elapsed := range []float64{0, 1.2, 7, 100} {
		s = s.Step(frame(elapsed, 0, 0), false, tune)
		assert.Equal(t, float32(0), s.MouseUniform)
	}
}

func TestStepComputesUniformFromCurrentPointer(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune).Step(frame(1, 0.5, 0.5), false, tune)
	assert.InDelta(t, 0.8, s.MouseSpeed, 1e-6)
	assert.InDelta(t, math.Sin(1)*1.1*0.8, s.MouseUniform, 1e-5)
}

func TestIdleScaleStaysAtTarget(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune)
	for i := 0; i < 100; i++ {
		s = s.Step(frame(float64(i)/60, 0.2, -0.4), false, tune)
		assert.Equal(t, float32(1.5), s.Scale)
	}
}

func TestHoverScaleEases(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune)
	s = s.Step(frame(0, 0, 0), true, tune)
	assert.InDelta(t, 1.48, s.Scale, 1e-6)

	for n := 2; n <= 60; n++ {
		prev := s.Scale
		s = s.Step(frame(0, 0, 0), true, tune)
		want := 1.3 + 0.2*math.Pow(0.9, float64(n))
		assert.InDelta(t, want, s.Scale, 1e-5, "n=%d", n)
		assert.Less(t, s.Scale, prev)
		assert.Greater(t, s.Scale, float32(1.3))
	}
}

func TestRotationAccumulates(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune)
	for n := 1; n <= 1000; n++ {
		s = s.Step(frame(0, 0, 0), n%2 == 0, tune)
		assert.Equal(t, s.Rotation.X(), s.Rotation.Y())
	}
	assert.InDelta(t, 0.005*1000, s.Rotation.X(), 1e-3)
}

func TestPositionFollowsPointer(t *testing.T) {
	tune := DefaultTuning()
	s := NewState(tune).Step(frame(0, 1, -1), false, tune)
	// x = 1*8/2/20, y = -1*6/1.5/20
	assert.InDelta(t, 0.2, s.Position.X(), 1e-6)
	assert.InDelta(t, -0.2, s.Position.Y(), 1e-6)
	assert.Equal(t, float32(0), s.Position.Z())
}

func TestModelMatrixAppliesScaleAndTranslation(t *testing.T) {
	s := State{Scale: 2, Position: mgl32.Vec3{1, 2, 3}}
	p := s.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, p.X(), 1e-6)
	assert.InDelta(t, 2, p.Y(), 1e-6)
	assert.InDelta(t, 3, p.Z(), 1e-6)
}
