package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	c := New(800, 600)
	assert.Equal(t, mgl32.Vec3{0, 2, 2}, c.Position)
	assert.Equal(t, float32(90), c.FOV)
	assert.InDelta(t, 800.0/600.0, c.Aspect, 1e-6)
}

func TestSetAspectIgnoresEmptySize(t *testing.T) {
	c := New(800, 600)
	c.SetAspect(0, 0)
	assert.InDelta(t, 800.0/600.0, c.Aspect, 1e-6)
	c.SetAspect(1024, 512)
	assert.InDelta(t, 2.0, c.Aspect, 1e-6)
}

func TestViewport(t *testing.T) {
	c := New(1000, 500)
	vp := c.Viewport()
	// tan(45deg) == 1, distance == sqrt(8)
	want := 2 * math32.Sqrt(8)
	assert.InDelta(t, want, vp.Height, 1e-4)
	assert.InDelta(t, want*2, vp.Width, 1e-4)
}

func TestRayThroughCentreHitsTarget(t *testing.T) {
	c := New(800, 600)
	origin, dir := c.Ray(mgl32.Vec2{0, 0})
	assert.Equal(t, c.Position, origin)
	want := c.Target.Sub(c.Position).Normalize()
	assert.InDelta(t, want.X(), dir.X(), 1e-4)
	assert.InDelta(t, want.Y(), dir.Y(), 1e-4)
	assert.InDelta(t, want.Z(), dir.Z(), 1e-4)
}
