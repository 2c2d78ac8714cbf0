package moon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/stretchr/testify/assert"
)

func TestHoverTransitions(t *testing.T) {
	var h Hover
	entered, left := h.Update(false)
	assert.False(t, entered)
	assert.False(t, left)

	entered, left = h.Update(true)
	assert.True(t, entered)
	assert.False(t, left)
	assert.True(t, h.Hovered())

	entered, left = h.Update(true)
	assert.False(t, entered)
	assert.False(t, left)

	entered, left = h.Update(false)
	assert.False(t, entered)
	assert.True(t, left)
	assert.False(t, h.Hovered())
}

func TestPick(t *testing.T) {
	cam := camera.New(800, 600)
	center := mgl32.Vec3{0, 0, 0}

	assert.True(t, Pick(cam, mgl32.Vec2{0, 0}, center, 1.5))
	assert.False(t, Pick(cam, mgl32.Vec2{0.95, 0.95}, center, 1.5))
	// Sphere behind the camera.
	assert.False(t, Pick(cam, mgl32.Vec2{0, 0}, mgl32.Vec3{0, 4, 4}, 0.5))
}
