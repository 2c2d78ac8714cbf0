package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClearColorRGB(t *testing.T) {
	c := ClearColorRGB(0x111111)
	assert.InDelta(t, 17.0/255, c.X(), 1e-6)
	assert.InDelta(t, 17.0/255, c.Y(), 1e-6)
	assert.InDelta(t, 17.0/255, c.Z(), 1e-6)
	assert.Equal(t, float32(1), c.W())

	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, ClearColorRGB(0xff0000))
}
