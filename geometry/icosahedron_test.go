package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcosahedronFaceCount(t *testing.T) {
	m0 := Icosahedron(1, 0)
	m1 := Icosahedron(1, 1)
	m2 := Icosahedron(1, 2)
	assert.Equal(t, 20*3, m0.VertexCount())
	assert.Equal(t, 80*3, m1.VertexCount())
	assert.Equal(t, 180*3, m2.VertexCount())
}

func TestIcosahedronOnSphere(t *testing.T) {
	m := Icosahedron(2, 1)
	require.Len(t, m.Normals, m.VertexCount())
	require.Len(t, m.UVs, m.VertexCount())
	for i, p := range m.Positions {
		assert.InDelta(t, 2, p.Len(), 1e-5)
		assert.InDelta(t, 1, m.Normals[i].Len(), 1e-5)
		assert.InDelta(t, 0, p.Sub(m.Normals[i].Mul(2)).Len(), 1e-5)
	}
}

func TestUVRange(t *testing.T) {
	m := Icosahedron(1, 1)
	for _, uv := range m.UVs {
		assert.GreaterOrEqual(t, uv.X(), float32(0))
		assert.LessOrEqual(t, uv.X(), float32(1.2))
		assert.GreaterOrEqual(t, uv.Y(), float32(0))
		assert.LessOrEqual(t, uv.Y(), float32(1))
	}
}

func TestInterleaved(t *testing.T) {
	m := Icosahedron(1, 0)
	data := m.Interleaved()
	require.Len(t, data, m.VertexCount()*FloatsPerVertex)
	assert.Equal(t, m.Positions[1].X(), data[FloatsPerVertex])
	assert.Equal(t, m.UVs[1].Y(), data[2*FloatsPerVertex-1])
}
