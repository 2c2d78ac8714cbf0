// Package geometry builds the vertex data for the scene's meshes.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
}

// VertexCount returns the number of vertices (three per triangle).
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Interleaved packs the mesh into a single float slice for upload.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i := range m.Positions {
		p, n, uv := m.Positions[i], m.Normals[i], m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

var (
	phi = (1 + math32.Sqrt(5)) / 2

	icoVertices = []mgl32.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	icoFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// Icosahedron returns a sphere-projected icosahedron. Each of the 20 base
// faces is split into (detail+1)^2 triangles, so detail 1 gives 80 faces.
func Icosahedron(radius float32, detail int) Mesh {
	if detail < 0 {
		detail = 0
	}
	var m Mesh
	for _, f := range icoFaces {
		subdivide(&m, icoVertices[f[0]], icoVertices[f[1]], icoVertices[f[2]], detail)
	}
	for i, p := range m.Positions {
		n := p.Normalize()
		m.Normals = append(m.Normals, n)
		m.Positions[i] = n.Mul(radius)
		m.UVs = append(m.UVs, sphereUV(n))
	}
	fixSeams(&m)
	return m
}

func subdivide(m *Mesh, a, b, c mgl32.Vec3, detail int) {
	cols := detail + 1
	grid := make([][]mgl32.Vec3, cols+1)
	for i := 0; i <= cols; i++ {
		t := float32(i) / float32(cols)
		aj := lerp(a, c, t)
		bj := lerp(b, c, t)
		rows := cols - i
		grid[i] = make([]mgl32.Vec3, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
				continue
			}
			grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
		}
	}
	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				m.Positions = append(m.Positions, grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				m.Positions = append(m.Positions, grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// sphereUV maps a unit direction to equirectangular coordinates.
func sphereUV(n mgl32.Vec3) mgl32.Vec2 {
	azimuth := math32.Atan2(n.Z(), -n.X())
	inclination := math32.Atan2(-n.Y(), math32.Sqrt(n.X()*n.X()+n.Z()*n.Z()))
	return mgl32.Vec2{azimuth/(2*math32.Pi) + 0.5, inclination/math32.Pi + 0.5}
}

// fixSeams unwraps triangles that straddle the u=0/u=1 seam.
func fixSeams(m *Mesh) {
	for i := 0; i+2 < len(m.UVs); i += 3 {
		u0, u1, u2 := m.UVs[i].X(), m.UVs[i+1].X(), m.UVs[i+2].X()
		hi := math32.Max(u0, math32.Max(u1, u2))
		lo := math32.Min(u0, math32.Min(u1, u2))
		if hi > 0.9 && lo < 0.1 {
			for j := i; j < i+3; j++ {
				if m.UVs[j].X() < 0.2 {
					m.UVs[j][0]++
				}
			}
		}
	}
}
