package moon

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/camera"
	"github.com/richinsley/moonshader/geometry"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/shader"
	"github.com/richinsley/moonshader/texture"
	xlate "github.com/richinsley/moonshader/translator"
	"go.uber.org/zap"
)

// Geometry of the moon body: unit icosahedron subdivided once.
const (
	meshRadius = 1
	meshDetail = 1
)

type uniformLocs struct {
	time             int32
	mouse            int32
	landscape        int32
	resolution       int32
	uvRate1          int32
	modelMatrix      int32
	modelViewMatrix  int32
	projectionMatrix int32
	viewMatrix       int32
	normalMatrix     int32
	cameraPosition   int32
}

// Mesh is the drawable moon: geometry, material program and texture, plus
// the per-frame transform state.
type Mesh struct {
	State  State
	tuning Tuning
	hover  Hover

	program uint32
	vao     uint32
	vbo     uint32
	count   int32
	texture *texture.Texture
	locs    uniformLocs

	time       float32
	resolution mgl32.Vec4
	uvRate1    mgl32.Vec2
}

// NewMesh builds the moon from WebGL2 material sources. Sources without a
// #version line get the standard matrix and attribute declarations
// prepended.
func NewMesh(vertexSource, fragmentSource string, tex *texture.Texture, tuning Tuning) (*Mesh, error) {
	vs, err := xlate.Translate(shader.GetMaterialShader("vertex", vertexSource), "vertex")
	if err != nil {
		return nil, err
	}
	fs, err := xlate.Translate(shader.GetMaterialShader("fragment", fragmentSource), "fragment")
	if err != nil {
		return nil, err
	}
	program, err := shader.NewProgram(vs.Code, fs.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to create moon material: %w", err)
	}

	m := &Mesh{
		State:   NewState(tuning),
		tuning:  tuning,
		program: program,
		texture: tex,
		uvRate1: mgl32.Vec2{1, 1},
	}

	// Uniforms may live in either stage; look in both maps.
	loc := func(name string) int32 {
		if l := shader.UniformLocation(fs.Variables, program, name); l != -1 {
			return l
		}
		return shader.UniformLocation(vs.Variables, program, name)
	}
	m.locs = uniformLocs{
		time:             loc("time"),
		mouse:            loc("mouse"),
		landscape:        loc("landscape"),
		resolution:       loc("resolution"),
		uvRate1:          loc("uvRate1"),
		modelMatrix:      loc("modelMatrix"),
		modelViewMatrix:  loc("modelViewMatrix"),
		projectionMatrix: loc("projectionMatrix"),
		viewMatrix:       loc("viewMatrix"),
		normalMatrix:     loc("normalMatrix"),
		cameraPosition:   loc("cameraPosition"),
	}

	geo := geometry.Icosahedron(meshRadius, meshDetail)
	data := geo.Interleaved()
	m.count = int32(geo.VertexCount())

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Log.Info("moon mesh created", zap.Int32("vertices", m.count))
	return m, nil
}

// Update runs hit testing against the current bounds, then advances the
// transform state by one frame.
func (m *Mesh) Update(fc FrameContext, cam *camera.Camera) {
	hit := fc.PointerActive && Pick(cam, fc.Pointer, m.State.Position, meshRadius*m.State.Scale)
	if entered, left := m.hover.Update(hit); entered {
		logger.Log.Debug("pointer over moon")
	} else if left {
		logger.Log.Debug("pointer out of moon")
	}
	m.State = m.State.Step(fc, m.hover.Hovered(), m.tuning)
}

func (m *Mesh) Hovered() bool {
	return m.hover.Hovered()
}

// SetResolution updates the resolution uniform on viewport change.
func (m *Mesh) SetResolution(width, height int) {
	m.resolution = mgl32.Vec4{float32(width), float32(height), 1, 1}
}

// Draw uploads this frame's uniforms and draws the body.
func (m *Mesh) Draw(cam *camera.Camera) {
	model := m.State.Model()
	view := cam.View()
	proj := cam.Projection()
	modelView := view.Mul4(model)
	normal := modelView.Mat3().Inv().Transpose()

	gl.UseProgram(m.program)
	setMat4(m.locs.modelMatrix, model)
	setMat4(m.locs.modelViewMatrix, modelView)
	setMat4(m.locs.projectionMatrix, proj)
	setMat4(m.locs.viewMatrix, view)
	if m.locs.normalMatrix != -1 {
		gl.UniformMatrix3fv(m.locs.normalMatrix, 1, false, &normal[0])
	}
	if m.locs.cameraPosition != -1 {
		gl.Uniform3f(m.locs.cameraPosition, cam.Position[0], cam.Position[1], cam.Position[2])
	}
	if m.locs.time != -1 {
		gl.Uniform1f(m.locs.time, m.time)
	}
	if m.locs.mouse != -1 {
		gl.Uniform1f(m.locs.mouse, m.State.MouseUniform)
	}
	if m.locs.resolution != -1 {
		gl.Uniform4f(m.locs.resolution, m.resolution[0], m.resolution[1], m.resolution[2], m.resolution[3])
	}
	if m.locs.uvRate1 != -1 {
		gl.Uniform2f(m.locs.uvRate1, m.uvRate1[0], m.uvRate1[1])
	}
	if m.texture != nil && m.locs.landscape != -1 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.texture.ID())
		gl.Uniform1i(m.locs.landscape, 0)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func setMat4(loc int32, m mgl32.Mat4) {
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// Destroy releases the GL objects and the texture.
func (m *Mesh) Destroy() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteProgram(m.program)
	m.texture.Destroy()
}
