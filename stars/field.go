package stars

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/shader"
	"go.uber.org/zap"
)

// Field is the GPU side of the starfield.
type Field struct {
	program uint32
	vao     uint32
	vbo     uint32
	count   int32
	fade    bool

	viewProjectionLoc int32
	timeLoc           int32
	fadeLoc           int32
}

// NewField generates the stars and uploads them.
func NewField(cfg Config) (*Field, error) {
	program, err := shader.NewProgram(shader.StarsVertexShader(), shader.StarsFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("failed to create stars program: %w", err)
	}
	f := &Field{
		program:           program,
		fade:              cfg.Fade,
		viewProjectionLoc: shader.Location(program, "u_viewProjection"),
		timeLoc:           shader.Location(program, "u_time"),
		fadeLoc:           shader.Location(program, "u_fade"),
	}

	stars := Generate(cfg, rand.New(rand.NewSource(cfg.Seed)))
	data := Interleaved(stars)
	f.count = int32(len(stars))

	gl.GenVertexArrays(1, &f.vao)
	gl.GenBuffers(1, &f.vbo)
	gl.BindVertexArray(f.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	stride := int32(7 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Log.Info("starfield created", zap.Int("count", len(stars)))
	return f, nil
}

// Draw renders the points additively without writing depth.
func (f *Field) Draw(viewProjection mgl32.Mat4, elapsed float32) {
	if f.count == 0 {
		return
	}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.UseProgram(f.program)
	gl.UniformMatrix4fv(f.viewProjectionLoc, 1, false, &viewProjection[0])
	gl.Uniform1f(f.timeLoc, elapsed)
	var fade float32
	if f.fade {
		fade = 1
	}
	gl.Uniform1f(f.fadeLoc, fade)

	gl.BindVertexArray(f.vao)
	gl.DrawArrays(gl.POINTS, 0, f.count)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (f *Field) Destroy() {
	gl.DeleteBuffers(1, &f.vbo)
	gl.DeleteVertexArrays(1, &f.vao)
	gl.DeleteProgram(f.program)
}
