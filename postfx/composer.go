// Package postfx runs the fixed image-space chain applied after the scene is
// rasterised: base render, bloom, then a custom shader pass.
package postfx

import (
	"fmt"

	"github.com/richinsley/moonshader/logger"
	"go.uber.org/zap"
)

// DefaultTimeStep is added to the chain's time every frame.
const DefaultTimeStep float32 = 0.001

// Pass is one stage of the chain. Render reads src and writes dst; a nil dst
// is the display surface.
type Pass interface {
	Name() string
	SetSize(width, height int)
	Render(src, dst RenderTarget)
	Destroy()
}

// TimeReceiver is implemented by passes that consume the accumulated time.
type TimeReceiver interface {
	SetTime(t float32)
}

var newTarget = func(width, height int) (RenderTarget, error) {
	return NewTarget(width, height)
}

// Composer owns the ordered passes and the two ping-pong targets between
// them.
type Composer struct {
	passes   []Pass
	read     RenderTarget
	write    RenderTarget
	width    int
	height   int
	time     float32
	timeStep float32
}

// NewComposer builds the chain base → bloom → custom at the given size.
func NewComposer(base, bloom, custom Pass, width, height int) (*Composer, error) {
	if base == nil || bloom == nil || custom == nil {
		return nil, fmt.Errorf("composer requires base, bloom and custom passes")
	}
	c := &Composer{
		passes:   []Pass{base, bloom, custom},
		width:    width,
		height:   height,
		timeStep: DefaultTimeStep,
	}
	var err error
	if c.read, err = newTarget(width, height); err != nil {
		return nil, fmt.Errorf("failed to create read target: %w", err)
	}
	if c.write, err = newTarget(width, height); err != nil {
		c.read.Destroy()
		return nil, fmt.Errorf("failed to create write target: %w", err)
	}
	for _, p := range c.passes {
		p.SetSize(width, height)
	}
	logger.Log.Info("composer created", zap.Int("width", width), zap.Int("height", height))
	return c, nil
}

// SetTimeStep overrides the per-frame time increment.
func (c *Composer) SetTimeStep(step float32) {
	c.timeStep = step
}

// SetSize resynchronises the targets and every pass to a new size. It does
// nothing when the size is unchanged.
func (c *Composer) SetSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.read.Resize(width, height)
	c.write.Resize(width, height)
	for _, p := range c.passes {
		p.SetSize(width, height)
	}
	logger.Log.Debug("composer resized", zap.Int("width", width), zap.Int("height", height))
}

func (c *Composer) Size() (int, int) {
	return c.width, c.height
}

// Step advances the accumulated time and hands it to the passes.
func (c *Composer) Step() float32 {
	c.time += c.timeStep
	for _, p := range c.passes {
		if tr, ok := p.(TimeReceiver); ok {
			tr.SetTime(c.time)
		}
	}
	return c.time
}

func (c *Composer) Time() float32 {
	return c.time
}

// Passes returns the passes in execution order.
func (c *Composer) Passes() []Pass {
	out := make([]Pass, len(c.passes))
	copy(out, c.passes)
	return out
}

// Render runs every pass in order. The last pass writes out, or the display
// surface when out is nil.
func (c *Composer) Render(out RenderTarget) {
	last := len(c.passes) - 1
	for i, p := range c.passes {
		if i == last {
			p.Render(c.read, out)
			break
		}
		p.Render(c.read, c.write)
		c.read, c.write = c.write, c.read
	}
}

// Destroy releases the targets and every pass.
func (c *Composer) Destroy() {
	for _, p := range c.passes {
		p.Destroy()
	}
	c.read.Destroy()
	c.write.Destroy()
}
