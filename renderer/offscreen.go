package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/moonshader/encoder"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/options"
	"github.com/richinsley/moonshader/postfx"
	"go.uber.org/zap"
)

// RunOffscreen renders duration*fps frames at a fixed timestep into an
// offscreen target and streams them to ffmpeg.
func (r *Renderer) RunOffscreen(opts *options.SceneOptions) error {
	width, height := *opts.Width, *opts.Height
	var err error
	r.offscreen, err = postfx.NewTarget(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen target: %w", err)
	}

	enc := encoder.New(encoder.Config{
		Width:      width,
		Height:     height,
		FPS:        *opts.FPS,
		Codec:      *opts.Codec,
		OutputFile: *opts.OutputFile,
		FFMPEGPath: *opts.FFMPEGPath,
	})
	if err := enc.Start(); err != nil {
		return err
	}

	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	timeStep := 1.0 / float64(*opts.FPS)
	logger.Log.Info("recording", zap.Int("frames", totalFrames), zap.String("output", *opts.OutputFile))

	var pixels []byte
	var writeErr error
	for i := 0; i < totalFrames; i++ {
		// no pointer while recording
		fc := r.FrameContext(float64(i)*timeStep, mgl32.Vec2{}, false, width, height)
		r.RenderFrame(fc, r.offscreen)
		pixels = r.offscreen.ReadPixels(pixels)
		if writeErr = enc.WriteFrame(pixels); writeErr != nil {
			logger.Log.Error("frame write failed", zap.Int("frame", i), zap.Error(writeErr))
			break
		}
	}
	return errors.Join(writeErr, enc.Close())
}
