// Package encoder pipes raw rendered frames into an ffmpeg process.
package encoder

import (
	"fmt"
	"io"

	"github.com/richinsley/moonshader/logger"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// Config describes the video being produced.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Codec      string // "h264" or "hevc"
	OutputFile string
	FFMPEGPath string
}

// Encoder writes RGBA frames to ffmpeg's stdin. Frames are bottom row
// first, as read back from GL, and are flipped by ffmpeg.
type Encoder struct {
	cfg       Config
	frameSize int
	pw        *io.PipeWriter
	done      chan error
	frames    int64
}

func New(cfg Config) *Encoder {
	return &Encoder{
		cfg:       cfg,
		frameSize: cfg.Width * cfg.Height * 4,
	}
}

func (e *Encoder) inputArgs() ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", e.cfg.Width, e.cfg.Height),
		"r":       e.cfg.FPS,
	}
}

func (e *Encoder) outputArgs() ffmpeg.KwArgs {
	out := ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
		"c:v":     "libx264",
	}
	if e.cfg.Codec == "hevc" {
		out["c:v"] = "libx265"
		out["tag:v"] = "hvc1"
	}
	return out
}

func (e *Encoder) stream(r io.Reader) *ffmpeg.Stream {
	s := ffmpeg.Input("pipe:", e.inputArgs()).
		Output(e.cfg.OutputFile, e.outputArgs()).
		OverWriteOutput().
		WithInput(r).
		ErrorToStdOut()
	if e.cfg.FFMPEGPath != "" {
		s = s.SetFfmpegPath(e.cfg.FFMPEGPath)
	}
	return s
}

// Args returns the ffmpeg command line that Start will run.
func (e *Encoder) Args() []string {
	return e.stream(nil).GetArgs()
}

// Start launches ffmpeg in the background.
func (e *Encoder) Start() error {
	if e.pw != nil {
		return fmt.Errorf("encoder already started")
	}
	pr, pw := io.Pipe()
	e.pw = pw
	e.done = make(chan error, 1)
	cmd := e.stream(pr)
	logger.Log.Info("starting ffmpeg", zap.Strings("args", e.Args()))
	go func() {
		err := cmd.Run()
		// unblock a pending WriteFrame if ffmpeg exits early
		pr.CloseWithError(io.ErrClosedPipe)
		e.done <- err
	}()
	return nil
}

// WriteFrame sends one frame. The slice must be exactly width*height*4 bytes.
func (e *Encoder) WriteFrame(pixels []byte) error {
	if e.pw == nil {
		return fmt.Errorf("encoder not started")
	}
	if len(pixels) != e.frameSize {
		return fmt.Errorf("frame is %d bytes, want %d", len(pixels), e.frameSize)
	}
	if _, err := e.pw.Write(pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to ffmpeg: %w", e.frames, err)
	}
	e.frames++
	return nil
}

// Close signals end of stream and waits for ffmpeg to finish.
func (e *Encoder) Close() error {
	if e.pw == nil {
		return nil
	}
	e.pw.Close()
	err := <-e.done
	e.pw = nil
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	logger.Log.Info("recording finished", zap.Int64("frames", e.frames), zap.String("output", e.cfg.OutputFile))
	return nil
}
