package encoder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	e := New(Config{Width: 640, Height: 360, FPS: 30, Codec: "h264", OutputFile: "out.mp4"})
	args := e.Args()
	assert.Contains(t, args, "rawvideo")
	assert.Contains(t, args, "640x360")
	assert.Contains(t, args, "libx264")
	assert.Contains(t, args, "vflip")
	assert.Contains(t, args, "out.mp4")
	assert.Contains(t, args, "-y")
}

func TestArgsHEVC(t *testing.T) {
	e := New(Config{Width: 8, Height: 8, FPS: 60, Codec: "hevc", OutputFile: "out.mp4"})
	args := e.Args()
	assert.Contains(t, args, "libx265")
	assert.Contains(t, args, "hvc1")
	assert.NotContains(t, args, "libx264")
}

func TestWriteFrameBeforeStart(t *testing.T) {
	e := New(Config{Width: 2, Height: 2, FPS: 1})
	assert.Error(t, e.WriteFrame(make([]byte, 16)))
	assert.NoError(t, e.Close())
}

func TestWriteFrameFailsWhenFFmpegIsMissing(t *testing.T) {
	dir := t.TempDir()
	e := New(Config{
		Width:      2,
		Height:     2,
		FPS:        1,
		Codec:      "h264",
		OutputFile: filepath.Join(dir, "out.mp4"),
		FFMPEGPath: filepath.Join(dir, "no-such-ffmpeg"),
	})
	require.NoError(t, e.Start())

	assert.Error(t, e.WriteFrame(make([]byte, 16)))
	assert.Error(t, e.Close())
}

func TestWriteFrameRejectsWrongSize(t *testing.T) {
	e := New(Config{Width: 2, Height: 2, FPS: 1, FFMPEGPath: filepath.Join(t.TempDir(), "no-such-ffmpeg")})
	require.NoError(t, e.Start())
	assert.Error(t, e.WriteFrame(make([]byte, 15)))
	assert.Error(t, e.Close())
}
