package options

import (
	"flag"
	"fmt"
	"os"

	"github.com/richinsley/moonshader/moon"
	"github.com/richinsley/moonshader/postfx"
	"github.com/richinsley/moonshader/stars"
	"gopkg.in/yaml.v3"
)

// SceneOptions are the command-line settings of a run.
type SceneOptions struct {
	Help         *bool
	Debug        *bool
	Width        *int
	Height       *int
	Texture      *string // moon surface image
	MoonVertex   *string // optional WebGL2 material vertex stage
	MoonFragment *string // optional WebGL2 material fragment stage
	PostFragment *string // optional WebGL2 post-processing fragment
	TuningFile   *string // optional YAML tuning overrides
	Record       *bool
	Duration     *float64
	FPS          *int
	OutputFile   *string
	Codec        *string
	FFMPEGPath   *string
}

// Register binds the options to flags on fs.
func Register(fs *flag.FlagSet) *SceneOptions {
	return &SceneOptions{
		Help:         fs.Bool("help", false, "Show help message"),
		Debug:        fs.Bool("debug", false, "Enable development logging"),
		Width:        fs.Int("width", 1280, "Width of the window or recording"),
		Height:       fs.Int("height", 720, "Height of the window or recording"),
		Texture:      fs.String("texture", "lunarTexture.jpg", "Moon surface texture"),
		MoonVertex:   fs.String("moon-vertex", "", "WebGL2 vertex shader for the moon material"),
		MoonFragment: fs.String("moon-fragment", "", "WebGL2 fragment shader for the moon material"),
		PostFragment: fs.String("post-fragment", "", "WebGL2 fragment shader for the final post-processing pass"),
		TuningFile:   fs.String("tuning", "", "YAML file overriding the visual tuning constants"),
		Record:       fs.Bool("record", false, "Render offscreen to a video file instead of a window"),
		Duration:     fs.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:          fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile:   fs.String("output", "output.mp4", "Output file name for recording"),
		Codec:        fs.String("codec", "h264", "Video codec for recording (h264 or hevc)"),
		FFMPEGPath:   fs.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
}

// Validate checks the numeric options.
func (o *SceneOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height)
	}
	if *o.Record {
		if *o.FPS <= 0 {
			return fmt.Errorf("invalid fps %d", *o.FPS)
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("invalid duration %v", *o.Duration)
		}
		if *o.Codec != "h264" && *o.Codec != "hevc" {
			return fmt.Errorf("unsupported codec %q", *o.Codec)
		}
	}
	return nil
}

// Tuning gathers every hand-tuned constant of the scene.
type Tuning struct {
	Moon     moon.Tuning        `yaml:"moon"`
	Bloom    postfx.BloomParams `yaml:"bloom"`
	Stars    stars.Config       `yaml:"stars"`
	TimeStep float32            `yaml:"time_step"`
	// ClearColor is a 0xRRGGBB value.
	ClearColor uint32 `yaml:"clear_color"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Moon:       moon.DefaultTuning(),
		Bloom:      postfx.DefaultBloomParams(),
		Stars:      stars.DefaultConfig(),
		TimeStep:   postfx.DefaultTimeStep,
		ClearColor: 0x111111,
	}
}

// LoadTuning returns the defaults overlaid with the YAML file at path. An
// empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	return t, nil
}
