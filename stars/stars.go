// Package stars renders the point-sprite starfield behind the moon.
package stars

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Config controls the shape of the starfield shell.
type Config struct {
	Radius     float32 `yaml:"radius"`
	Depth      float32 `yaml:"depth"`
	Count      int     `yaml:"count"`
	Factor     float32 `yaml:"factor"`
	Saturation float32 `yaml:"saturation"`
	Fade       bool    `yaml:"fade"`
	Seed       int64   `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Radius:     100,
		Depth:      50,
		Count:      5000,
		Factor:     4,
		Saturation: 0,
		Fade:       true,
		Seed:       1,
	}
}

// Star is one point of the field.
type Star struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Size     float32
}

// Generate places cfg.Count stars on a shell that starts at Radius+Depth
// and shrinks inward by a random fraction of Depth/Count per star.
func Generate(cfg Config, rng *rand.Rand) []Star {
	if cfg.Count <= 0 {
		return nil
	}
	out := make([]Star, cfg.Count)
	r := cfg.Radius + cfg.Depth
	increment := cfg.Depth / float32(cfg.Count)
	for i := range out {
		r -= increment * rng.Float32()
		out[i] = Star{
			Position: randomOnSphere(r, rng),
			Color:    HSL(float32(i)/float32(cfg.Count), cfg.Saturation, 0.9),
			Size:     (0.5 + 0.5*rng.Float32()) * cfg.Factor,
		}
	}
	return out
}

// randomOnSphere returns a uniformly distributed point at distance r.
func randomOnSphere(r float32, rng *rand.Rand) mgl32.Vec3 {
	phi := math32.Acos(1 - rng.Float32()*2)
	theta := rng.Float32() * 2 * math32.Pi
	sinPhi := math32.Sin(phi) * r
	return mgl32.Vec3{
		sinPhi * math32.Sin(theta),
		math32.Cos(phi) * r,
		sinPhi * math32.Cos(theta),
	}
}

// HSL converts hue, saturation and lightness (all in [0, 1]) to RGB.
func HSL(h, s, l float32) mgl32.Vec3 {
	h = h - math32.Floor(h)
	if s == 0 {
		return mgl32.Vec3{l, l, l}
	}
	var q float32
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return mgl32.Vec3{
		hueToRGB(p, q, h+1.0/3),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}

// Interleaved packs stars as position(3) color(3) size(1).
func Interleaved(stars []Star) []float32 {
	out := make([]float32, 0, len(stars)*7)
	for _, s := range stars {
		out = append(out,
			s.Position[0], s.Position[1], s.Position[2],
			s.Color[0], s.Color[1], s.Color[2],
			s.Size)
	}
	return out
}
