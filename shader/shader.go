package shader

import (
	"fmt"
	"os"
	"strings"
)

// ────────────────────────────── Internal GLSL 4.10 ──────────────────────────────

const quadVertexSource = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// Luminance bright-pass with a soft knee around the threshold.
const brightPassFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform float u_threshold;
void main() {
    vec4 c = texture(u_texture, frag_uv);
    float l = dot(c.rgb, vec3(0.299, 0.587, 0.114));
    float k = smoothstep(u_threshold, u_threshold + 0.01, l);
    fragColor = vec4(c.rgb * k, 1.0);
}
`

// Nine-tap separable gaussian; u_direction is one texel along x or y
// multiplied by the bloom radius.
const blurFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform vec2 u_direction;
const float weights[5] = float[](0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216);
void main() {
    vec3 sum = texture(u_texture, frag_uv).rgb * weights[0];
    for (int i = 1; i < 5; i++) {
        vec2 off = u_direction * float(i);
        sum += texture(u_texture, frag_uv + off).rgb * weights[i];
        sum += texture(u_texture, frag_uv - off).rgb * weights[i];
    }
    fragColor = vec4(sum, 1.0);
}
`

const compositeFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform sampler2D u_bloom;
uniform float u_strength;
void main() {
    vec4 base = texture(u_texture, frag_uv);
    vec3 glow = texture(u_bloom, frag_uv).rgb * u_strength;
    fragColor = vec4(base.rgb + glow, base.a);
}
`

const starsVertexSource = `#version 410 core
layout (location = 0) in vec3 in_position;
layout (location = 1) in vec3 in_color;
layout (location = 2) in float in_size;
uniform mat4 u_viewProjection;
uniform float u_time;
uniform float u_fade;
out vec3 v_color;
out float v_fade;
void main() {
    v_color = in_color;
    v_fade = u_fade;
    vec4 clip = u_viewProjection * vec4(in_position, 1.0);
    float twinkle = 0.5 * (1.0 + sin(u_time + in_position.x));
    gl_PointSize = in_size * (30.0 / clip.w) * (3.0 + twinkle);
    gl_Position = clip;
}
`

const starsFragmentSource = `#version 410 core
in vec3 v_color;
in float v_fade;
out vec4 fragColor;
void main() {
    float opacity = 1.0;
    if (v_fade > 0.5) {
        float d = distance(gl_PointCoord, vec2(0.5));
        opacity = 1.0 / (1.0 + exp(16.0 * (d - 0.25)));
    }
    fragColor = vec4(v_color, opacity);
}
`

// ────────────────────────── WebGL2 material programs ──────────────────────────

const materialHeader = `#version 300 es
precision highp float;
precision highp int;

uniform mat4 modelMatrix;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform mat3 normalMatrix;
uniform vec3 cameraPosition;
`

const materialAttributes = `
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec2 uv;
`

const defaultMoonVertex = `
uniform float time;
uniform float mouse;
out vec2 vUv;
out vec3 vNormal;
out vec3 vView;
void main() {
    vUv = uv;
    vNormal = normalize(normalMatrix * normal);
    float wobble = sin(position.y * 6.0 + mouse) * 0.03 * mouse;
    vec3 p = position + normal * wobble;
    vec4 mv = modelViewMatrix * vec4(p, 1.0);
    vView = -mv.xyz;
    gl_Position = projectionMatrix * mv;
}
`

const defaultMoonFragment = `
uniform float time;
uniform float mouse;
uniform sampler2D landscape;
uniform vec4 resolution;
uniform vec2 uvRate1;
in vec2 vUv;
in vec3 vNormal;
in vec3 vView;
out vec4 fragColor;
void main() {
    vec2 uv = vUv * uvRate1 + vec2(mouse * 0.01, 0.0);
    vec3 tex = texture(landscape, uv).rgb;
    float rim = 1.0 - max(dot(normalize(vNormal), normalize(vView)), 0.0);
    vec3 color = tex + vec3(0.6, 0.7, 1.0) * pow(rim, 3.0) * 0.8;
    fragColor = vec4(color, 1.0);
}
`

const postVertex = `#version 300 es
precision highp float;
layout (location = 0) in vec2 position;
out vec2 vUv;
void main() {
    vUv = position * 0.5 + 0.5;
    gl_Position = vec4(position, 0.0, 1.0);
}
`

// Pixelation with a faint animated grain.
const defaultPostFragment = `#version 300 es
precision highp float;
uniform sampler2D tDiffuse;
uniform vec2 resolution;
uniform float time;
in vec2 vUv;
out vec4 fragColor;
float rand(vec2 co) {
    return fract(sin(dot(co, vec2(12.9898, 78.233))) * 43758.5453);
}
void main() {
    vec2 dxy = 2.0 * resolution;
    vec2 coord = dxy * floor(vUv / dxy);
    vec4 c = texture(tDiffuse, coord);
    float grain = (rand(coord + time) - 0.5) * 0.04;
    fragColor = vec4(c.rgb + grain, c.a);
}
`

// ──────────────────────────────── Public API ────────────────────────────────

func QuadVertexShader() string         { return quadVertexSource }
func BrightPassFragmentShader() string { return brightPassFragmentSource }
func BlurFragmentShader() string       { return blurFragmentSource }
func CompositeFragmentShader() string  { return compositeFragmentSource }
func StarsVertexShader() string        { return starsVertexSource }
func StarsFragmentShader() string      { return starsFragmentSource }

// PostVertexShader is the WebGL2 fullscreen vertex stage paired with custom
// post-processing fragments.
func PostVertexShader() string { return postVertex }

// DefaultPostFragment is used when no post-processing program is supplied.
func DefaultPostFragment() string { return defaultPostFragment }

// DefaultMoonVertex and DefaultMoonFragment are the material bodies used
// when no files are supplied. They expect MaterialPreamble in front.
func DefaultMoonVertex() string   { return defaultMoonVertex }
func DefaultMoonFragment() string { return defaultMoonFragment }

// MaterialPreamble returns the built-in declarations prepended to a material
// stage: the standard matrices, plus the vertex attributes for "vertex".
func MaterialPreamble(stage string) string {
	if stage == "vertex" {
		return materialHeader + materialAttributes
	}
	return materialHeader
}

// GetMaterialShader combines the preamble with a user-supplied body. A body
// that already carries a #version line is returned untouched.
func GetMaterialShader(stage, body string) string {
	if strings.HasPrefix(strings.TrimSpace(body), "#version") {
		return body
	}
	return MaterialPreamble(stage) + body
}

// LoadSource reads shader text from path, or returns fallback when path is
// empty.
func LoadSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(b), nil
}
