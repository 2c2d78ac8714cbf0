package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialPreamble(t *testing.T) {
	vs := MaterialPreamble("vertex")
	fs := MaterialPreamble("fragment")
	assert.True(t, strings.HasPrefix(vs, "#version 300 es"))
	assert.Contains(t, vs, "in vec3 position;")
	assert.Contains(t, vs, "uniform mat4 projectionMatrix;")
	assert.NotContains(t, fs, "in vec3 position;")
	assert.Contains(t, fs, "uniform mat3 normalMatrix;")
}

func TestGetMaterialShaderKeepsVersionedSource(t *testing.T) {
	full := "#version 300 es\nvoid main() {}\n"
	assert.Equal(t, full, GetMaterialShader("fragment", full))

	body := DefaultMoonFragment()
	got := GetMaterialShader("fragment", body)
	assert.True(t, strings.HasPrefix(got, "#version 300 es"))
	assert.True(t, strings.HasSuffix(got, body))
}

func TestDefaultPostFragmentUniforms(t *testing.T) {
	src := DefaultPostFragment()
	for _, u := range []string{"tDiffuse", "resolution", "time"} {
		assert.Contains(t, src, " "+u+";")
	}
}

func TestLoadSource(t *testing.T) {
	src, err := LoadSource("", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", src)

	path := filepath.Join(t.TempDir(), "post.frag")
	require.NoError(t, os.WriteFile(path, []byte("void main(){}"), 0o644))
	src, err = LoadSource(path, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "void main(){}", src)

	_, err = LoadSource(filepath.Join(t.TempDir(), "missing.frag"), "")
	assert.Error(t, err)
}
