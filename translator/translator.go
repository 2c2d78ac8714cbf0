package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/moonshader/logger"
	"go.uber.org/zap"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
)

// GetTranslator returns the shared WebGL2 shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr == nil {
			logger.Log.Debug("shader translator ready")
		}
	})
	return translator, initErr
}

// Result is a translated shader stage.
type Result struct {
	Code      string
	Variables map[string]gst.ShaderVariable
}

// Translate converts WebGL2 (GLSL ES 3.00) source for the given stage
// ("vertex" or "fragment") to desktop GLSL 4.10.
func Translate(source, stage string) (*Result, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		logger.Log.Error("shader translation failed", zap.String("stage", stage), zap.Error(err))
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return &Result{Code: out.Code, Variables: out.Variables}, nil
}
