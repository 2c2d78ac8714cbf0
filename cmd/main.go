package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/richinsley/moonshader/glfwcontext"
	"github.com/richinsley/moonshader/logger"
	"github.com/richinsley/moonshader/options"
	"github.com/richinsley/moonshader/renderer"
	"go.uber.org/zap"
)

func runScene(opts *options.SceneOptions, tuning options.Tuning) {
	// If recording, the window is hidden and only hosts the GL context
	ctx, err := glfwcontext.New(*opts.Width, *opts.Height, !*opts.Record)
	if err != nil {
		logger.Log.Fatal("Failed to create window", zap.Error(err))
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(*opts.Width, *opts.Height, ctx)
	if err != nil {
		logger.Log.Fatal("Failed to create renderer", zap.Error(err))
	}
	defer r.Shutdown()

	if err := r.InitScene(opts, tuning); err != nil {
		logger.Log.Fatal("Failed to initialize scene", zap.Error(err))
	}

	if *opts.Record {
		logger.Log.Info("Starting offscreen render loop")
		if err := r.RunOffscreen(opts); err != nil {
			logger.Log.Fatal("Offscreen rendering failed", zap.Error(err))
		}
		logger.Log.Info("Successfully rendered", zap.String("output", *opts.OutputFile))
		return
	}

	logger.Log.Info("Starting interactive render loop")
	r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Moon Scene Viewer/Recorder")
		flag.PrintDefaults()
		return
	}

	if err := logger.Init(*opts.Debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	if err := opts.Validate(); err != nil {
		logger.Log.Fatal("Invalid options", zap.Error(err))
	}
	tuning, err := options.LoadTuning(*opts.TuningFile)
	if err != nil {
		logger.Log.Fatal("Failed to load tuning", zap.Error(err))
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		logger.Log.Fatal("Failed to initialize graphics", zap.Error(err))
	}
	defer glfwcontext.TerminateGraphics()

	runScene(opts, tuning)
}
