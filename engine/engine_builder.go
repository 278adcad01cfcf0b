package engine

import (
	"runtime"
	"time"

	"github.com/gimbal-dev/gimbal/engine/config"
	"github.com/gimbal-dev/gimbal/engine/viewport"
	"github.com/gimbal-dev/gimbal/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// defaultUpdateWorkers leaves one CPU free for the render and window threads.
func defaultUpdateWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Viewports and the tick callback advance at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithViewport registers a viewport at the given key during engine construction.
//
// Parameters:
//   - key: the viewport's registry key
//   - v: the Viewport to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewport(key int, v viewport.Viewport) EngineBuilderOption {
	return func(e *engine) {
		e.viewports[key] = v
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}

// WithUpdateWorkers sets the number of worker goroutines used during the
// parallel viewport update phase of each tick. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateWorkers(n int) EngineBuilderOption {
	return func(e *engine) {
		if n < 1 {
			n = 1
		}
		e.updateWorkers = n
	}
}

// WithConfig applies engine settings from configuration: tick rate and
// profiling. Window creation stays with the caller since the window owns an
// OS thread.
//
// Parameters:
//   - cfg: the validated engine configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.EngineConfig) EngineBuilderOption {
	return func(e *engine) {
		if cfg.TickRate > 0 {
			e.engineTickRate = time.Second / time.Duration(cfg.TickRate)
		}
		e.profilingEnabled = cfg.Profiling
	}
}
