package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/gimbal-dev/gimbal/engine/profiler"
	"github.com/gimbal-dev/gimbal/engine/viewport"
	"github.com/gimbal-dev/gimbal/engine/window"
)

// engine implements the Engine interface.
// Coordinates tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	viewports map[int]viewport.Viewport

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// updatePool manages a bounded set of reusable goroutines for the
	// parallel viewport update phase of each tick. Workers persist across
	// ticks, avoiding per-frame goroutine spawn/teardown overhead.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int // stored so we can log/inspect the configured count
}

// Engine is the main entry point.
// It orchestrates the tick loop, render loop, and window management, driving
// the registered viewports' camera pipelines each tick.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// Viewports and the tick callback advance at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after
	// the viewports have updated. Use this for app logic and input polling.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	// Use this for GPU buffer updates and drawing by the host renderer.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddViewport registers a viewport at the given key.
	// Active viewports are updated in parallel each tick.
	//
	// Parameters:
	//   - key: the viewport's registry key
	//   - v: the Viewport to register
	AddViewport(key int, v viewport.Viewport)

	// RemoveViewport removes the viewport at the given key.
	//
	// Parameters:
	//   - key: the key of the viewport to remove
	RemoveViewport(key int)

	// Viewport retrieves the viewport registered at the given key.
	// Returns nil if no viewport exists at that key.
	//
	// Parameters:
	//   - key: the key of the viewport to retrieve
	//
	// Returns:
	//   - viewport.Viewport: the viewport at the key, or nil if not found
	Viewport(key int) viewport.Viewport

	// Viewports returns a copy of all registered viewports keyed by their key.
	//
	// Returns:
	//   - map[int]viewport.Viewport: a copy of the viewports map
	Viewports() map[int]viewport.Viewport

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick channel, profiler, and viewport update pool with
// sensible defaults. Options are applied directly to the engine struct via
// the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		viewports:        make(map[int]viewport.Viewport),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		updateWorkers:    defaultUpdateWorkers(),
	}

	for _, opt := range options {
		opt(e)
	}

	// Initialize the update pool after options so WithUpdateWorkers can override the default.
	// Queue size of 64 accommodates typical viewport counts with headroom.
	e.updatePool = worker.NewDynamicWorkerPool(e.updateWorkers, 64, 1*time.Second)

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if height <= 0 {
				return
			}
			for _, v := range e.viewports {
				if c := v.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
		e.window.SetSuspendCallback(func(suspended bool) {
			if suspended {
				log.Println("engine: window suspended, pausing viewport updates")
			} else {
				log.Println("engine: window resumed")
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Each tick updates the active viewports in parallel, then fires the tick
// callback. Listens for dynamic rate changes via tickRateChannel. Exits when
// the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			// Updates have no visible effect while the window is minimized
			// or unfocused. The clock still advances, so resuming does not
			// replay the suspended interval as one giant delta.
			if e.window != nil && e.window.Suspended() {
				continue
			}

			tickStart := time.Now()
			e.updateViewports(dt)

			if e.tickCallback != nil {
				e.tickCallback(float32(dt))
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.ObserveTick(time.Since(tickStart))
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// updateViewports fans the active viewports' updates across the update pool.
// Workers are reused across ticks (no goroutine spawn overhead). A WaitGroup
// provides per-tick barrier sync since pool.Wait() blocks until workers
// idle-exit which is unsuitable for frame-rate workloads.
func (e *engine) updateViewports(dt float64) {
	keys := make([]int, 0, len(e.viewports))
	for k := range e.viewports {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var wg sync.WaitGroup
	taskID := 0
	for _, k := range keys {
		v := e.viewports[k]
		if !v.Active() {
			continue
		}

		wg.Add(1)
		vCap := v // capture for closure
		id := taskID
		taskID++
		e.updatePool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				vCap.Update(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Fires the render callback each frame so the host renderer can draw from the
// latest flushed poses.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running engine loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) AddViewport(key int, v viewport.Viewport) {
	e.viewports[key] = v
}

func (e *engine) RemoveViewport(key int) {
	delete(e.viewports, key)
}

func (e *engine) Viewport(key int) viewport.Viewport {
	return e.viewports[key]
}

func (e *engine) Viewports() map[int]viewport.Viewport {
	cp := make(map[int]viewport.Viewport, len(e.viewports))
	for k, v := range e.viewports {
		cp[k] = v
	}
	return cp
}
