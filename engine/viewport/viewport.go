package viewport

import (
	"fmt"
	"sync"

	"github.com/gimbal-dev/gimbal/engine/camera"
	"github.com/gimbal-dev/gimbal/engine/config"
	"github.com/gimbal-dev/gimbal/engine/idle"
)

// PoseSink receives the camera pose whenever it changed during a frame.
// Hosts typically marshal the pose into a camera uniform buffer here.
type PoseSink func(p camera.Pose)

// Viewport binds a camera Controller, a Camera, and the user-control rigs
// that feed it into one named, updatable unit. Viewports can be hot-swapped
// via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Viewport interface {
	// Name returns the viewport's identifier.
	Name() string

	// SetName sets the viewport's identifier.
	SetName(name string)

	// Active returns whether this viewport is currently updated each frame.
	Active() bool

	// SetActive sets whether this viewport is updated each frame.
	SetActive(active bool)

	// Controller returns the viewport's camera controller.
	Controller() camera.Controller

	// Camera returns the viewport's camera.
	Camera() camera.Camera

	// SetCamera replaces the viewport's camera. The new camera's pose source
	// is rebound to the viewport's controller.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// AddRig registers a user-control rig. Rigs are updated each frame before
	// the controller and only write poses while their mode is active.
	//
	// Parameters:
	//   - r: the rig to register
	AddRig(r camera.Rig)

	// Rig returns the registered rig for the given mode, or nil.
	//
	// Parameters:
	//   - mode: the control mode to look up
	//
	// Returns:
	//   - camera.Rig: the rig owning that mode, or nil
	Rig(mode camera.Mode) camera.Rig

	// SetPoseSink sets the callback invoked once per frame when the pose
	// changed (or nil to disable).
	//
	// Parameters:
	//   - sink: the pose consumer
	SetPoseSink(sink PoseSink)

	// ConfigureIdle builds an idle animation from configuration and installs
	// it on the controller, replacing any current one. The configured
	// inactivity timeout is pushed into the controller as well.
	//
	// Parameters:
	//   - cfg: the validated idle configuration
	//
	// Returns:
	//   - error: error if the configuration names an unknown strategy
	ConfigureIdle(cfg config.IdleConfig) error

	// Update advances rigs, the controller, and the camera by one frame.
	// When the pose changed this frame the camera matrices are recomputed and
	// the pose sink fires exactly once. No-ops while the viewport is inactive.
	//
	// Parameters:
	//   - dt: elapsed time since the last frame in seconds
	Update(dt float64)

	// Dispose releases the controller and its idle animation. Safe to call
	// more than once.
	Dispose()
}

type viewportImpl struct {
	mu *sync.RWMutex

	name   string
	active bool

	ctrl camera.Controller
	cam  camera.Camera
	rigs map[camera.Mode]camera.Rig

	sink PoseSink
}

var _ Viewport = &viewportImpl{}

// NewViewport creates a viewport binding a controller and a camera. Both are
// required and NewViewport panics if either is nil. The camera's pose source
// is bound to the controller so matrices always follow the owned pose.
//
// Parameters:
//   - name: the name of the viewport
//   - ctrl: the camera controller (must not be nil)
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the viewport
//
// Returns:
//   - Viewport: the newly created viewport
func NewViewport(name string, ctrl camera.Controller, cam camera.Camera, options ...ViewportBuilderOption) Viewport {
	if ctrl == nil {
		panic("viewport: NewViewport requires a non-nil Controller")
	}
	if cam == nil {
		panic("viewport: NewViewport requires a non-nil Camera")
	}

	v := &viewportImpl{
		mu:     &sync.RWMutex{},
		name:   name,
		active: false,
		ctrl:   ctrl,
		cam:    cam,
		rigs:   make(map[camera.Mode]camera.Rig),
	}
	cam.SetSource(ctrl)

	for _, option := range options {
		option(v)
	}
	return v
}

func (v *viewportImpl) Name() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.name
}

func (v *viewportImpl) SetName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = name
}

func (v *viewportImpl) Active() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.active
}

func (v *viewportImpl) SetActive(active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = active
}

func (v *viewportImpl) Controller() camera.Controller {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ctrl
}

func (v *viewportImpl) Camera() camera.Camera {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cam
}

func (v *viewportImpl) SetCamera(cam camera.Camera) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cam = cam
	if cam != nil {
		cam.SetSource(v.ctrl)
	}
}

func (v *viewportImpl) AddRig(r camera.Rig) {
	if r == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rigs[r.Mode()] = r
}

func (v *viewportImpl) Rig(mode camera.Mode) camera.Rig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rigs[mode]
}

func (v *viewportImpl) SetPoseSink(sink PoseSink) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sink = sink
}

func (v *viewportImpl) ConfigureIdle(cfg config.IdleConfig) error {
	anim, err := idle.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("viewport %q: %w", v.Name(), err)
	}

	v.mu.RLock()
	ctrl := v.ctrl
	v.mu.RUnlock()
	ctrl.SetIdleAnimation(anim)
	ctrl.SetInactivityTimeout(cfg.InactivityTimeoutS)
	return nil
}

func (v *viewportImpl) Update(dt float64) {
	v.mu.RLock()
	if !v.active {
		v.mu.RUnlock()
		return
	}
	ctrl := v.ctrl
	cam := v.cam
	sink := v.sink
	rigs := make([]camera.Rig, 0, len(v.rigs))
	for _, r := range v.rigs {
		rigs = append(rigs, r)
	}
	v.mu.RUnlock()

	// Rigs first so user input lands before the controller resolves the
	// frame, then the controller drives the pose store.
	for _, r := range rigs {
		r.Update(dt)
	}
	ctrl.Update(dt)

	if ctrl.State().Dirty() {
		if cam != nil {
			cam.Update()
		}
		if sink != nil {
			sink(ctrl.Pose())
		}
	}
}

func (v *viewportImpl) Dispose() {
	v.mu.RLock()
	ctrl := v.ctrl
	v.mu.RUnlock()
	ctrl.Dispose()
}
