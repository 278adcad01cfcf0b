package viewport

import (
	"github.com/gimbal-dev/gimbal/engine/camera"
	"github.com/gimbal-dev/gimbal/engine/config"
)

// ViewportBuilderOption is a functional option for configuring a Viewport.
// Use the With* functions to create options.
type ViewportBuilderOption func(v *viewportImpl)

// WithActive sets whether the viewport is updated each frame.
//
// Parameters:
//   - active: whether the viewport is active
//
// Returns:
//   - ViewportBuilderOption: option function to apply
func WithActive(active bool) ViewportBuilderOption {
	return func(v *viewportImpl) {
		v.active = active
	}
}

// WithPoseSink sets the per-frame pose consumer.
//
// Parameters:
//   - sink: the pose consumer
//
// Returns:
//   - ViewportBuilderOption: option function to apply
func WithPoseSink(sink PoseSink) ViewportBuilderOption {
	return func(v *viewportImpl) {
		v.sink = sink
	}
}

// WithRigs registers initial user-control rigs.
//
// Parameters:
//   - rigs: the rigs to register
//
// Returns:
//   - ViewportBuilderOption: option function to apply
func WithRigs(rigs ...camera.Rig) ViewportBuilderOption {
	return func(v *viewportImpl) {
		for _, r := range rigs {
			if r != nil {
				v.rigs[r.Mode()] = r
			}
		}
	}
}

// WithControls builds orbit and fly rigs from controls configuration and
// registers the enabled ones. Speeds, damping time constants, and clamp
// ranges carry over from the configuration; unset fields keep rig defaults.
//
// Parameters:
//   - cfg: the validated controls configuration
//
// Returns:
//   - ViewportBuilderOption: option function to apply
func WithControls(cfg config.ControlsConfig) ViewportBuilderOption {
	return func(v *viewportImpl) {
		if cfg.EnableOrbit {
			opts := []camera.OrbitRigOption{
				camera.WithOrbitSpeeds(cfg.RotateSpeed, cfg.ZoomSpeed, 0),
				camera.WithOrbitDamping(cfg.Damping.Rotate, cfg.Damping.Zoom, cfg.Damping.Move),
				camera.WithOrbitPanEnabled(cfg.EnablePan),
			}
			if r := cfg.PitchRange; r != nil {
				opts = append(opts, camera.WithOrbitElevationRange(r[0], r[1]))
			}
			if r := cfg.YawRange; r != nil {
				opts = append(opts, camera.WithOrbitYawRange(r[0], r[1]))
			}
			if r := cfg.ZoomRange; r != nil {
				opts = append(opts, camera.WithOrbitRadiusRange(r[0], r[1]))
			}
			rig := camera.NewOrbitRig(v.ctrl, opts...)
			v.rigs[rig.Mode()] = rig
		}

		if cfg.EnableFly {
			rig := camera.NewFlyRig(v.ctrl,
				camera.WithFlySpeeds(cfg.MoveSpeed, cfg.RotateSpeed),
				camera.WithFlyDamping(cfg.Damping.Rotate, cfg.Damping.Move),
			)
			v.rigs[rig.Mode()] = rig
		}
	}
}
