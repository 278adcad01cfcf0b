package idle

import (
	"fmt"

	"github.com/gimbal-dev/gimbal/engine/camera"
	"github.com/gimbal-dev/gimbal/engine/config"
)

// FromConfig constructs the idle animation selected by cfg.Type with every
// configured field applied.
//
// Parameters:
//   - cfg: the idle section of the viewer configuration
//
// Returns:
//   - camera.IdleAnimation: the configured strategy
//   - error: error when the type tag is unknown
func FromConfig(cfg config.IdleConfig) (camera.IdleAnimation, error) {
	autoStop := 0.0
	if cfg.EnableAutoStop {
		autoStop = cfg.AutoStopMs / 1000
	}

	switch cfg.Type {
	case config.IdleTypeDriftPause:
		options := []DriftPauseOption{
			WithBlendTimeConstant(cfg.BlendTimeConstantS),
			WithAutoStop(autoStop),
		}
		if dp := cfg.DriftPause; dp != nil {
			options = append(options,
				WithHoverRadius(dp.HoverRadius),
				WithDriftDurationRange(dp.DriftDurationRange[0], dp.DriftDurationRange[1]),
				WithPauseDurationRange(dp.PauseDurationRange[0], dp.PauseDurationRange[1]),
				WithStepScaleRange(dp.StepScaleRange[0], dp.StepScaleRange[1]),
			)
			if dp.LookTarget != nil {
				options = append(options, WithLookTarget(*dp.LookTarget))
			}
			if dp.Seed != nil {
				options = append(options, WithSeed(*dp.Seed))
			}
		}
		return NewDriftPause(options...), nil

	case config.IdleTypeAutoRotate:
		options := []AutoRotateOption{
			WithRotateBlendTimeConstant(cfg.BlendTimeConstantS),
			WithRotateAutoStop(autoStop),
		}
		if ar := cfg.AutoRotate; ar != nil {
			axis := AxisYaw
			if ar.Axis == config.AxisPitch {
				axis = AxisPitch
			}
			options = append(options,
				WithSpeed(ar.Speed),
				WithAxis(axis),
				WithReverse(ar.Reverse),
				WithMaintainPitch(ar.MaintainPitch),
			)
			if ar.Bounds != nil {
				options = append(options, WithBounds(ar.Bounds[0], ar.Bounds[1]))
			}
		}
		return NewAutoRotate(options...), nil
	}
	return nil, fmt.Errorf("unknown idle animation type %q", cfg.Type)
}
