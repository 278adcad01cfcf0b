// Package config defines the YAML-loadable viewer configuration: engine
// settings, user-control tuning, and the idle-animation selection. Loading
// applies defaults and validates, so downstream components can consume the
// structs without re-checking ranges.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gimbal-dev/gimbal/common"
)

// Idle animation type tags for IdleConfig.Type.
const (
	IdleTypeDriftPause = "drift_pause"
	IdleTypeAutoRotate = "auto_rotate"
)

// Rotation axis tags for AutoRotateConfig.Axis.
const (
	AxisYaw   = "yaw"
	AxisPitch = "pitch"
)

// Config is the root viewer configuration.
type Config struct {
	// Engine holds loop and window settings.
	Engine EngineConfig `yaml:"engine"`

	// Controls holds user-control tuning.
	Controls ControlsConfig `yaml:"controls"`

	// Idle selects and configures the idle animation. Nil disables idle
	// animation entirely.
	Idle *IdleConfig `yaml:"idle,omitempty"`
}

// EngineConfig holds loop and window settings.
type EngineConfig struct {
	// TickRate is the fixed update rate in ticks per second.
	TickRate float64 `yaml:"tickRate"`

	// WindowTitle is the window title text.
	WindowTitle string `yaml:"windowTitle"`

	// WindowWidth is the initial window width in pixels.
	WindowWidth int `yaml:"windowWidth"`

	// WindowHeight is the initial window height in pixels.
	WindowHeight int `yaml:"windowHeight"`

	// Profiling enables frame-rate and memory logging.
	Profiling bool `yaml:"profiling"`
}

// DampingConfig holds per-channel damping time constants in seconds.
type DampingConfig struct {
	Rotate float64 `yaml:"rotate"`
	Zoom   float64 `yaml:"zoom"`
	Move   float64 `yaml:"move"`
}

// ControlsConfig tunes the orbit and fly user-control rigs.
type ControlsConfig struct {
	// EnableOrbit permits orbit mode.
	EnableOrbit bool `yaml:"enableOrbit"`

	// EnableFly permits fly mode.
	EnableFly bool `yaml:"enableFly"`

	// EnablePan permits panning in orbit mode.
	EnablePan bool `yaml:"enablePan"`

	// MoveSpeed scales translation input, in world units per second.
	MoveSpeed float64 `yaml:"moveSpeed"`

	// RotateSpeed scales rotation input, in degrees per pixel of drag.
	RotateSpeed float64 `yaml:"rotateSpeed"`

	// ZoomSpeed scales scroll-wheel zoom input.
	ZoomSpeed float64 `yaml:"zoomSpeed"`

	// Damping smooths each input channel.
	Damping DampingConfig `yaml:"damping"`

	// PitchRange clamps orbit elevation in degrees. Nil leaves the
	// built-in near-vertical clamp.
	PitchRange *[2]float64 `yaml:"pitchRange,omitempty"`

	// YawRange clamps orbit azimuth in degrees. Nil means unbounded.
	YawRange *[2]float64 `yaml:"yawRange,omitempty"`

	// ZoomRange clamps the orbit radius in world units.
	ZoomRange *[2]float64 `yaml:"zoomRange,omitempty"`
}

// IdleConfig is a tagged union selecting and configuring the idle
// animation strategy. Type decides which of the strategy sub-structs is
// consulted.
type IdleConfig struct {
	// Type is one of IdleTypeDriftPause or IdleTypeAutoRotate.
	Type string `yaml:"type"`

	// InactivityTimeoutS is the seconds of input inactivity before the
	// controller requests idle mode.
	InactivityTimeoutS float64 `yaml:"inactivityTimeoutS"`

	// BlendTimeConstantS is the damping time constant in seconds for the
	// idle blend-weight fade.
	BlendTimeConstantS float64 `yaml:"blendTimeConstantS"`

	// EnableAutoStop stops the animation after AutoStopMs of idle time.
	EnableAutoStop bool `yaml:"enableAutoStop"`

	// AutoStopMs is the auto-stop duration in milliseconds.
	AutoStopMs float64 `yaml:"autoStopMs"`

	// DriftPause configures the drift-and-pause strategy.
	DriftPause *DriftPauseConfig `yaml:"driftPause,omitempty"`

	// AutoRotate configures the auto-rotate strategy.
	AutoRotate *AutoRotateConfig `yaml:"autoRotate,omitempty"`
}

// DriftPauseConfig holds drift-and-pause strategy fields.
type DriftPauseConfig struct {
	// HoverRadius is the waypoint disk radius in world units.
	HoverRadius float64 `yaml:"hoverRadius"`

	// LookTarget fixes the look-at point. Nil projects one from the pose
	// captured when idle begins.
	LookTarget *[3]float64 `yaml:"lookTarget,omitempty"`

	// DriftDurationRange is the [min, max] drift segment duration in
	// seconds.
	DriftDurationRange [2]float64 `yaml:"driftDurationRange"`

	// PauseDurationRange is the [min, max] pause segment duration in
	// seconds.
	PauseDurationRange [2]float64 `yaml:"pauseDurationRange"`

	// StepScaleRange is the [min, max] random scale applied to the hover
	// radius per waypoint.
	StepScaleRange [2]float64 `yaml:"stepScaleRange"`

	// Seed seeds the strategy's random generator for reproducible motion.
	// Nil seeds from the clock.
	Seed *int64 `yaml:"seed,omitempty"`
}

// AutoRotateConfig holds auto-rotate strategy fields.
type AutoRotateConfig struct {
	// Speed is the orbit speed in degrees per second.
	Speed float64 `yaml:"speed"`

	// Axis is AxisYaw or AxisPitch.
	Axis string `yaml:"axis"`

	// Reverse flips the initial direction.
	Reverse bool `yaml:"reverse"`

	// MaintainPitch preserves the entry pitch instead of aiming at the
	// focus point.
	MaintainPitch bool `yaml:"maintainPitch"`

	// Bounds restricts rotation to [lo, hi] degrees with ping-pong. Nil
	// rotates continuously.
	Bounds *[2]float64 `yaml:"bounds,omitempty"`
}

// Default returns a configuration with every field at its default value.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses, defaults, and validates a YAML configuration file.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if reading, parsing, or validation fails
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses, defaults, and validates YAML configuration bytes.
//
// Parameters:
//   - data: YAML bytes
//
// Returns:
//   - Config: the parsed configuration
//   - error: error if parsing or validation fails
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields with sensible defaults.
func (c *Config) applyDefaults() {
	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, 60)
	c.Engine.WindowTitle = common.Coalesce(c.Engine.WindowTitle, "Gimbal Viewer")
	c.Engine.WindowWidth = common.Coalesce(c.Engine.WindowWidth, 1280)
	c.Engine.WindowHeight = common.Coalesce(c.Engine.WindowHeight, 720)

	if !c.Controls.EnableOrbit && !c.Controls.EnableFly {
		c.Controls.EnableOrbit = true
	}
	c.Controls.MoveSpeed = common.Coalesce(c.Controls.MoveSpeed, 5)
	c.Controls.RotateSpeed = common.Coalesce(c.Controls.RotateSpeed, 0.25)
	c.Controls.ZoomSpeed = common.Coalesce(c.Controls.ZoomSpeed, 1)
	c.Controls.Damping.Rotate = common.Coalesce(c.Controls.Damping.Rotate, 0.1)
	c.Controls.Damping.Zoom = common.Coalesce(c.Controls.Damping.Zoom, 0.2)
	c.Controls.Damping.Move = common.Coalesce(c.Controls.Damping.Move, 0.15)

	if c.Idle != nil {
		c.Idle.Type = common.Coalesce(c.Idle.Type, IdleTypeDriftPause)
		c.Idle.InactivityTimeoutS = common.Coalesce(c.Idle.InactivityTimeoutS, 10)
		c.Idle.BlendTimeConstantS = common.Coalesce(c.Idle.BlendTimeConstantS, 1.5)

		if c.Idle.Type == IdleTypeDriftPause {
			if c.Idle.DriftPause == nil {
				c.Idle.DriftPause = &DriftPauseConfig{}
			}
			dp := c.Idle.DriftPause
			dp.HoverRadius = common.Coalesce(dp.HoverRadius, 1)
			if dp.DriftDurationRange == [2]float64{} {
				dp.DriftDurationRange = [2]float64{4, 8}
			}
			if dp.PauseDurationRange == [2]float64{} {
				dp.PauseDurationRange = [2]float64{2, 5}
			}
			if dp.StepScaleRange == [2]float64{} {
				dp.StepScaleRange = [2]float64{0.4, 1}
			}
		}
		if c.Idle.Type == IdleTypeAutoRotate {
			if c.Idle.AutoRotate == nil {
				c.Idle.AutoRotate = &AutoRotateConfig{}
			}
			ar := c.Idle.AutoRotate
			ar.Speed = common.Coalesce(ar.Speed, 10)
			ar.Axis = common.Coalesce(ar.Axis, AxisYaw)
		}
	}
}

// Validate checks cross-field constraints.
//
// Returns:
//   - error: the first constraint violation found, nil when valid
func (c *Config) Validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tickRate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Engine.WindowWidth <= 0 || c.Engine.WindowHeight <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d",
			c.Engine.WindowWidth, c.Engine.WindowHeight)
	}

	if c.Idle != nil {
		switch c.Idle.Type {
		case IdleTypeDriftPause, IdleTypeAutoRotate:
		default:
			return fmt.Errorf("unknown idle type %q", c.Idle.Type)
		}
		if c.Idle.InactivityTimeoutS <= 0 {
			return fmt.Errorf("idle.inactivityTimeoutS must be positive, got %v", c.Idle.InactivityTimeoutS)
		}
		if c.Idle.EnableAutoStop && c.Idle.AutoStopMs <= 0 {
			return fmt.Errorf("idle.autoStopMs must be positive when auto-stop is enabled")
		}
		if dp := c.Idle.DriftPause; dp != nil {
			for name, r := range map[string][2]float64{
				"driftDurationRange": dp.DriftDurationRange,
				"pauseDurationRange": dp.PauseDurationRange,
				"stepScaleRange":     dp.StepScaleRange,
			} {
				if r[0] < 0 || r[1] < r[0] {
					return fmt.Errorf("idle.driftPause.%s must satisfy 0 <= min <= max, got %v", name, r)
				}
			}
		}
		if ar := c.Idle.AutoRotate; ar != nil && c.Idle.Type == IdleTypeAutoRotate {
			if ar.Speed <= 0 {
				return fmt.Errorf("idle.autoRotate.speed must be positive, got %v", ar.Speed)
			}
			if ar.Axis != AxisYaw && ar.Axis != AxisPitch {
				return fmt.Errorf("idle.autoRotate.axis must be %q or %q, got %q", AxisYaw, AxisPitch, ar.Axis)
			}
			if ar.Bounds != nil && ar.Bounds[1] <= ar.Bounds[0] {
				return fmt.Errorf("idle.autoRotate.bounds must satisfy lo < hi, got %v", *ar.Bounds)
			}
		}
	}

	for name, r := range map[string]*[2]float64{
		"pitchRange": c.Controls.PitchRange,
		"yawRange":   c.Controls.YawRange,
		"zoomRange":  c.Controls.ZoomRange,
	} {
		if r != nil && r[1] <= r[0] {
			return fmt.Errorf("controls.%s must satisfy lo < hi, got %v", name, *r)
		}
	}
	return nil
}
