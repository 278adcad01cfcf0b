package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.Engine.TickRate)
	assert.Equal(t, 1280, cfg.Engine.WindowWidth)
	assert.Equal(t, 720, cfg.Engine.WindowHeight)
	assert.True(t, cfg.Controls.EnableOrbit, "orbit is the fallback control mode")
	assert.Equal(t, 0.25, cfg.Controls.RotateSpeed)
	assert.Nil(t, cfg.Idle, "idle stays disabled unless configured")
}

func TestParseFullDocument(t *testing.T) {
	doc := []byte(`
engine:
  tickRate: 120
  windowTitle: Inspector
  profiling: true
controls:
  enableFly: true
  moveSpeed: 12
  damping:
    rotate: 0.05
  zoomRange: [2, 40]
idle:
  type: drift_pause
  inactivityTimeoutS: 6
  enableAutoStop: true
  autoStopMs: 30000
  driftPause:
    hoverRadius: 2.5
    lookTarget: [0, 1, 0]
    seed: 1234
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Engine.TickRate)
	assert.Equal(t, "Inspector", cfg.Engine.WindowTitle)
	assert.True(t, cfg.Engine.Profiling)

	assert.True(t, cfg.Controls.EnableFly)
	assert.Equal(t, 12.0, cfg.Controls.MoveSpeed)
	assert.Equal(t, 0.05, cfg.Controls.Damping.Rotate)
	assert.Equal(t, 0.2, cfg.Controls.Damping.Zoom, "unset damping channels keep their defaults")
	require.NotNil(t, cfg.Controls.ZoomRange)
	assert.Equal(t, [2]float64{2, 40}, *cfg.Controls.ZoomRange)

	require.NotNil(t, cfg.Idle)
	assert.Equal(t, IdleTypeDriftPause, cfg.Idle.Type)
	assert.Equal(t, 6.0, cfg.Idle.InactivityTimeoutS)
	assert.Equal(t, 30000.0, cfg.Idle.AutoStopMs)

	dp := cfg.Idle.DriftPause
	require.NotNil(t, dp)
	assert.Equal(t, 2.5, dp.HoverRadius)
	require.NotNil(t, dp.LookTarget)
	assert.Equal(t, [3]float64{0, 1, 0}, *dp.LookTarget)
	require.NotNil(t, dp.Seed)
	assert.Equal(t, int64(1234), *dp.Seed)
	assert.Equal(t, [2]float64{4, 8}, dp.DriftDurationRange, "unset ranges keep their defaults")
}

func TestParseIdleDefaults(t *testing.T) {
	cfg, err := Parse([]byte("idle:\n  type: auto_rotate\n"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Idle.AutoRotate)
	assert.Equal(t, 10.0, cfg.Idle.AutoRotate.Speed)
	assert.Equal(t, AxisYaw, cfg.Idle.AutoRotate.Axis)
	assert.Equal(t, 10.0, cfg.Idle.InactivityTimeoutS)
	assert.Equal(t, 1.5, cfg.Idle.BlendTimeConstantS)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("engine: [not: a: mapping"))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown idle type", "idle:\n  type: spiral\n"},
		{"negative tick rate", "engine:\n  tickRate: -5\n"},
		{"auto-stop without duration", "idle:\n  type: drift_pause\n  enableAutoStop: true\n"},
		{"inverted zoom range", "controls:\n  zoomRange: [10, 2]\n"},
		{"inverted rotate bounds", "idle:\n  type: auto_rotate\n  autoRotate:\n    speed: 10\n    axis: yaw\n    bounds: [45, -45]\n"},
		{"bad rotate axis", "idle:\n  type: auto_rotate\n  autoRotate:\n    speed: 10\n    axis: diagonal\n"},
		{"inverted drift range", "idle:\n  type: drift_pause\n  driftPause:\n    driftDurationRange: [8, 4]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestParseEmptyMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("parsed empty document differs from defaults (-want +got):\n%s", diff)
	}
}
