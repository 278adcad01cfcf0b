package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "orbit", ModeOrbit.String())
	assert.Equal(t, "fly", ModeFly.String())
	assert.Equal(t, "transitioning", ModeTransitioning.String())
}

func TestModeIsUserControl(t *testing.T) {
	assert.True(t, ModeOrbit.IsUserControl())
	assert.True(t, ModeFly.IsUserControl())
	assert.False(t, ModeIdle.IsUserControl())
	assert.False(t, ModeTransitioning.IsUserControl())
}

func TestModeMachineStartsIdle(t *testing.T) {
	m := NewModeMachine()
	assert.Equal(t, ModeIdle, m.Mode())
	assert.Equal(t, ModeOrbit, m.UserControlMode())
	assert.True(t, m.CanApplyIdlePose())
}

func TestModeMachineLegalTransitions(t *testing.T) {
	pairs := [][2]Mode{
		{ModeIdle, ModeOrbit},
		{ModeOrbit, ModeFly},
		{ModeFly, ModeIdle},
		{ModeIdle, ModeFly},
		{ModeFly, ModeOrbit},
		{ModeOrbit, ModeIdle},
	}
	m := NewModeMachine()
	for _, pair := range pairs {
		require.NoError(t, m.Transition(pair[0], "setup"))
		assert.NoError(t, m.Transition(pair[1], "test"))
		assert.Equal(t, pair[1], m.Mode())
	}
}

func TestModeMachineSameModeTransitionIsNoOp(t *testing.T) {
	m := NewModeMachine()
	changes := 0
	m.AddObserver(ModeObserver{OnChange: func(Mode, Mode, string) { changes++ }})

	assert.NoError(t, m.Transition(ModeIdle, "noop"))
	assert.Equal(t, 0, changes, "a same-mode transition does not notify observers")
}

func TestModeMachineTransitioningLifecycle(t *testing.T) {
	m := NewModeMachine()
	require.NoError(t, m.Transition(ModeFly, "setup"))

	require.NoError(t, m.EnterTransitioning("focus object"))
	assert.Equal(t, ModeTransitioning, m.Mode())
	assert.False(t, m.CanApplyIdlePose())

	assert.Error(t, m.EnterTransitioning("again"), "transitioning cannot be re-entered")
	assert.Equal(t, ModeTransitioning, m.Mode())

	restored, err := m.ExitTransitioning("arrived")
	require.NoError(t, err)
	assert.Equal(t, ModeFly, restored, "exit restores the pre-transition mode")
	assert.Equal(t, ModeFly, m.Mode())
}

func TestModeMachineExitTransitioningRestoresIdle(t *testing.T) {
	m := NewModeMachine()
	require.NoError(t, m.EnterTransitioning("scripted"))

	restored, err := m.ExitTransitioning("arrived")
	require.NoError(t, err)
	assert.Equal(t, ModeIdle, restored)
}

func TestModeMachineExitWithoutTransitioningFails(t *testing.T) {
	m := NewModeMachine()
	_, err := m.ExitTransitioning("stray")
	assert.Error(t, err)
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestModeMachineSetUserControlMode(t *testing.T) {
	m := NewModeMachine()

	assert.Error(t, m.SetUserControlMode(ModeIdle))
	assert.Error(t, m.SetUserControlMode(ModeTransitioning))

	// While idle, declaring a preference does not change the active mode.
	require.NoError(t, m.SetUserControlMode(ModeFly))
	assert.Equal(t, ModeIdle, m.Mode())
	assert.Equal(t, ModeFly, m.UserControlMode())

	// While the other control mode is active, the machine switches live.
	require.NoError(t, m.Transition(ModeOrbit, "setup"))
	require.NoError(t, m.SetUserControlMode(ModeFly))
	assert.Equal(t, ModeFly, m.Mode())
}

func TestModeMachineObserverOrderAndPayload(t *testing.T) {
	m := NewModeMachine()
	var events []string
	m.AddObserver(ModeObserver{
		OnExit:   func(mode Mode, trigger string) { events = append(events, "exit:"+mode.String()) },
		OnEnter:  func(mode Mode, trigger string) { events = append(events, "enter:"+mode.String()) },
		OnChange: func(from, to Mode, trigger string) { events = append(events, "change:"+from.String()+"->"+to.String()) },
	})

	require.NoError(t, m.Transition(ModeOrbit, "input"))
	assert.Equal(t, []string{"exit:idle", "enter:orbit", "change:idle->orbit"}, events)
}

func TestModeMachineObserverMayTransition(t *testing.T) {
	m := NewModeMachine()
	m.AddObserver(ModeObserver{
		OnEnter: func(mode Mode, trigger string) {
			if mode == ModeOrbit && trigger != "chained" {
				_ = m.Transition(ModeFly, "chained")
			}
		},
	})

	require.NoError(t, m.Transition(ModeOrbit, "input"))
	assert.Equal(t, ModeFly, m.Mode(), "observers run outside the lock and may transition")
}
