package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gimbal-dev/gimbal/engine/easing"
)

func TestStateMachine(t *testing.T) {
	tw := New(0.0, 1.0, 1.0)
	assert.Equal(t, StateIdle, tw.State())

	// Updates in idle are no-ops.
	assert.False(t, tw.Update(0.1))
	assert.Equal(t, 0.0, tw.Value())

	tw.Start()
	assert.Equal(t, StateRunning, tw.State())
	assert.True(t, tw.Update(0.25))

	tw.Pause()
	assert.Equal(t, StatePaused, tw.State())
	before := tw.Value()
	assert.True(t, tw.Update(10))
	assert.Equal(t, before, tw.Value(), "paused tween must not advance")

	tw.Resume()
	assert.Equal(t, StateRunning, tw.State())

	tw.Stop()
	assert.Equal(t, StateIdle, tw.State())
	assert.Equal(t, 0.0, tw.Value())
}

func TestLinearProgress(t *testing.T) {
	tw := New(0.0, 10.0, 2.0)
	tw.Start()
	tw.Update(0.5)
	assert.InDelta(t, 2.5, tw.Value(), 1e-12)
	tw.Update(0.5)
	assert.InDelta(t, 5.0, tw.Value(), 1e-12)
}

func TestDelayAndStartCallback(t *testing.T) {
	starts := 0
	var updates []float64
	tw := New(0.0, 1.0, 1.0,
		WithDelay[float64](0.5),
		OnStart[float64](func() { starts++ }),
		OnUpdate[float64](func(_ float64, eased float64) { updates = append(updates, eased) }),
	)
	tw.Start()

	tw.Update(0.25)
	assert.Zero(t, starts, "on-start must not fire before the delay elapses")
	assert.Empty(t, updates)
	assert.Equal(t, 0.0, tw.Value())

	tw.Update(0.5) // crosses the delay, 0.25s into the tween
	assert.Equal(t, 1, starts)
	require.Len(t, updates, 1)
	assert.InDelta(t, 0.25, updates[0], 1e-12)

	tw.Update(0.25)
	assert.Equal(t, 1, starts, "on-start fires exactly once")
}

func TestCompletionSnapsExactlyToEnd(t *testing.T) {
	completions := 0
	var lastValue, lastEased float64
	tw := New(0.0, 7.0, 1.0,
		WithEasing[float64](easing.CubicInOut),
		OnUpdate[float64](func(v, eased float64) { lastValue, lastEased = v, eased }),
		OnComplete[float64](func(v float64) { completions++ }),
	)
	tw.Start()

	tw.Update(0.9)
	tw.Update(0.5) // overshoots the end
	assert.Equal(t, StateCompleted, tw.State())
	assert.Equal(t, 7.0, tw.Value(), "completion must snap exactly to the end value")
	assert.Equal(t, 7.0, lastValue)
	assert.Equal(t, 1.0, lastEased)
	assert.Equal(t, 1, completions)

	// Further updates and forced completion never re-fire.
	assert.False(t, tw.Update(1))
	tw.Complete(true)
	assert.Equal(t, 1, completions)
}

func TestRepeatAndYoyo(t *testing.T) {
	var repeats []int
	tw := New(0.0, 1.0, 1.0,
		WithRepeat[float64](2),
		WithYoyo[float64](true),
		OnRepeat[float64](func(i int) { repeats = append(repeats, i) }),
	)
	tw.Start()

	tw.Update(0.5)
	assert.InDelta(t, 0.5, tw.Value(), 1e-12)

	tw.Update(0.75) // 1.25s: second iteration, reversed
	assert.Equal(t, []int{1}, repeats)
	assert.InDelta(t, 0.75, tw.Value(), 1e-12, "yoyo iteration runs backwards")

	tw.Update(1.0) // 2.25s: third iteration, forward again
	assert.Equal(t, []int{1, 2}, repeats)
	assert.InDelta(t, 0.25, tw.Value(), 1e-12)

	tw.Update(1.0) // past 3s: all iterations consumed
	assert.Equal(t, StateCompleted, tw.State())
	assert.Equal(t, 1.0, tw.Value())
}

func TestDeterminism(t *testing.T) {
	steps := []float64{0.016, 0.033, 0.008, 0.25, 0.1, 0.016}
	run := func() []float64 {
		var out []float64
		tw := New(2.0, -3.0, 0.4,
			WithEasing[float64](easing.BackInOut),
			OnUpdate[float64](func(v, _ float64) { out = append(out, v) }),
		)
		tw.Start()
		for _, dt := range steps {
			tw.Update(dt)
		}
		return out
	}
	assert.Equal(t, run(), run(), "identical dt sequences must produce identical values")
}

func TestSeek(t *testing.T) {
	tw := New(0.0, 10.0, 2.0, WithDelay[float64](1.0))
	tw.Start()

	tw.Seek(2.0) // 1s past the delay = halfway
	assert.InDelta(t, 5.0, tw.Value(), 1e-12)

	tw.Seek(0.5) // back inside the delay
	assert.InDelta(t, 0.0, tw.Value(), 1e-12)

	// Seek on a yoyo tween lands in the reversed iteration.
	ty := New(0.0, 1.0, 1.0, WithRepeat[float64](1), WithYoyo[float64](true))
	ty.Start()
	ty.Seek(1.25)
	assert.InDelta(t, 0.75, ty.Value(), 1e-12)
}

func TestRunResolvesFuture(t *testing.T) {
	tw, fut := Run(0.0, 4.0, 0.5)
	assert.False(t, fut.Resolved())

	tw.Update(0.25)
	assert.False(t, fut.Resolved())

	tw.Update(0.5)
	require.True(t, fut.Resolved())
	assert.False(t, fut.Canceled())
	assert.Equal(t, 4.0, fut.Value())

	select {
	case <-fut.Done():
	default:
		t.Fatal("done channel not closed after completion")
	}
}

func TestStopCancelsFutureExactlyOnce(t *testing.T) {
	tw, fut := Run(0.0, 4.0, 1.0)
	tw.Update(0.5)
	tw.Stop()

	require.True(t, fut.Resolved())
	assert.True(t, fut.Canceled())
	assert.InDelta(t, 2.0, fut.Value(), 1e-12, "canceled future keeps the last produced value")

	// Restarting and completing must not re-resolve the canceled future.
	tw.Start()
	tw.Update(2.0)
	assert.True(t, fut.Canceled())
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	tw := New(1.0, 2.0, 0)
	tw.Start()
	assert.False(t, tw.Update(0.001))
	assert.Equal(t, StateCompleted, tw.State())
	assert.Equal(t, 2.0, tw.Value())
}

func TestInfiniteRepeatNeverCompletes(t *testing.T) {
	tw := New(0.0, 1.0, 0.25, WithRepeat[float64](-1))
	tw.Start()
	for i := 0; i < 100; i++ {
		assert.True(t, tw.Update(0.1))
	}
	assert.Equal(t, StateRunning, tw.State())
}

func TestCompleteWithoutCallbacks(t *testing.T) {
	fired := false
	tw := New(0.0, 1.0, 1.0, OnComplete[float64](func(float64) { fired = true }))
	tw.Start()
	tw.Update(0.1)
	tw.Complete(false)
	assert.Equal(t, StateCompleted, tw.State())
	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, fired)
}
