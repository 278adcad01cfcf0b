package camera

import (
	"math"

	"github.com/gimbal-dev/gimbal/common"
)

// ScalarSettleEpsilon is the default threshold under which a damped scalar
// counts as settled on its target.
const ScalarSettleEpsilon = 1e-4

// PoseSettleEpsilon is the default threshold for the summed per-axis
// position and orientation differences under which a damped pose counts as
// settled.
const PoseSettleEpsilon = 1e-3

// DampFactor computes the frame-rate independent blend factor for
// exponential damping: 1 − e^(−dt/τ). τ is the time constant in seconds —
// the time to close ~63% of the remaining distance. A non-positive τ snaps
// instantly (factor 1).
//
// Parameters:
//   - dt: elapsed seconds this frame
//   - tau: damping time constant in seconds
//
// Returns:
//   - float64: blend factor in [0, 1]
func DampFactor(dt, tau float64) float64 {
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/tau)
}

// Damp moves current toward target by one exponential-decay step.
//
// Parameters:
//   - current: the value being smoothed
//   - target: the value being approached
//   - dt: elapsed seconds this frame
//   - tau: damping time constant in seconds
//
// Returns:
//   - float64: the new smoothed value
func Damp(current, target, dt, tau float64) float64 {
	return common.Lerp(current, target, DampFactor(dt, tau))
}

// DampAngle moves an angle in degrees toward a target angle along the
// shorter arc by one exponential-decay step.
//
// Parameters:
//   - current: the angle being smoothed, in degrees
//   - target: the angle being approached, in degrees
//   - dt: elapsed seconds this frame
//   - tau: damping time constant in seconds
//
// Returns:
//   - float64: the new smoothed angle in degrees
func DampAngle(current, target, dt, tau float64) float64 {
	return common.LerpAngle(current, target, DampFactor(dt, tau))
}

// DampPose moves every pose component toward the target pose by one
// exponential-decay step, taking the shortest angular path per orientation
// axis.
//
// Parameters:
//   - current: the pose being smoothed
//   - target: the pose being approached
//   - dt: elapsed seconds this frame
//   - tau: damping time constant in seconds
//
// Returns:
//   - Pose: the new smoothed pose
func DampPose(current, target Pose, dt, tau float64) Pose {
	return current.Lerp(target, DampFactor(dt, tau))
}

// Settled reports whether a scalar is within epsilon of its target.
//
// Parameters:
//   - current: the smoothed value
//   - target: the target value
//   - epsilon: the settle threshold (ScalarSettleEpsilon when <= 0)
//
// Returns:
//   - bool: true when |current − target| < epsilon
func Settled(current, target, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = ScalarSettleEpsilon
	}
	return math.Abs(current-target) < epsilon
}

// PoseSettled reports whether both the position and orientation of a pose
// are within PoseSettleEpsilon of a target pose, using summed per-axis
// absolute differences.
//
// Parameters:
//   - current: the smoothed pose
//   - target: the target pose
//
// Returns:
//   - bool: true when the pose counts as settled on the target
func PoseSettled(current, target Pose) bool {
	return current.PositionDistance(target) < PoseSettleEpsilon &&
		current.OrientationDistance(target) < PoseSettleEpsilon
}
