// Package camera owns the viewer camera's pose: who may write it each
// frame, how it is smoothed or tweened toward targets, and how control
// switches between user input, idle animation, and programmatic transitions
// without visible snapping. The Controller is the per-frame entry point;
// CameraState stores the pose; Camera derives view/projection matrices for
// whatever renderer the host application attaches.
package camera

import (
	"encoding/json"
	"math"

	"github.com/gimbal-dev/gimbal/common"
)

// Pose describes the camera as a value type: a world-space position, an
// orientation as pitch/yaw/roll Euler angles in degrees, and an optional
// focus distance to the point of interest along the view direction. A focus
// distance of zero means "unset".
//
// Poses are passed and stored by value; no component ever shares a mutable
// Pose with another.
type Pose struct {
	// Position is the world-space camera position.
	Position [3]float64 `json:"position"`

	// Orientation holds pitch, yaw, roll in degrees. Yaw 0 faces -Z; positive
	// pitch looks up.
	Orientation [3]float64 `json:"orientation"`

	// FocusDistance is the distance to the look target along the forward
	// vector. Zero means no focus distance is known.
	FocusDistance float64 `json:"focusDistance,omitempty"`
}

// Clone returns a copy of the pose.
//
// Returns:
//   - Pose: an independent copy
func (p Pose) Clone() Pose {
	return p
}

// CopyFrom overwrites this pose with the values of another.
//
// Parameters:
//   - other: the pose to copy values from
func (p *Pose) CopyFrom(other Pose) {
	*p = other
}

// HasFocusDistance reports whether the pose carries a usable focus distance.
//
// Returns:
//   - bool: true when the focus distance is positive
func (p Pose) HasFocusDistance() bool {
	return p.FocusDistance > 0
}

// Valid reports whether every component of the pose is finite. The camera
// core detects invalid poses but never auto-corrects them; writers reject
// invalid poses and keep the last valid one.
//
// Returns:
//   - bool: true when position, orientation, and focus distance are all finite
func (p Pose) Valid() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(p.Position[i]) || math.IsInf(p.Position[i], 0) {
			return false
		}
		if math.IsNaN(p.Orientation[i]) || math.IsInf(p.Orientation[i], 0) {
			return false
		}
	}
	return !math.IsNaN(p.FocusDistance) && !math.IsInf(p.FocusDistance, 0)
}

// Lerp interpolates between this pose and another. Position and focus
// distance interpolate linearly; each orientation axis takes the shortest
// angular path, so interpolating across the ±180° seam never swings the
// long way around.
//
// Parameters:
//   - to: the destination pose (returned when t = 1)
//   - t: interpolation factor
//
// Returns:
//   - Pose: the interpolated pose
func (p Pose) Lerp(to Pose, t float64) Pose {
	var out Pose
	for i := 0; i < 3; i++ {
		out.Position[i] = common.Lerp(p.Position[i], to.Position[i], t)
		out.Orientation[i] = common.LerpAngle(p.Orientation[i], to.Orientation[i], t)
	}
	out.FocusDistance = common.Lerp(p.FocusDistance, to.FocusDistance, t)
	return out
}

// Forward returns the unit view direction derived from pitch and yaw.
//
// Returns:
//   - [3]float64: the forward vector (yaw 0, pitch 0 gives (0, 0, -1))
func (p Pose) Forward() [3]float64 {
	pitch := common.DegToRad(p.Orientation[0])
	yaw := common.DegToRad(p.Orientation[1])
	cp := math.Cos(pitch)
	return [3]float64{
		-cp * math.Sin(yaw),
		math.Sin(pitch),
		-cp * math.Cos(yaw),
	}
}

// LookTarget projects the pose forward by its focus distance.
//
// Returns:
//   - [3]float64: the world-space point the camera is focused on
//   - bool: false when the pose has no focus distance
func (p Pose) LookTarget() ([3]float64, bool) {
	if !p.HasFocusDistance() {
		return [3]float64{}, false
	}
	f := p.Forward()
	return [3]float64{
		p.Position[0] + f[0]*p.FocusDistance,
		p.Position[1] + f[1]*p.FocusDistance,
		p.Position[2] + f[2]*p.FocusDistance,
	}, true
}

// AimAt recomputes pitch and yaw so the pose faces a world-space target,
// updates the focus distance to the target's range, and preserves roll.
// Aiming at the pose's own position is a no-op.
//
// Parameters:
//   - target: the world-space point to face
func (p *Pose) AimAt(target [3]float64) {
	dx := target[0] - p.Position[0]
	dy := target[1] - p.Position[1]
	dz := target[2] - p.Position[2]
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist < 1e-9 {
		return
	}
	p.Orientation[0] = common.RadToDeg(math.Asin(dy / dist))
	p.Orientation[1] = common.RadToDeg(math.Atan2(-dx, -dz))
	p.FocusDistance = dist
}

// PositionDistance returns the sum of per-axis absolute position
// differences between two poses.
//
// Parameters:
//   - other: the pose to compare against
//
// Returns:
//   - float64: Manhattan distance between the positions
func (p Pose) PositionDistance(other Pose) float64 {
	d := 0.0
	for i := 0; i < 3; i++ {
		d += math.Abs(p.Position[i] - other.Position[i])
	}
	return d
}

// OrientationDistance returns the sum of per-axis shortest-path angular
// differences in degrees between two poses.
//
// Parameters:
//   - other: the pose to compare against
//
// Returns:
//   - float64: total angular separation in degrees
func (p Pose) OrientationDistance(other Pose) float64 {
	d := 0.0
	for i := 0; i < 3; i++ {
		d += math.Abs(common.AngleDelta(p.Orientation[i], other.Orientation[i]))
	}
	return d
}

// Encode serializes the pose to JSON.
//
// Returns:
//   - []byte: the JSON encoding
//   - error: error if marshaling fails
func (p Pose) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// DecodePose deserializes a pose from JSON.
//
// Parameters:
//   - data: JSON bytes produced by Encode
//
// Returns:
//   - Pose: the decoded pose
//   - error: error if unmarshaling fails
func DecodePose(data []byte) (Pose, error) {
	var p Pose
	err := json.Unmarshal(data, &p)
	return p, err
}
