package camera

// CameraStateOption is a functional option for configuring a CameraState.
type CameraStateOption func(*cameraStateImpl)

// WithInitialPose sets the pose the state starts settled on.
//
// Parameters:
//   - p: the initial pose (ignored when invalid)
//
// Returns:
//   - CameraStateOption: option function to apply
func WithInitialPose(p Pose) CameraStateOption {
	return func(s *cameraStateImpl) {
		if p.Valid() {
			s.current = p
		}
	}
}

// WithTimeConstant sets the damping time constant in seconds. Non-positive
// values make damped tracking snap instantly.
//
// Parameters:
//   - tau: time to close ~63% of the remaining distance to target
//
// Returns:
//   - CameraStateOption: option function to apply
func WithTimeConstant(tau float64) CameraStateOption {
	return func(s *cameraStateImpl) {
		s.timeConstant = tau
	}
}
