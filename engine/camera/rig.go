package camera

// Rig is a user-control input surface. A rig accumulates raw input (drags,
// scroll, movement keys), smooths it with per-channel damping, and writes
// the resulting pose into its Controller's state — but only on frames where
// its mode owns the camera. Input handlers report activity to the
// Controller, which is what pulls the camera out of idle or out of a
// running transition.
type Rig interface {
	// Mode returns the control mode this rig drives.
	//
	// Returns:
	//   - Mode: ModeOrbit or ModeFly
	Mode() Mode

	// HandleDrag feeds a pointer drag in pixels.
	//
	// Parameters:
	//   - dx: horizontal drag since the last event
	//   - dy: vertical drag since the last event
	HandleDrag(dx, dy float64)

	// HandleScroll feeds a scroll-wheel step.
	//
	// Parameters:
	//   - delta: scroll amount (positive = toward the scene)
	HandleScroll(delta float64)

	// HandlePan feeds a pan drag in pixels. Rigs without a pan concept
	// ignore it.
	//
	// Parameters:
	//   - dx: horizontal pan since the last event
	//   - dy: vertical pan since the last event
	HandlePan(dx, dy float64)

	// SetMoveInput feeds held-key movement axes in [-1, 1]. Rigs without
	// translation ignore it.
	//
	// Parameters:
	//   - forward: along the view direction
	//   - right: along the local right axis
	//   - up: along the world up axis
	SetMoveInput(forward, right, up float64)

	// SyncFromPose adopts the camera's pose as the rig's starting state, so
	// gaining control never snaps the camera.
	//
	// Parameters:
	//   - p: the pose to adopt
	SyncFromPose(p Pose)

	// Update smooths the input channels and, when the rig's mode owns the
	// camera, writes the resulting pose.
	//
	// Parameters:
	//   - dt: elapsed seconds this frame
	Update(dt float64)
}
