package camera

// OrbitRigOption is a functional option for configuring an orbit Rig.
type OrbitRigOption func(*orbitRigImpl)

// FlyRigOption is a functional option for configuring a fly Rig.
type FlyRigOption func(*flyRigImpl)

// WithOrbitFocus sets the initial focus point the orbit circles.
//
// Parameters:
//   - x, y, z: world-space focus coordinates
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitFocus(x, y, z float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.focus = [3]float64{x, y, z}
	}
}

// WithOrbitRadius sets the initial orbit radius in world units.
//
// Parameters:
//   - radius: distance from the focus point
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitRadius(radius float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if radius > 0 {
			r.radius = radius
		}
	}
}

// WithOrbitAngles sets the initial azimuth and elevation in degrees.
//
// Parameters:
//   - azimuth: horizontal angle around the focus
//   - elevation: vertical angle from the horizontal plane
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitAngles(azimuth, elevation float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.azimuth = azimuth
		r.elevation = elevation
	}
}

// WithOrbitRadiusRange clamps the orbit radius to [min, max] world units.
//
// Parameters:
//   - min: closest allowed distance
//   - max: farthest allowed distance
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitRadiusRange(min, max float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if min > 0 && max > min {
			r.minRadius = min
			r.maxRadius = max
		}
	}
}

// WithOrbitElevationRange clamps the orbit elevation to [min, max] degrees.
//
// Parameters:
//   - min: lowest allowed elevation
//   - max: highest allowed elevation
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitElevationRange(min, max float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if max > min {
			r.minElevation = min
			r.maxElevation = max
		}
	}
}

// WithOrbitYawRange clamps the orbit azimuth to [lo, hi] degrees. Without
// it the azimuth is unbounded.
//
// Parameters:
//   - lo: lower bound in degrees
//   - hi: upper bound in degrees
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitYawRange(lo, hi float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if hi > lo {
			b := [2]float64{lo, hi}
			r.yawBounds = &b
		}
	}
}

// WithOrbitSpeeds sets the input scaling for rotation, zoom, and pan.
//
// Parameters:
//   - rotate: degrees per pixel of drag
//   - zoom: scroll step multiplier
//   - pan: pan distance per pixel, scaled by the orbit radius
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitSpeeds(rotate, zoom, pan float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if rotate > 0 {
			r.rotateSpeed = rotate
		}
		if zoom > 0 {
			r.zoomSpeed = zoom
		}
		if pan > 0 {
			r.panSpeed = pan
		}
	}
}

// WithOrbitDamping sets the per-channel damping time constants in seconds.
//
// Parameters:
//   - rotate: rotation channel time constant
//   - zoom: zoom channel time constant
//   - move: pan channel time constant
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitDamping(rotate, zoom, move float64) OrbitRigOption {
	return func(r *orbitRigImpl) {
		if rotate > 0 {
			r.rotateTau = rotate
		}
		if zoom > 0 {
			r.zoomTau = zoom
		}
		if move > 0 {
			r.moveTau = move
		}
	}
}

// WithOrbitPanEnabled enables or disables panning.
//
// Parameters:
//   - enabled: true to allow panning
//
// Returns:
//   - OrbitRigOption: option function to apply
func WithOrbitPanEnabled(enabled bool) OrbitRigOption {
	return func(r *orbitRigImpl) {
		r.panEnabled = enabled
	}
}

// WithFlyPosition sets the initial flight position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - FlyRigOption: option function to apply
func WithFlyPosition(x, y, z float64) FlyRigOption {
	return func(r *flyRigImpl) {
		r.position = [3]float64{x, y, z}
	}
}

// WithFlyAngles sets the initial yaw and pitch in degrees.
//
// Parameters:
//   - yaw: horizontal look angle
//   - pitch: vertical look angle
//
// Returns:
//   - FlyRigOption: option function to apply
func WithFlyAngles(yaw, pitch float64) FlyRigOption {
	return func(r *flyRigImpl) {
		r.yaw = yaw
		r.pitch = pitch
	}
}

// WithFlySpeeds sets the movement and look input scaling.
//
// Parameters:
//   - move: world units per second at full input
//   - rotate: degrees per pixel of drag
//
// Returns:
//   - FlyRigOption: option function to apply
func WithFlySpeeds(move, rotate float64) FlyRigOption {
	return func(r *flyRigImpl) {
		if move > 0 {
			r.moveSpeed = move
		}
		if rotate > 0 {
			r.rotateSpeed = rotate
		}
	}
}

// WithFlyDamping sets the look and velocity damping time constants in
// seconds.
//
// Parameters:
//   - rotate: look channel time constant
//   - move: velocity channel time constant
//
// Returns:
//   - FlyRigOption: option function to apply
func WithFlyDamping(rotate, move float64) FlyRigOption {
	return func(r *flyRigImpl) {
		if rotate > 0 {
			r.rotateTau = rotate
		}
		if move > 0 {
			r.moveTau = move
		}
	}
}
