package lapsim

/* Threshold crossing queries. None of them interpolate: each returns the sample at the
first index whose independent variable is greater than or equal to the target, and
ok=false if no sample reaches it. */

// firstCrossing returns the first index i such that s[i] >= target, or -1.
func firstCrossing(s []float64, target float64) int {
	for i, val := range s {
		if val >= target {
			return i
		}
	}
	return -1
}

// TimeAtPosition returns the time at which the position first reaches the target.
func TimeAtPosition(pos PositionTrajectory, target float64) (t float64, ok bool) {
	i := firstCrossing(pos.y, target)
	if i < 0 {
		return 0, false
	}
	return pos.x[i], true
}

// VelocityAtPosition returns the velocity sample at the index where the position first
// reaches the target. Both trajectories must share their time indices.
func VelocityAtPosition(pos PositionTrajectory, vel VelocityTrajectory, target float64) (s VelocitySample, ok bool) {
	if pos.Len() != vel.Len() {
		return s, false
	}
	i := firstCrossing(pos.y, target)
	if i < 0 {
		return s, false
	}
	return vel.At(i), true
}

// TimeAtAngle returns the time at which the angle first reaches the target.
func TimeAtAngle(angle AngleTrajectory, target float64) (t float64, ok bool) {
	i := firstCrossing(angle.y, target)
	if i < 0 {
		return 0, false
	}
	return angle.x[i], true
}

// VelocityAtAngle returns the tangential velocity at the index where the angle first
// reaches the target. Both trajectories must share their time indices.
func VelocityAtAngle(angle AngleTrajectory, vel AngularVelocityTrajectory, target float64) (v float64, ok bool) {
	if angle.Len() != vel.Len() {
		return 0, false
	}
	i := firstCrossing(angle.y, target)
	if i < 0 {
		return 0, false
	}
	return vel.y[i], true
}

// FirstBelow returns the first index at which the path is strictly below the provided height.
func FirstBelow(path PathTrajectory, height float64) (idx int, ok bool) {
	for i, y := range path.y {
		if y < height {
			return i, true
		}
	}
	return -1, false
}
