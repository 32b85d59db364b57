package character

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MotionFacts are the inputs of one state machine step.
type MotionFacts struct {
	Grounded bool
	// Velocity is the velocity carried in from the previous tick.
	Velocity cp.Vector
	Fire     bool
}

// NextLocomotion evaluates the transition table in order; the first matching
// rule wins. Values outside the enum are treated as Idle.
func NextLocomotion(prev Locomotion, f MotionFacts, t Tuning) Locomotion {
	if prev > Landing {
		prev = Idle
	}
	moving := math.Abs(f.Velocity.X) > t.RunThreshold

	switch {
	case f.Fire:
		return Jumping
	case prev == Jumping && !f.Grounded && f.Velocity.Y <= 0:
		return Falling
	case prev.airborne() && f.Grounded:
		return Landing
	case prev == Landing:
		if moving {
			return Running
		}
		return Idle
	case (prev == Idle || prev == Running) && !f.Grounded:
		return Falling
	case prev == Idle || prev == Running:
		if moving {
			return Running
		}
		return Idle
	}
	return prev
}

// NextFacing turns toward the commanded direction and keeps the current
// facing when there is none.
func NextFacing(prev Facing, axis float64) Facing {
	switch {
	case axis > 0:
		return FacingRight
	case axis < 0:
		return FacingLeft
	}
	return prev
}
