package character

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

const (
	// minApproachCos bounds the skin back-off for grazing contacts.
	minApproachCos = 0.05
	snapEpsilon    = 1e-6
	stillEpsilon   = 1e-12
)

// IntegratorInput is everything the Physics Integrator reads for one tick.
type IntegratorInput struct {
	Position cp.Vector
	Velocity cp.Vector
	Axis     float64
	Ground   GroundContact
	Fire     bool
	// JumpReleased cuts the ascent only while Ascending is true.
	JumpReleased bool
	Ascending    bool
	// Dt is the fixed tick in seconds.
	Dt float64
}

type IntegratorOutput struct {
	Position cp.Vector
	Velocity cp.Vector
	// Blocked is true when any sweep met a surface.
	Blocked bool
}

// Integrate advances velocity and position by one fixed tick and resolves
// collisions so the volume never ends inside scene geometry.
func Integrate(in IntegratorInput, scene SceneQuery, t Tuning) IntegratorOutput {
	dt := in.Dt
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	grounded := in.Ground.Grounded

	vx := in.Velocity.X
	switch {
	case grounded && in.Axis == 0:
		vx = common.MoveToward(vx, 0, t.Friction*dt)
	case grounded:
		vx = common.MoveToward(vx, in.Axis*t.MaxSpeed, t.GroundAccel*dt)
	default:
		vx = common.MoveToward(vx, in.Axis*t.MaxSpeed, t.AirAccel*dt)
	}

	vy := in.Velocity.Y
	switch {
	case in.Fire:
		vy = t.JumpImpulse
	case grounded:
		// walkable ground carries the character's weight
		vy = 0
	default:
		vy = math.Max(vy-t.Gravity*dt, -t.MaxFallSpeed)
	}
	if !in.Fire && in.JumpReleased && in.Ascending && vy > t.JumpCutVelocity {
		vy = t.JumpCutVelocity
	}

	out := IntegratorOutput{Position: in.Position, Velocity: cp.Vector{X: vx, Y: vy}}
	if scene == nil {
		out.Position = out.Position.Add(out.Velocity.Mult(dt))
		return out
	}

	penetrating := false
	remaining := out.Velocity.Mult(dt)
	for i := 0; i < t.MaxSlideIterations; i++ {
		length := remaining.Length()
		if length < stillEpsilon {
			break
		}
		c, hit := scene.Sweep(Volume{Center: out.Position, Radius: t.Radius}, remaining)
		if !hit {
			out.Position = out.Position.Add(remaining)
			remaining = cp.Vector{}
			break
		}
		out.Blocked = true
		n := unit(c.Normal)
		if c.Distance <= 0 {
			// push out of the overlap instead of travelling this tick
			out.Position = out.Position.Add(n.Mult(math.Max(c.Depth, 0) + t.Skin))
			out.Velocity = out.Velocity.Sub(n.Mult(out.Velocity.Dot(n)))
			penetrating = true
			break
		}

		dir := remaining.Mult(1 / length)
		approach := math.Max(-dir.Dot(n), minApproachCos)
		travel := common.Clamp(c.Distance-t.Skin/approach, 0, math.Min(c.Distance, length))
		out.Position = out.Position.Add(dir.Mult(travel))
		out.Velocity = removeInto(out.Velocity, n)
		remaining = removeInto(dir.Mult(length-travel), n)
	}

	if grounded && !in.Fire && !penetrating && t.SnapDistance > 0 {
		out.Position = snapToGround(out.Position, scene, t)
	}
	return out
}

// snapToGround keeps a walking character attached when the floor drops away
// by less than the snap distance.
func snapToGround(pos cp.Vector, scene SceneQuery, t Tuning) cp.Vector {
	c, ok := scene.Probe(Volume{Center: pos, Radius: t.Radius}, cp.Vector{X: 0, Y: -t.SnapDistance})
	if !ok || !walkable(c.Normal, t) {
		return pos
	}
	if gap := c.Distance - t.Skin; gap > snapEpsilon {
		pos.Y -= gap
	}
	return pos
}

// removeInto drops the component of v that points into a surface with
// normal n.
func removeInto(v, n cp.Vector) cp.Vector {
	if d := v.Dot(n); d < 0 {
		return v.Sub(n.Mult(d))
	}
	return v
}

func unit(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return up
	}
	return v.Mult(1 / l)
}
