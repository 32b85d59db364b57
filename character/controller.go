package character

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
)

// TickResult exposes the intermediate stage outputs of one tick.
type TickResult struct {
	Command          MoveCommand
	Ground           GroundContact
	Jump             JumpDecision
	Previous         Locomotion
	Animation        AnimationRequest
	AnimationChanged bool
}

// Controller owns one character's state and runs the per-tick pipeline:
// input, ground probe, jump, state machine, integrator, animation.
// It is not safe for concurrent use.
type Controller struct {
	tuning Tuning
	scene  SceneQuery
	sink   AnimationSink

	state     CharacterState
	prevInput *InputSnapshot
	anim      AnimationRequest
}

// New creates a controller for a character placed at spawn. scene and sink
// may be nil: without a scene the character never touches anything, without
// a sink clip changes are only reported through TickResult.
func New(spawn cp.Vector, t Tuning, scene SceneQuery, sink AnimationSink) (*Controller, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		tuning: t,
		scene:  scene,
		sink:   sink,
		state:  NewCharacterState(spawn),
	}, nil
}

func (c *Controller) State() CharacterState { return c.state }

func (c *Controller) Tuning() Tuning { return c.tuning }

// Animation returns the clip most recently requested.
func (c *Controller) Animation() AnimationRequest { return c.anim }

// SetTuning swaps the tuning between ticks.
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("character: set tuning: %w", err)
	}
	c.tuning = t
	return nil
}

// Respawn discards the current state and places the character at spawn.
func (c *Controller) Respawn(spawn cp.Vector) {
	c.state = NewCharacterState(spawn)
	c.prevInput = nil
}

// Tick advances the character by one fixed step. dt is the host's fixed tick
// and now the simulation time at this tick. in may be nil when no input
// device is present.
func (c *Controller) Tick(dt, now time.Duration, in *InputSnapshot) TickResult {
	t := c.tuning
	prev := c.state

	cmd := Sample(c.prevInput, in, t.StickDeadZone)
	ground := ProbeGround(c.scene, Volume{Center: prev.Position, Radius: t.Radius}, t)
	if prev.Locomotion == Jumping && prev.Velocity.Y > 0 {
		// still rising from the surface it jumped off
		ground.Grounded = false
	}
	jump := ResolveJump(cmd, prev, ground, now, t)
	loco := NextLocomotion(prev.Locomotion, MotionFacts{
		Grounded: ground.Grounded,
		Velocity: prev.Velocity,
		Fire:     jump.Fire,
	}, t)
	facing := NextFacing(prev.Facing, cmd.Axis)
	phys := Integrate(IntegratorInput{
		Position:     prev.Position,
		Velocity:     prev.Velocity,
		Axis:         cmd.Axis,
		Ground:       ground,
		Fire:         jump.Fire,
		JumpReleased: cmd.JumpReleased,
		Ascending:    prev.Locomotion == Jumping && loco == Jumping,
		Dt:           dt.Seconds(),
	}, c.scene, t)
	anim, known := SelectAnimation(loco, phys.Velocity.X, facing, c.anim, t.Clips)

	next := CharacterState{
		Position:          phys.Position,
		Velocity:          phys.Velocity,
		Facing:            facing,
		Grounded:          ground.Grounded,
		Locomotion:        loco,
		JumpBufferedUntil: jump.Buffer,
		CoyoteUntil:       jump.Coyote,
	}
	if ground.Grounded {
		next.GroundNormal = unit(ground.Normal)
	}
	c.state = next

	if in != nil {
		snapshot := *in
		c.prevInput = &snapshot
	} else {
		c.prevInput = nil
	}

	changed := known && anim.Clip != c.anim.Clip
	c.anim = anim
	if changed && c.sink != nil {
		c.sink.Play(anim.Clip, anim.Crossfade)
	}

	return TickResult{
		Command:          cmd,
		Ground:           ground,
		Jump:             jump,
		Previous:         prev.Locomotion,
		Animation:        anim,
		AnimationChanged: changed,
	}
}
