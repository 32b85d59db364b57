package character

import (
	"time"

	"github.com/jakecoffman/cp"
)

type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Locomotion is the closed set of movement states.
type Locomotion uint8

const (
	Idle Locomotion = iota
	Running
	Jumping
	Falling
	Landing
)

func (l Locomotion) String() string {
	switch l {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Landing:
		return "landing"
	}
	return "unknown"
}

func (l Locomotion) airborne() bool {
	return l == Jumping || l == Falling
}

// Deadline is an optional point in simulation time.
type Deadline struct {
	at  time.Duration
	set bool
}

func DeadlineAt(at time.Duration) Deadline {
	return Deadline{at: at, set: true}
}

// At returns the deadline and whether it is set.
func (d Deadline) At() (time.Duration, bool) {
	return d.at, d.set
}

func (d Deadline) IsSet() bool { return d.set }

// Active reports whether now is strictly before a set deadline.
func (d Deadline) Active(now time.Duration) bool {
	return d.set && now < d.at
}

// expire clears the deadline once now has reached it.
func (d Deadline) expire(now time.Duration) Deadline {
	if d.set && now >= d.at {
		return Deadline{}
	}
	return d
}

// CharacterState is owned by a Controller and replaced once per tick.
type CharacterState struct {
	Position cp.Vector
	Velocity cp.Vector
	Facing   Facing

	Grounded bool
	// GroundNormal is the zero vector unless Grounded.
	GroundNormal cp.Vector

	Locomotion Locomotion

	JumpBufferedUntil Deadline
	CoyoteUntil       Deadline
}

// NewCharacterState places a resting character at the spawn point.
func NewCharacterState(spawn cp.Vector) CharacterState {
	return CharacterState{
		Position:   spawn,
		Facing:     FacingRight,
		Locomotion: Idle,
	}
}
