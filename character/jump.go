package character

import "time"

// JumpSource records which rule allowed a jump.
type JumpSource uint8

const (
	JumpNone JumpSource = iota
	JumpGrounded
	JumpCoyote
	JumpBuffered
)

func (s JumpSource) String() string {
	switch s {
	case JumpGrounded:
		return "grounded"
	case JumpCoyote:
		return "coyote"
	case JumpBuffered:
		return "buffered"
	}
	return "none"
}

// JumpDecision is the Jump Controller's output: whether a jump fires this
// tick and the grace windows carried into the next state.
type JumpDecision struct {
	Fire   bool
	Source JumpSource
	Coyote Deadline
	Buffer Deadline
}

// ResolveJump decides whether a jump fires this tick. A grounded press wins,
// then a press inside the coyote window, then a buffered press on a grounded
// tick. Firing clears both windows.
func ResolveJump(cmd MoveCommand, prev CharacterState, ground GroundContact, now time.Duration, t Tuning) JumpDecision {
	coyote := prev.CoyoteUntil.expire(now)
	buffer := prev.JumpBufferedUntil.expire(now)

	switch {
	case ground.Grounded:
		coyote = Deadline{}
	case prev.Grounded && prev.Locomotion != Jumping:
		// walked off a ledge
		coyote = DeadlineAt(now + t.Coyote)
	}

	source := JumpNone
	switch {
	case cmd.JumpPressed && ground.Grounded:
		source = JumpGrounded
	case cmd.JumpPressed && coyote.Active(now):
		source = JumpCoyote
	case ground.Grounded && buffer.Active(now):
		source = JumpBuffered
	case cmd.JumpPressed:
		buffer = DeadlineAt(now + t.JumpBuffer)
	}

	if source != JumpNone {
		return JumpDecision{Fire: true, Source: source}
	}
	return JumpDecision{Coyote: coyote, Buffer: buffer}
}
