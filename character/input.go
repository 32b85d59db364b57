package character

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// InputSnapshot is the host's raw, per-tick input record.
type InputSnapshot struct {
	Left  bool
	Right bool
	Jump  bool
	// Axis is an analog stick value; it overrides Left/Right once it leaves
	// the dead zone.
	Axis float64
}

// MoveCommand is the normalized movement intent for one tick.
type MoveCommand struct {
	Axis         float64
	JumpPressed  bool
	JumpReleased bool
}

// Sample maps two consecutive snapshots to a command. Jump press and release
// are edges: a held button yields one press. A nil snapshot is neutral.
func Sample(prev, cur *InputSnapshot, deadZone float64) MoveCommand {
	if cur == nil {
		return MoveCommand{}
	}

	axis := 0.0
	if cur.Left {
		axis -= 1
	}
	if cur.Right {
		axis += 1
	}
	if a := cur.Axis; !math.IsNaN(a) && math.Abs(a) > deadZone {
		axis = a
	}
	axis = common.Clamp(axis, -1, 1)

	wasJump := prev != nil && prev.Jump
	return MoveCommand{
		Axis:         axis,
		JumpPressed:  cur.Jump && !wasJump,
		JumpReleased: !cur.Jump && wasJump,
	}
}
