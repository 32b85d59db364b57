package character

import "time"

// ClipID names an animation clip known to the host's animation player.
type ClipID string

const (
	ClipIdle ClipID = "idle"
	ClipRun  ClipID = "run"
	ClipSkid ClipID = "skid"
	ClipJump ClipID = "jump"
	ClipFall ClipID = "fall"
	ClipLand ClipID = "land"
)

// AnimationSink receives fire-and-forget playback requests.
type AnimationSink interface {
	Play(clip ClipID, crossfade time.Duration)
}

type AnimationRequest struct {
	Clip      ClipID
	Crossfade time.Duration
}

// SelectAnimation maps the resolved state to a clip. Running against the
// facing direction plays the skid clip. An unknown state holds prev and
// reports false.
func SelectAnimation(loco Locomotion, vx float64, facing Facing, prev AnimationRequest, clips ClipTable) (AnimationRequest, bool) {
	var c Clip
	switch loco {
	case Idle:
		c = clips.Idle
	case Running:
		c = clips.Run
		if (vx > 0 && facing == FacingLeft) || (vx < 0 && facing == FacingRight) {
			c = clips.Skid
		}
	case Jumping:
		c = clips.Jump
	case Falling:
		c = clips.Fall
	case Landing:
		c = clips.Land
	default:
		return prev, false
	}
	return AnimationRequest{Clip: c.ID, Crossfade: c.Crossfade}, true
}
