package character

import "testing"

func TestSelectAnimation(t *testing.T) {
	clips := DefaultTuning().Clips
	prev := AnimationRequest{Clip: ClipFall, Crossfade: clips.Fall.Crossfade}

	cases := []struct {
		name   string
		loco   Locomotion
		vx     float64
		facing Facing
		want   ClipID
		known  bool
	}{
		{"idle", Idle, 0, FacingRight, ClipIdle, true},
		{"run_right", Running, 3, FacingRight, ClipRun, true},
		{"run_left", Running, -3, FacingLeft, ClipRun, true},
		{"skid_turning_left", Running, 3, FacingLeft, ClipSkid, true},
		{"skid_turning_right", Running, -3, FacingRight, ClipSkid, true},
		{"jump", Jumping, 0, FacingLeft, ClipJump, true},
		{"fall", Falling, 2, FacingRight, ClipFall, true},
		{"land", Landing, 0, FacingRight, ClipLand, true},
		{"unknown_holds_previous", Locomotion(200), 0, FacingRight, ClipFall, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, known := SelectAnimation(c.loco, c.vx, c.facing, prev, clips)
			if got.Clip != c.want || known != c.known {
				t.Fatalf("SelectAnimation() = %v (known %v), want %v (known %v)", got.Clip, known, c.want, c.known)
			}
		})
	}
}

func TestSelectAnimationCrossfade(t *testing.T) {
	clips := DefaultTuning().Clips
	got, _ := SelectAnimation(Idle, 0, FacingRight, AnimationRequest{}, clips)
	if got.Crossfade != clips.Idle.Crossfade {
		t.Fatalf("crossfade = %v, want %v", got.Crossfade, clips.Idle.Crossfade)
	}
}
