package character

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestProbeGround(t *testing.T) {
	tun := DefaultTuning()
	r := tun.Radius

	cases := []struct {
		name         string
		scene        SceneQuery
		center       cp.Vector
		wantGrounded bool
		wantHit      bool
	}{
		{
			name:         "resting_within_tolerance",
			scene:        &planeScene{planes: []plane{floorAt(0)}},
			center:       cp.Vector{X: 0, Y: r + tun.Skin},
			wantGrounded: true,
			wantHit:      true,
		},
		{
			name:         "touching",
			scene:        &planeScene{planes: []plane{floorAt(0)}},
			center:       cp.Vector{X: 0, Y: r},
			wantGrounded: true,
			wantHit:      true,
		},
		{
			name:    "hovering_beyond_tolerance",
			scene:   &planeScene{planes: []plane{floorAt(0)}},
			center:  cp.Vector{X: 0, Y: r + 0.2},
			wantHit: true,
		},
		{
			name:   "out_of_probe_range",
			scene:  &planeScene{planes: []plane{floorAt(0)}},
			center: cp.Vector{X: 0, Y: r + 1},
		},
		{
			name:   "nothing_below",
			scene:  &planeScene{},
			center: cp.Vector{X: 0, Y: 3},
		},
		{
			name:   "nil_scene",
			center: cp.Vector{X: 0, Y: r},
		},
		{
			name:  "walkable_slope",
			scene: &planeScene{planes: []plane{slopeThrough(30, cp.Vector{})}},
			// two hundredths above the 30 degree surface along its normal
			center:       slopeThrough(30, cp.Vector{}).n.Mult(r + 0.02),
			wantGrounded: true,
			wantHit:      true,
		},
		{
			name:    "too_steep",
			scene:   &planeScene{planes: []plane{slopeThrough(70, cp.Vector{})}},
			center:  slopeThrough(70, cp.Vector{}).n.Mult(r + 0.001),
			wantHit: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ProbeGround(c.scene, Volume{Center: c.center, Radius: r}, tun)
			if got.Grounded != c.wantGrounded {
				t.Fatalf("grounded = %v, want %v (distance %v, normal %v)", got.Grounded, c.wantGrounded, got.Distance, got.Normal)
			}
			if got.Hit != c.wantHit {
				t.Fatalf("hit = %v, want %v", got.Hit, c.wantHit)
			}
			if !got.Hit && got.Normal != (cp.Vector{}) {
				t.Fatalf("normal must be unset without a hit, got %v", got.Normal)
			}
		})
	}
}

func TestWalkableRejectsDegenerateNormals(t *testing.T) {
	tun := DefaultTuning()
	for _, n := range []cp.Vector{{}, {X: 1, Y: 0}, {X: 0, Y: -1}} {
		if walkable(n, tun) {
			t.Fatalf("normal %v should not be walkable", n)
		}
	}
	if !walkable(cp.Vector{X: 0, Y: 2}, tun) {
		t.Fatalf("unnormalized upward normal should be walkable")
	}
}
