package character

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTuning = errors.New("character: invalid tuning")

// Clip pairs an animation clip with the crossfade used when switching to it.
type Clip struct {
	ID        ClipID
	Crossfade time.Duration
}

// ClipTable names the clip played for each visual state.
type ClipTable struct {
	Idle Clip
	Run  Clip
	Skid Clip
	Jump Clip
	Fall Clip
	Land Clip
}

// Tuning holds every tunable constant of the controller. Distances are world
// units, speeds units/second, accelerations units/second².
type Tuning struct {
	// Radius of the circular collision volume.
	Radius float64

	MaxSpeed    float64
	GroundAccel float64
	AirAccel    float64
	Friction    float64

	Gravity         float64
	MaxFallSpeed    float64
	JumpImpulse     float64
	JumpCutVelocity float64

	Coyote     time.Duration
	JumpBuffer time.Duration

	// MaxSlope is the steepest walkable surface, in degrees from horizontal.
	MaxSlope        float64
	ProbeDistance   float64
	GroundTolerance float64
	Skin            float64
	SnapDistance    float64

	MaxSlideIterations int

	// RunThreshold is the horizontal speed separating Idle from Running.
	RunThreshold  float64
	StickDeadZone float64

	Clips ClipTable
}

func DefaultTuning() Tuning {
	return Tuning{
		Radius:             0.5,
		MaxSpeed:           6,
		GroundAccel:        60,
		AirAccel:           30,
		Friction:           50,
		Gravity:            30,
		MaxFallSpeed:       20,
		JumpImpulse:        12,
		JumpCutVelocity:    4,
		Coyote:             100 * time.Millisecond,
		JumpBuffer:         150 * time.Millisecond,
		MaxSlope:           50,
		ProbeDistance:      0.25,
		GroundTolerance:    0.05,
		Skin:               0.01,
		SnapDistance:       0.2,
		MaxSlideIterations: 4,
		RunThreshold:       0.1,
		StickDeadZone:      0.2,
		Clips: ClipTable{
			Idle: Clip{ID: ClipIdle, Crossfade: 120 * time.Millisecond},
			Run:  Clip{ID: ClipRun, Crossfade: 100 * time.Millisecond},
			Skid: Clip{ID: ClipSkid, Crossfade: 60 * time.Millisecond},
			Jump: Clip{ID: ClipJump, Crossfade: 50 * time.Millisecond},
			Fall: Clip{ID: ClipFall, Crossfade: 100 * time.Millisecond},
			Land: Clip{ID: ClipLand, Crossfade: 0},
		},
	}
}

// Validate reports the first tuning value the controller cannot work with.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"radius", t.Radius},
		{"max_speed", t.MaxSpeed},
		{"ground_accel", t.GroundAccel},
		{"air_accel", t.AirAccel},
		{"friction", t.Friction},
		{"gravity", t.Gravity},
		{"max_fall_speed", t.MaxFallSpeed},
		{"jump_impulse", t.JumpImpulse},
		{"probe_distance", t.ProbeDistance},
		{"ground_tolerance", t.GroundTolerance},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}

	switch {
	case t.Coyote <= 0:
		return fmt.Errorf("%w: coyote must be positive, got %v", ErrInvalidTuning, t.Coyote)
	case t.JumpBuffer <= 0:
		return fmt.Errorf("%w: jump buffer must be positive, got %v", ErrInvalidTuning, t.JumpBuffer)
	case !(t.MaxSlope > 0 && t.MaxSlope < 90):
		return fmt.Errorf("%w: max_slope must be in (0, 90) degrees, got %v", ErrInvalidTuning, t.MaxSlope)
	case t.JumpCutVelocity < 0 || t.JumpCutVelocity >= t.JumpImpulse:
		return fmt.Errorf("%w: jump_cut_velocity must be in [0, jump_impulse), got %v", ErrInvalidTuning, t.JumpCutVelocity)
	case t.Skin < 0 || t.Skin >= t.GroundTolerance:
		return fmt.Errorf("%w: skin must be in [0, ground_tolerance), got %v", ErrInvalidTuning, t.Skin)
	case t.GroundTolerance > t.ProbeDistance:
		return fmt.Errorf("%w: ground_tolerance %v exceeds probe_distance %v", ErrInvalidTuning, t.GroundTolerance, t.ProbeDistance)
	case t.SnapDistance < 0:
		return fmt.Errorf("%w: snap_distance must not be negative, got %v", ErrInvalidTuning, t.SnapDistance)
	case t.MaxSlideIterations < 1:
		return fmt.Errorf("%w: max_slide_iterations must be at least 1, got %d", ErrInvalidTuning, t.MaxSlideIterations)
	case t.RunThreshold < 0:
		return fmt.Errorf("%w: run_threshold must not be negative, got %v", ErrInvalidTuning, t.RunThreshold)
	case t.StickDeadZone < 0 || t.StickDeadZone >= 1:
		return fmt.Errorf("%w: stick_dead_zone must be in [0, 1), got %v", ErrInvalidTuning, t.StickDeadZone)
	}
	return nil
}

// minWalkableNormalY is the smallest upward component a ground normal may
// have and still count as walkable.
func (t Tuning) minWalkableNormalY() float64 {
	return math.Cos(t.MaxSlope * math.Pi / 180)
}
