package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/platformer/character"
	"gopkg.in/yaml.v3"
)

const CharacterFile = "character.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ClipSpec overrides one entry of the clip table. CrossfadeMS is a pointer
// because an instant cut (0) is a meaningful value.
type ClipSpec struct {
	ID          string `yaml:"id"`
	CrossfadeMS *int   `yaml:"crossfade_ms"`
}

type ClipsSpec struct {
	Idle ClipSpec `yaml:"idle"`
	Run  ClipSpec `yaml:"run"`
	Skid ClipSpec `yaml:"skid"`
	Jump ClipSpec `yaml:"jump"`
	Fall ClipSpec `yaml:"fall"`
	Land ClipSpec `yaml:"land"`
}

// CharacterSpec is the on-disk form of character.Tuning. Omitted fields keep
// the default; fields where zero is a valid setting are pointers.
type CharacterSpec struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`

	MaxSpeed    float64 `yaml:"max_speed"`
	GroundAccel float64 `yaml:"ground_accel"`
	AirAccel    float64 `yaml:"air_accel"`
	Friction    float64 `yaml:"friction"`

	Gravity         float64  `yaml:"gravity"`
	MaxFallSpeed    float64  `yaml:"max_fall_speed"`
	JumpImpulse     float64  `yaml:"jump_impulse"`
	JumpCutVelocity *float64 `yaml:"jump_cut_velocity"`

	CoyoteMS     int `yaml:"coyote_ms"`
	JumpBufferMS int `yaml:"jump_buffer_ms"`

	MaxSlopeDeg     float64  `yaml:"max_slope_deg"`
	ProbeDistance   float64  `yaml:"probe_distance"`
	GroundTolerance float64  `yaml:"ground_tolerance"`
	Skin            *float64 `yaml:"skin"`
	SnapDistance    *float64 `yaml:"snap_distance"`

	MaxSlideIterations int `yaml:"max_slide_iterations"`

	RunThreshold  *float64 `yaml:"run_threshold"`
	StickDeadZone *float64 `yaml:"stick_dead_zone"`

	Clips ClipsSpec `yaml:"clips"`
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadTuning reads character.yaml and returns validated tuning.
func LoadTuning() (character.Tuning, error) {
	spec, err := LoadCharacterSpec()
	if err != nil {
		return character.Tuning{}, err
	}
	t := spec.Tuning()
	if err := t.Validate(); err != nil {
		return character.Tuning{}, fmt.Errorf("prefabs: %s: %w", CharacterFile, err)
	}
	return t, nil
}

// Tuning applies the spec on top of character.DefaultTuning. The result is
// not validated.
func (s *CharacterSpec) Tuning() character.Tuning {
	t := character.DefaultTuning()

	setFloat(&t.Radius, s.Radius)
	setFloat(&t.MaxSpeed, s.MaxSpeed)
	setFloat(&t.GroundAccel, s.GroundAccel)
	setFloat(&t.AirAccel, s.AirAccel)
	setFloat(&t.Friction, s.Friction)
	setFloat(&t.Gravity, s.Gravity)
	setFloat(&t.MaxFallSpeed, s.MaxFallSpeed)
	setFloat(&t.JumpImpulse, s.JumpImpulse)
	setFloat(&t.MaxSlope, s.MaxSlopeDeg)
	setFloat(&t.ProbeDistance, s.ProbeDistance)
	setFloat(&t.GroundTolerance, s.GroundTolerance)

	setPtr(&t.JumpCutVelocity, s.JumpCutVelocity)
	setPtr(&t.Skin, s.Skin)
	setPtr(&t.SnapDistance, s.SnapDistance)
	setPtr(&t.RunThreshold, s.RunThreshold)
	setPtr(&t.StickDeadZone, s.StickDeadZone)

	if s.CoyoteMS != 0 {
		t.Coyote = millis(s.CoyoteMS)
	}
	if s.JumpBufferMS != 0 {
		t.JumpBuffer = millis(s.JumpBufferMS)
	}
	if s.MaxSlideIterations != 0 {
		t.MaxSlideIterations = s.MaxSlideIterations
	}

	s.Clips.Idle.apply(&t.Clips.Idle)
	s.Clips.Run.apply(&t.Clips.Run)
	s.Clips.Skid.apply(&t.Clips.Skid)
	s.Clips.Jump.apply(&t.Clips.Jump)
	s.Clips.Fall.apply(&t.Clips.Fall)
	s.Clips.Land.apply(&t.Clips.Land)

	return t
}

func (c ClipSpec) apply(dst *character.Clip) {
	if c.ID != "" {
		dst.ID = character.ClipID(c.ID)
	}
	if c.CrossfadeMS != nil {
		dst.Crossfade = millis(*c.CrossfadeMS)
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setPtr(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
