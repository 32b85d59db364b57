package prefabs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/platformer/character"
	"gopkg.in/yaml.v3"
)

func TestLoadTuningMatchesDefaults(t *testing.T) {
	got, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got != character.DefaultTuning() {
		t.Fatalf("embedded character.yaml drifted from defaults:\n got %+v\nwant %+v", got, character.DefaultTuning())
	}
}

func TestCharacterSpecTuning(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, tun character.Tuning)
	}{
		{
			name: "empty_keeps_defaults",
			yaml: "name: empty\n",
			check: func(t *testing.T, tun character.Tuning) {
				if tun != character.DefaultTuning() {
					t.Fatalf("expected defaults, got %+v", tun)
				}
			},
		},
		{
			name: "durations_in_ms",
			yaml: "coyote_ms: 80\njump_buffer_ms: 200\n",
			check: func(t *testing.T, tun character.Tuning) {
				if tun.Coyote != 80*time.Millisecond || tun.JumpBuffer != 200*time.Millisecond {
					t.Fatalf("coyote %v buffer %v", tun.Coyote, tun.JumpBuffer)
				}
			},
		},
		{
			name: "explicit_zero_pointer_fields",
			yaml: "skin: 0\njump_cut_velocity: 0\nstick_dead_zone: 0\n",
			check: func(t *testing.T, tun character.Tuning) {
				if tun.Skin != 0 || tun.JumpCutVelocity != 0 || tun.StickDeadZone != 0 {
					t.Fatalf("zero overrides ignored: %+v", tun)
				}
			},
		},
		{
			name: "clip_override",
			yaml: "clips:\n  land:\n    id: touchdown\n    crossfade_ms: 30\n  run:\n    crossfade_ms: 0\n",
			check: func(t *testing.T, tun character.Tuning) {
				if tun.Clips.Land.ID != "touchdown" || tun.Clips.Land.Crossfade != 30*time.Millisecond {
					t.Fatalf("land clip %+v", tun.Clips.Land)
				}
				if tun.Clips.Run.ID != character.ClipRun || tun.Clips.Run.Crossfade != 0 {
					t.Fatalf("run clip %+v", tun.Clips.Run)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec CharacterSpec
			if err := yaml.Unmarshal([]byte(c.yaml), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			c.check(t, spec.Tuning())
		})
	}
}

func TestCharacterSpecInvalidTuning(t *testing.T) {
	var spec CharacterSpec
	if err := yaml.Unmarshal([]byte("max_slope_deg: 120\n"), &spec); err != nil {
		t.Fatal(err)
	}
	tun := spec.Tuning()
	if err := tun.Validate(); !errors.Is(err, character.ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSpec[CharacterSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"ledge":                       "scripts/ledge.tengo",
		"ledge.tengo":                 "scripts/ledge.tengo",
		"scripts/ledge.tengo":         "scripts/ledge.tengo",
		"prefabs/scripts/ledge.tengo": "scripts/ledge.tengo",
		"prefabs/scripts/ledge":       "scripts/ledge.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
