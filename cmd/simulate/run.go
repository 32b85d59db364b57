package main

import (
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
	"github.com/milk9111/platformer/script"
)

type Options struct {
	Level  string
	Script string
	Ticks  int
	Tick   time.Duration
	Quiet  bool
}

type Summary struct {
	Ticks       int
	Jumps       int
	Respawns    int
	Transitions int
	Final       character.CharacterState
}

type logSink struct {
	quiet bool
	tick  *int
}

func (s logSink) Play(clip character.ClipID, crossfade time.Duration) {
	if s.quiet {
		return
	}
	log.Printf("tick %d: play %s (crossfade %v)", *s.tick, clip, crossfade)
}

// Run plays the script until it sets done or opts.Ticks elapse.
func Run(opts Options) (Summary, error) {
	if opts.Tick <= 0 {
		return Summary{}, fmt.Errorf("simulate: tick must be positive, got %v", opts.Tick)
	}

	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return Summary{}, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return Summary{}, err
	}
	in, err := script.Load(opts.Script)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	tick := 0
	spawn := cp.Vector{X: lvl.Spawn.X, Y: lvl.Spawn.Y}
	ctrl, err := character.New(spawn, tuning, scene.FromLevel(lvl), logSink{quiet: opts.Quiet, tick: &tick})
	if err != nil {
		return Summary{}, err
	}
	killY := lvl.KillPlane()

	if !opts.Quiet {
		log.Printf("simulate: level=%s script=%s tick=%v", lvl.Name, in.Name(), opts.Tick)
	}

	for ; tick < opts.Ticks; tick++ {
		now := time.Duration(tick) * opts.Tick
		snap, err := in.Snapshot(tick, now)
		if err != nil {
			return sum, err
		}

		res := ctrl.Tick(opts.Tick, now, &snap)
		st := ctrl.State()
		if res.Jump.Fire {
			sum.Jumps++
			if !opts.Quiet {
				log.Printf("tick %d: jump (%s)", tick, res.Jump.Source)
			}
		}
		if st.Locomotion != res.Previous {
			sum.Transitions++
			if !opts.Quiet {
				log.Printf("tick %d: %s -> %s at (%.3f, %.3f)", tick, res.Previous, st.Locomotion, st.Position.X, st.Position.Y)
			}
		}
		if st.Position.Y < killY {
			sum.Respawns++
			if !opts.Quiet {
				log.Printf("tick %d: fell below %.1f, respawning", tick, killY)
			}
			ctrl.Respawn(spawn)
		}

		if in.Done() {
			tick++
			break
		}
	}

	sum.Ticks = tick
	sum.Final = ctrl.State()
	return sum, nil
}
