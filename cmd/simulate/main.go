// Command simulate runs the character controller headlessly against a level,
// driven by a tengo input script, and logs every state and clip change.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	levelName := flag.String("level", "sandbox", "level name in levels/ (basename, .yaml optional)")
	scriptName := flag.String("script", "run_and_jump", "input script in prefabs/scripts/")
	ticks := flag.Int("ticks", 600, "maximum number of ticks to run")
	tps := flag.Int("tps", 60, "ticks per second")
	quiet := flag.Bool("q", false, "only print the final state")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("simulate: -tps must be positive, got %d", *tps)
	}

	opts := Options{
		Level:  *levelName,
		Script: *scriptName,
		Ticks:  *ticks,
		Tick:   time.Second / time.Duration(*tps),
		Quiet:  *quiet,
	}
	sum, err := Run(opts)
	if err != nil {
		log.Fatal(err)
	}

	st := sum.Final
	fmt.Fprintf(os.Stdout, "ticks=%d jumps=%d respawns=%d transitions=%d\n", sum.Ticks, sum.Jumps, sum.Respawns, sum.Transitions)
	fmt.Fprintf(os.Stdout, "final: pos=(%.3f, %.3f) vel=(%.3f, %.3f) state=%s facing=%s grounded=%v\n",
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y, st.Locomotion, st.Facing, st.Grounded)
}
