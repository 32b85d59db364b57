// Package script drives a character from tengo input scripts. A script runs
// once per tick with tick and time_ms bound and leaves its decision in the
// left, right, jump, axis and done globals, which start each run neutral.
package script

import (
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/prefabs"
)

var ErrEmptyScript = errors.New("script: empty source")

var modules = []string{"math", "text", "enum"}

// InputScript is a compiled input script. It is not safe for concurrent use.
type InputScript struct {
	name     string
	compiled *tengo.Compiled
	done     bool
}

// Compile compiles src. name is only used in error messages.
func Compile(name string, src []byte) (*InputScript, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScript, name)
	}

	s := tengo.NewScript(src)
	for _, g := range []struct {
		name  string
		value any
	}{
		{"tick", 0},
		{"time_ms", 0},
		{"left", false},
		{"right", false},
		{"jump", false},
		{"axis", 0.0},
		{"done", false},
	} {
		if err := s.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("script: %s: bind %s: %w", name, g.name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(modules...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &InputScript{name: name, compiled: compiled}, nil
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*InputScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func (s *InputScript) Name() string { return s.name }

// Done reports whether the last run set done.
func (s *InputScript) Done() bool { return s.done }

// Snapshot runs the script for one tick and returns the input it produced.
func (s *InputScript) Snapshot(tick int, now time.Duration) (character.InputSnapshot, error) {
	reset := []struct {
		name  string
		value any
	}{
		{"tick", tick},
		{"time_ms", now.Milliseconds()},
		{"left", false},
		{"right", false},
		{"jump", false},
		{"axis", 0.0},
		{"done", false},
	}
	for _, g := range reset {
		if err := s.compiled.Set(g.name, g.value); err != nil {
			return character.InputSnapshot{}, fmt.Errorf("script: %s: set %s: %w", s.name, g.name, err)
		}
	}

	if err := s.compiled.Run(); err != nil {
		return character.InputSnapshot{}, fmt.Errorf("script: run %s at tick %d: %w", s.name, tick, err)
	}

	s.done = s.compiled.Get("done").Bool()
	return character.InputSnapshot{
		Left:  s.compiled.Get("left").Bool(),
		Right: s.compiled.Get("right").Bool(),
		Jump:  s.compiled.Get("jump").Bool(),
		Axis:  s.compiled.Get("axis").Float(),
	}, nil
}
