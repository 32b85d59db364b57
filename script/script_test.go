package script

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
)

const tick = time.Second / 60

func TestSnapshot(t *testing.T) {
	src := []byte(`
left = tick >= 10 && tick < 20
right = tick < 10
jump = time_ms >= 500
axis = tick == 3 ? -0.5 : 0
`)
	s, err := Compile("inline", src)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	cases := []struct {
		tick int
		want character.InputSnapshot
	}{
		{0, character.InputSnapshot{Right: true}},
		{3, character.InputSnapshot{Right: true, Axis: -0.5}},
		{12, character.InputSnapshot{Left: true}},
		{40, character.InputSnapshot{Jump: true}},
	}
	for _, c := range cases {
		got, err := s.Snapshot(c.tick, time.Duration(c.tick)*tick)
		if err != nil {
			t.Fatalf("tick %d: %v", c.tick, err)
		}
		if got != c.want {
			t.Fatalf("tick %d: got %+v, want %+v", c.tick, got, c.want)
		}
	}
}

func TestSnapshotResetsGlobalsEachTick(t *testing.T) {
	s, err := Compile("latch", []byte(`
if tick == 0 {
	jump = true
	done = true
}
`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	first, err := s.Snapshot(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Jump || !s.Done() {
		t.Fatalf("expected jump and done on tick 0, got %+v done=%v", first, s.Done())
	}

	second, err := s.Snapshot(1, tick)
	if err != nil {
		t.Fatal(err)
	}
	if second != (character.InputSnapshot{}) || s.Done() {
		t.Fatalf("expected neutral input on tick 1, got %+v done=%v", second, s.Done())
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("empty", nil); !errors.Is(err, ErrEmptyScript) {
		t.Fatalf("expected ErrEmptyScript, got %v", err)
	}
	if _, err := Compile("broken", []byte("left = (")); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestSnapshotRuntimeError(t *testing.T) {
	s, err := Compile("div", []byte("axis = 1 / (tick - 5)"))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := s.Snapshot(5, 0); err == nil {
		t.Fatalf("expected a division by zero error")
	}
}

func TestLoadEmbedded(t *testing.T) {
	s, err := Load("run_and_jump")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	in, err := s.Snapshot(25, 25*tick)
	if err != nil {
		t.Fatal(err)
	}
	if !in.Right || !in.Jump {
		t.Fatalf("expected running and jumping at tick 25, got %+v", in)
	}

	if _, err := s.Snapshot(180, 180*tick); err != nil {
		t.Fatal(err)
	}
	if !s.Done() {
		t.Fatalf("expected the script to finish by tick 180")
	}

	if _, err := Load("missing"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestDrivesController(t *testing.T) {
	s, err := Load("stick.tengo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := character.New(cp.Vector{}, character.DefaultTuning(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		now := time.Duration(i) * tick
		in, err := s.Snapshot(i, now)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if in.Axis < -1 || in.Axis > 1 {
			t.Fatalf("tick %d: axis %v out of range", i, in.Axis)
		}
		c.Tick(tick, now, &in)
	}
	if c.State().Velocity.X <= 0 {
		t.Fatalf("a rising stick should push right, got vx %v", c.State().Velocity.X)
	}
}
