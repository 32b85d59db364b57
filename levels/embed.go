package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a solid axis-aligned rectangle with its lower-left corner at X, Y.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Segment is a thin solid line, used for slopes.
type Segment struct {
	A Point `yaml:"a"`
	B Point `yaml:"b"`
}

type Spec struct {
	Name   string    `yaml:"name"`
	Spawn  Point     `yaml:"spawn"`
	KillY  *float64  `yaml:"kill_y"`
	Boxes  []Box     `yaml:"boxes"`
	Slopes []Segment `yaml:"slopes"`
}

// Load reads a level from the levels/ directory on disk if present, falling
// back to the embedded copy.
func Load(name string) (*Spec, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(clean, data)
}

func Parse(name string, data []byte) (*Spec, error) {
	var lvl Spec
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e, ".yaml"))
	}
	return out
}

func (l *Spec) Validate() error {
	if len(l.Boxes) == 0 && len(l.Slopes) == 0 {
		return fmt.Errorf("%w: no geometry", ErrInvalidLevel)
	}
	if !finite(l.Spawn.X, l.Spawn.Y) {
		return fmt.Errorf("%w: spawn %+v", ErrInvalidLevel, l.Spawn)
	}
	for i, b := range l.Boxes {
		if !finite(b.X, b.Y, b.W, b.H) || b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: box %d %+v", ErrInvalidLevel, i, b)
		}
	}
	for i, s := range l.Slopes {
		if !finite(s.A.X, s.A.Y, s.B.X, s.B.Y) || s.A == s.B {
			return fmt.Errorf("%w: slope %d %+v", ErrInvalidLevel, i, s)
		}
	}
	if l.KillY != nil && (!finite(*l.KillY) || *l.KillY >= l.Spawn.Y) {
		return fmt.Errorf("%w: kill_y %v must be below spawn", ErrInvalidLevel, *l.KillY)
	}
	return nil
}

// KillPlane is the height below which the character is respawned. Without
// an explicit kill_y it sits 10 units under the lowest geometry.
func (l *Spec) KillPlane() float64 {
	if l.KillY != nil {
		return *l.KillY
	}
	lowest := l.Spawn.Y
	for _, b := range l.Boxes {
		lowest = math.Min(lowest, b.Y)
	}
	for _, s := range l.Slopes {
		lowest = math.Min(lowest, math.Min(s.A.Y, s.B.Y))
	}
	return lowest - 10
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
