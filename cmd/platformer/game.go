package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	pixelsPerUnit   = 48
	cameraSmoothing = 0.12
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
)

// clipLog is the animation sink of the demo. There are no sprites, so clip
// changes are logged in debug mode and otherwise only shown on the HUD.
type clipLog struct {
	debug *bool
}

func (c clipLog) Play(clip character.ClipID, crossfade time.Duration) {
	if *c.debug {
		log.Printf("anim: play %s (crossfade %v)", clip, crossfade)
	}
}

type Game struct {
	mode  mode
	menu  *ebitenui.UI
	quit  bool
	debug bool

	levelName string
	level     *levels.Spec
	scene     *scene.Scene
	ctrl      *character.Controller
	cam       camera

	tick int
	dt   time.Duration
	now  time.Duration

	watcher *prefabs.Watcher
}

func NewGame(levelName string, tps int, debug bool) *Game {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		dt:        time.Second / time.Duration(tps),
		cam:       camera{zoom: pixelsPerUnit},
	}
	g.menu = newMenuUI(g)

	w, err := prefabs.NewWatcher("prefabs", "levels")
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

// start loads the level and tuning and begins a new run.
func (g *Game) start() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}

	sc := scene.FromLevel(lvl)
	spawn := cp.Vector{X: lvl.Spawn.X, Y: lvl.Spawn.Y}
	ctrl, err := character.New(spawn, tuning, sc, clipLog{debug: &g.debug})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	g.level, g.scene, g.ctrl = lvl, sc, ctrl
	g.cam.center = spawn
	g.tick, g.now = 0, 0
	g.mode = modePlaying
	log.Printf("new game: level %s, %d shapes", lvl.Name, sc.Len())
	return nil
}

func (g *Game) Update() error {
	g.pollReload()

	switch g.mode {
	case modeMenu:
		g.menu.Update()
		if g.quit {
			return ebiten.Termination
		}
		if menuPressed() && g.ctrl != nil {
			g.mode = modePlaying
		}
	case modePlaying:
		if menuPressed() {
			g.mode = modeMenu
			return nil
		}
		if debugTogglePressed() {
			g.debug = !g.debug
		}
		g.step(sampleInput())
	}
	return nil
}

func (g *Game) step(in *character.InputSnapshot) {
	g.now = time.Duration(g.tick) * g.dt
	res := g.ctrl.Tick(g.dt, g.now, in)
	g.tick++

	st := g.ctrl.State()
	if g.debug && st.Locomotion != res.Previous {
		log.Printf("tick %d: %s -> %s", g.tick, res.Previous, st.Locomotion)
	}
	if st.Position.Y < g.level.KillPlane() {
		log.Printf("fell below %.1f, respawning", g.level.KillPlane())
		g.ctrl.Respawn(cp.Vector{X: g.level.Spawn.X, Y: g.level.Spawn.Y})
		st = g.ctrl.State()
	}

	g.cam.center.X = common.Lerp(g.cam.center.X, st.Position.X, cameraSmoothing)
	g.cam.center.Y = common.Lerp(g.cam.center.Y, st.Position.Y, cameraSmoothing)
}

// pollReload applies edits to character.yaml and the current level without
// blocking the tick.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(ch)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if g.ctrl == nil {
		return
	}
	base := filepath.Base(path)
	switch {
	case base == prefabs.CharacterFile:
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		if err := g.ctrl.SetTuning(tuning); err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		log.Printf("hot reload: tuning from %s", path)
	case g.level != nil && base == g.level.Name+".yaml":
		if err := g.start(); err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		log.Printf("hot reload: level %s", g.level.Name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	if g.ctrl != nil {
		drawLevel(g.scene.Space(), g.cam, screen)
		drawKillPlane(screen, g.cam, g.level.KillPlane())
		drawCharacter(screen, g.cam, g.ctrl.State(), g.ctrl.Tuning().Radius)
		drawHUD(screen, g)
	}

	if g.mode == modeMenu {
		g.menu.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
