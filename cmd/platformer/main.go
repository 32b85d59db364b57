package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "log state transitions and clip changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "sandbox", "level name in levels/ (basename, .yaml optional)")
	tps := flag.Int("tps", 60, "fixed simulation ticks per second")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("-tps must be positive, got %d", *tps)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("platformer")

	game := NewGame(*levelName, *tps, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
