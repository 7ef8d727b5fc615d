package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/volumeshift/assets"
	"github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/fonts"
	"github.com/automoto/volumeshift/scenes"
	"github.com/automoto/volumeshift/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(options scenes.Options) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(options),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Close tears down the current scene.
func (g *Game) Close() {
	g.scene.Close()
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	speed := flag.Int("speed", 0, "Player speed in pixels per second (0 = saved or default)")
	debug := flag.Bool("debug", false, "Start with the collision overlay enabled")
	trace := flag.Bool("trace", false, "Log every state transition")
	level := flag.String("level", config.C.LevelPath, "Level file inside the embedded assets")
	mute := flag.Bool("mute", false, "Start with sound disabled")
	list := flag.Bool("levels", false, "List the embedded levels and exit")
	tuningPath := flag.String("tuning", "", "Optional YAML file overriding gameplay values")
	flag.Parse()

	if *list {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()
	}

	config.Debug.Overlay = *debug
	config.Debug.Trace = *trace

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("volumeshift")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	options := scenes.Options{
		LevelPath: *level,
		Saved:     saved,
		Speed:     *speed,
		Debug:     *debug,
		Mute:      *mute,
	}

	game := NewGame(options)
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
