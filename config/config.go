package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// TextureID names one of the preloaded player textures.
type TextureID int

const (
	TextureCircle TextureID = iota
	TextureSquare
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per second
	Speed int

	// Dimensions
	Size float64

	// Banana mode stretches the sprite
	BananaScaleX float64
	BananaScaleY float64

	// Short mode squashes the sprite and slows the player down
	ShortScaleY     float64
	ShortSpeedScale float64

	// Texture paths inside the embedded image FS
	TexturePaths map[TextureID]string
}

// VolumeConfig contains trigger zone configuration values
type VolumeConfig struct {
	// Fill colors for each volume kind, drawn under the player
	Colors map[StateID]color.RGBA
	// Unrecognized volumes are still drawn so level authors can spot them
	UnknownColor color.RGBA
	// Overlaps at or above this count are logged; the transition latch only
	// covers two overlapping volumes.
	OverlapWarnCount int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// EffectsConfig contains the state-change pop effect configuration
type EffectsConfig struct {
	PopScale    float32 // starting scale multiplier of the pop
	PopDuration float32 // seconds
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	Margin    float64
	FontSize  float64
	TextColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	CellSize  int // resolv space cell size
	LevelPath string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw collision objects
	Trace   bool // Log state transitions
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Volume VolumeConfig
var Camera CameraConfig
var Effects EffectsConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Background   = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	WallColor    = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		CellSize:  16,
		LevelPath: "levels/level01.tmx",
	}

	Player = PlayerConfig{
		Speed: 500,

		Size: 32,

		BananaScaleX: 0.6,
		BananaScaleY: 1.4,

		ShortScaleY:     0.5,
		ShortSpeedScale: 0.5,

		TexturePaths: map[TextureID]string{
			TextureCircle: "images/circle.png",
			TextureSquare: "images/square.png",
		},
	}

	Volume = VolumeConfig{
		Colors: map[StateID]color.RGBA{
			StateDefault: {R: 200, G: 200, B: 200, A: 60},
			StateVolume1: {R: 255, G: 220, B: 0, A: 80},
			StateVolume2: {R: 0, G: 140, B: 255, A: 80},
			StateVolume3: {R: 255, G: 60, B: 120, A: 80},
		},
		UnknownColor:     color.RGBA{R: 255, G: 0, B: 255, A: 40},
		OverlapWarnCount: 3,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Effects = EffectsConfig{
		PopScale:    1.35,
		PopDuration: 0.25,
	}

	HUD = HUDConfig{
		Margin:    10,
		FontSize:  12,
		TextColor: White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
		Trace:   false,
	}
}
