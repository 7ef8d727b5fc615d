package components

import (
	"image/color"

	cfg "github.com/automoto/volumeshift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Textures map[cfg.TextureID]*ebiten.Image
	Image    *ebiten.Image
	Tint     color.RGBA
	ScaleX   float64
	ScaleY   float64
	// Size is the on-screen size in pixels at scale 1.
	Size float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
