package systems

import (
	"fmt"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	hudFace      *text.GoXFace
	hudSmallFace *text.GoXFace
	hudTextOp    = &text.DrawOptions{}
)

// DrawHUD renders the current state and the key hints in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.HUDSmall) {
		return
	}
	if hudFace == nil {
		hudFace = text.NewGoXFace(fonts.HUD.Get())
		hudSmallFace = text.NewGoXFace(fonts.HUDSmall.Get())
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	state := components.State.Get(playerEntry)
	settings := GetOrCreateSettings(ecs.World)

	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.FontSize * 1.4

	vector.FillRect(screen, float32(margin/2), float32(margin/2),
		180, float32(lineHeight*3+margin), cfg.BlackOverlay, false)

	drawHUDLine(screen, hudFace, stateLine(state), margin, margin)
	drawHUDLine(screen, hudSmallFace, fmt.Sprintf("transitions: %d", state.Transitions), margin, margin+lineHeight)
	drawHUDLine(screen, hudSmallFace, hintLine(settings), margin, margin+lineHeight*2)
}

func drawHUDLine(screen *ebiten.Image, face text.Face, s string, x, y float64) {
	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.Draw(screen, s, face, hudTextOp)
}

// stateLine formats the current state and how long the player has been in it.
func stateLine(state *components.StateData) string {
	seconds := float64(state.StateTimer) / float64(ebiten.DefaultTPS)
	return fmt.Sprintf("%s  %.1fs", state.CurrentState, seconds)
}

func hintLine(settings *components.SettingsData) string {
	sound := "on"
	if settings.Muted {
		sound = "off"
	}
	return fmt.Sprintf("F1 debug  M sound: %s", sound)
}
