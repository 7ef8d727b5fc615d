package systems

import (
	"github.com/automoto/volumeshift/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraOffset returns the translation from world to screen space, or false
// when there is no camera yet.
func cameraOffset(w donburi.World, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawSprites renders every sprite centered on its collision box, with the
// state's texture, tint and scale and the pop multiplier on top.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs.World, screen)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		scaleX, scaleY := sprite.ScaleX, sprite.ScaleY
		if e.HasComponent(components.Pop) {
			pop := components.Pop.Get(e).Scale
			scaleX *= pop
			scaleY *= pop
		}

		centerX := o.X + o.W/2 + camX
		centerY := o.Y + o.H/2 + camY

		if sprite.Image == nil {
			// Texture failed to load; draw a tinted box of the same size instead
			w := sprite.Size * scaleX
			h := sprite.Size * scaleY
			vector.FillRect(screen, float32(centerX-w/2), float32(centerY-h/2), float32(w), float32(h), sprite.Tint, false)
			return
		}

		bounds := sprite.Image.Bounds()
		imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Translate to pivot (center of sprite), fit to Size, then apply the state scale
		drawOp.GeoM.Translate(-imgW/2, -imgH/2)
		drawOp.GeoM.Scale(sprite.Size/imgW*scaleX, sprite.Size/imgH*scaleY)
		drawOp.GeoM.Translate(centerX, centerY)

		drawOp.ColorScale.ScaleWithColor(sprite.Tint)

		screen.DrawImage(sprite.Image, drawOp)
	})
}
