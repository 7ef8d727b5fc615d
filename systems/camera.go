package systems

import (
	"math"

	"github.com/automoto/volumeshift/components"
	"github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX, targetY := clampCamera(
		playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2,
		float64(levelData.CurrentLevel.MapWidth), float64(levelData.CurrentLevel.MapHeight),
		float64(config.C.Width), float64(config.C.Height),
	)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the view inside the level. A level smaller than the
// screen along an axis is centered on that axis.
func clampCamera(x, y, levelW, levelH, screenW, screenH float64) (float64, float64) {
	return clampAxis(x, levelW, screenW), clampAxis(y, levelH, screenH)
}

func clampAxis(v, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
