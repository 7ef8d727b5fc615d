package scenes

import (
	"sync"

	"github.com/automoto/volumeshift/assets"
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/leveldata"
	"github.com/automoto/volumeshift/systems"
	"github.com/automoto/volumeshift/systems/factory"
	"github.com/automoto/volumeshift/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options are the startup overrides coming from the command line and the
// saved settings.
type Options struct {
	LevelPath string
	Saved     *systems.SavedSettings

	// Flag overrides; zero values leave the saved or default setting alone
	Speed int
	Debug bool
	Mute  bool
}

// WorldScene runs one level: the player, its walls and its volumes.
type WorldScene struct {
	ecs     *ecs.ECS
	panel   *ui.StatePanel
	options Options
	once    sync.Once
}

// NewWorldScene creates the scene. The level is loaded on the first Update.
func NewWorldScene(options Options) *WorldScene {
	if options.LevelPath == "" {
		options.LevelPath = cfg.C.LevelPath
	}
	return &WorldScene{options: options}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	ws.panel.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.panel.Draw(screen)
}

// Close releases the player controller's event bridge. It is safe to call
// before the scene has been configured.
func (ws *WorldScene) Close() {
	if ws.ecs == nil {
		return
	}
	systems.DetachController(ws.ecs)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	level := assets.MustLoadLevel(ws.options.LevelPath)

	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Input and settings first so toggles apply this frame
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateSettings)

	// Movement, then triggers against the new position, then state bookkeeping
	ws.ecs.AddSystem(systems.UpdatePlayer)
	ws.ecs.AddSystem(systems.UpdateVolumes)
	ws.ecs.AddSystem(systems.UpdateStates)

	ws.ecs.AddSystem(systems.UpdateEffects)
	ws.ecs.AddSystem(systems.UpdateCamera)
	ws.ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ws.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.panel = ui.NewStatePanel()

	settings := ws.applySettings()
	playerEntry := buildLevel(ws.ecs, level)
	subscribeEvents(ws.ecs.World, ws.panel)

	systems.AttachController(ws.ecs, playerEntry, settings.Speed)
}

// applySettings merges saved settings and flag overrides into the world's
// Settings component.
func (ws *WorldScene) applySettings() *components.SettingsData {
	systems.ApplySavedSettings(ws.ecs.World, ws.options.Saved)

	settings := systems.GetOrCreateSettings(ws.ecs.World)
	if ws.options.Speed > 0 {
		settings.Speed = ws.options.Speed
	}
	if ws.options.Debug {
		settings.Debug = true
	}
	if ws.options.Mute {
		settings.Muted = true
	}
	return settings
}

// buildLevel creates the level, its collision space, walls, volumes, the
// player at the first spawn and a camera snapped to it. It returns the
// player entry.
func buildLevel(e *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	factory.CreateLevel(e, level)
	factory.CreateSpace(e, level.MapWidth, level.MapHeight, cfg.C.CellSize, cfg.C.CellSize)
	factory.PopulateLevel(e, level)

	spawn := level.SpawnPoints[0]
	playerEntry := factory.CreatePlayer(e, spawn.X, spawn.Y)

	// Snap camera to the player's start position to prevent panning from (0,0)
	factory.CreateCamera(e, spawn.X, spawn.Y)

	return playerEntry
}

// subscribeEvents connects the state change consumers to the world's event
// bus.
func subscribeEvents(w donburi.World, panel *ui.StatePanel) {
	systems.SubscribeStateChanges(w)
	systems.StateChangedEvent.Subscribe(w, panel.OnStateChanged)
}
