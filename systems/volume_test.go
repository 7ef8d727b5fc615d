package systems

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/player"
	"github.com/automoto/volumeshift/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type volumeWorld struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	ctrl   *player.Controller
	states []cfg.StateID
}

// newVolumeWorld creates a world with a space, the given volumes and a ready
// player parked outside all of them.
func newVolumeWorld(t *testing.T, volumes ...zone) *volumeWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	for _, v := range volumes {
		factory.CreateVolume(e, v.x, v.y, v.w, v.h, v.key, v.key)
	}

	vw := &volumeWorld{ecs: e}
	vw.player = factory.CreatePlayer(e, 600, 340)
	vw.ctrl = player.NewController(nil, nil, nil)
	components.Player.Get(vw.player).Controller = vw.ctrl
	vw.ctrl.Subscribe(func(s player.State) {
		vw.states = append(vw.states, s.ID())
	})
	vw.ctrl.Ready()
	vw.states = nil
	return vw
}

type zone struct {
	x, y, w, h float64
	key        string
}

// moveTo places the player's top-left corner at (x, y) and runs the volume
// system once.
func (vw *volumeWorld) moveTo(x, y float64) {
	obj := components.Object.Get(vw.player).Object
	obj.X, obj.Y = x, y
	obj.Update()
	UpdateVolumes(vw.ecs)
}

func (vw *volumeWorld) state() cfg.StateID {
	return vw.ctrl.State().ID()
}

func TestVolumeEnterAndExit(t *testing.T) {
	vw := newVolumeWorld(t, zone{100, 100, 100, 100, "Volume2"})

	vw.moveTo(120, 120)
	if vw.state() != cfg.StateVolume2 {
		t.Errorf("Expected Square inside the volume, got %v", vw.state())
	}

	vw.moveTo(130, 130)
	if len(vw.states) != 1 {
		t.Errorf("Expected one transition while staying inside, got %v", vw.states)
	}

	vw.moveTo(300, 120)
	if vw.state() != cfg.StateDefault {
		t.Errorf("Expected Default after leaving, got %v", vw.state())
	}
	if len(vw.states) != 2 {
		t.Errorf("Expected two transitions, got %v", vw.states)
	}
}

func TestOverlappingVolumesSuppressExit(t *testing.T) {
	vw := newVolumeWorld(t,
		zone{100, 100, 100, 100, "Volume1"},
		zone{180, 100, 100, 100, "Volume3"},
	)

	vw.moveTo(120, 130) // Volume1 only
	if vw.state() != cfg.StateVolume1 {
		t.Fatalf("Expected Banana, got %v", vw.state())
	}

	vw.moveTo(170, 130) // both
	if vw.state() != cfg.StateVolume3 {
		t.Fatalf("Expected Short in the overlap, got %v", vw.state())
	}
	if !vw.ctrl.VolumeTransition() {
		t.Error("Expected the exit latch to be set")
	}

	vw.moveTo(230, 130) // Volume3 only
	if vw.state() != cfg.StateVolume3 {
		t.Errorf("Expected Short after leaving Volume1, got %v", vw.state())
	}
	if vw.ctrl.VolumeTransition() {
		t.Error("Expected the exit latch to be consumed")
	}

	vw.moveTo(400, 130)
	if vw.state() != cfg.StateDefault {
		t.Errorf("Expected Default after leaving everything, got %v", vw.state())
	}
}

func TestAdjacentVolumesSameFrame(t *testing.T) {
	vw := newVolumeWorld(t,
		zone{100, 100, 64, 64, "Volume1"},
		zone{164, 100, 64, 64, "Volume2"},
	)

	vw.moveTo(110, 110)
	vw.moveTo(180, 110)

	if vw.state() != cfg.StateVolume2 {
		t.Errorf("Expected Square, got %v", vw.state())
	}
	want := []cfg.StateID{cfg.StateVolume1, cfg.StateVolume2}
	if len(vw.states) != len(want) {
		t.Fatalf("Expected transitions %v, got %v", want, vw.states)
	}
	for i := range want {
		if vw.states[i] != want[i] {
			t.Errorf("Expected transition %d to be %v, got %v", i, want[i], vw.states[i])
		}
	}
}

func TestUnknownVolumeDoesNothing(t *testing.T) {
	vw := newVolumeWorld(t, zone{100, 100, 100, 100, "Volume9"})

	vw.moveTo(120, 120)

	if vw.state() != cfg.StateDefault {
		t.Errorf("Expected Default in an unknown volume, got %v", vw.state())
	}
	if len(vw.states) != 0 {
		t.Errorf("Expected no transitions, got %v", vw.states)
	}
	if len(components.Player.Get(vw.player).Inside) != 1 {
		t.Error("Expected the unknown volume to be tracked as inside")
	}
}

func TestDiffVolumes(t *testing.T) {
	w := donburi.NewWorld()
	a := w.Entry(w.Create(components.Volume))
	b := w.Entry(w.Create(components.Volume))
	c := w.Entry(w.Create(components.Volume))

	entered, exited := diffVolumes([]*donburi.Entry{a, b}, []*donburi.Entry{w.Entry(b.Entity()), c})

	if len(entered) != 1 || entered[0].Entity() != c.Entity() {
		t.Errorf("Expected only c entered, got %v", entered)
	}
	if len(exited) != 1 || exited[0].Entity() != a.Entity() {
		t.Errorf("Expected only a exited, got %v", exited)
	}

	next := nextInside([]*donburi.Entry{a, b}, entered, exited)
	if len(next) != 2 || next[0].Entity() != b.Entity() || next[1].Entity() != c.Entity() {
		t.Errorf("Expected [b c], got %v", next)
	}
}

func TestThreeOverlappingVolumesLogWarning(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	vw := newVolumeWorld(t,
		zone{100, 100, 100, 100, "Volume1"},
		zone{100, 100, 100, 100, "Volume2"},
	)

	vw.moveTo(120, 120)
	if strings.Contains(buf.String(), "Warning") {
		t.Errorf("Expected no warning for two volumes, got %q", buf.String())
	}

	vw = newVolumeWorld(t,
		zone{100, 100, 100, 100, "Volume1"},
		zone{100, 100, 100, 100, "Volume2"},
		zone{100, 100, 100, 100, "Volume3"},
	)

	vw.moveTo(120, 120)
	if !strings.Contains(buf.String(), "overlaps 3 volumes") {
		t.Errorf("Expected overlap warning, got %q", buf.String())
	}
}
