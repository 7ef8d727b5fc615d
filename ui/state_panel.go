package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/gofont/goregular"
)

// legendOrder lists the states shown in the panel legend
var legendOrder = []cfg.StateID{
	cfg.StateVolume1,
	cfg.StateVolume2,
	cfg.StateVolume3,
}

// StatePanel is a small overlay in the top-right corner showing the player's
// current state and which volume color maps to which state.
type StatePanel struct {
	UI *ebitenui.UI

	currentLabel *widget.Label
	current      cfg.StateID

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewStatePanel creates the panel showing the Default state.
func NewStatePanel() *StatePanel {
	p := &StatePanel{current: cfg.StateDefault}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *StatePanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	p.titleFace = &text.GoTextFace{Source: fontSource, Size: 12}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (p *StatePanel) buildUI() {
	// Root container fills the screen but draws nothing
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("STATE", &p.titleFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	p.currentLabel = widget.NewLabel(
		widget.LabelOpts.Text(p.current.String(), &p.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panel.AddChild(p.currentLabel)

	for _, id := range legendOrder {
		c := cfg.Volume.Colors[id]
		c.A = 255
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(legendText(id), &p.smallFace, &widget.LabelColor{
				Idle: c,
			}),
		))
	}

	rootContainer.AddChild(panel)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// legendText names the volume key and the state it switches to.
func legendText(id cfg.StateID) string {
	return id.Key() + ": " + id.String()
}

// OnStateChanged updates the current state label. It is subscribed to the
// world's StateChanged events.
func (p *StatePanel) OnStateChanged(w donburi.World, evt systems.StateChanged) {
	p.current = evt.Current
	if p.currentLabel != nil {
		p.currentLabel.Label = evt.Current.String()
	}
}

// Current returns the state the panel is showing.
func (p *StatePanel) Current() cfg.StateID {
	return p.current
}

// Update calls the UI's Update method
func (p *StatePanel) Update() {
	p.UI.Update()
}

// Draw renders the panel
func (p *StatePanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
