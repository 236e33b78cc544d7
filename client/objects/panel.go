package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/fonts"
	"github.com/cbodonnell/crabsweeper/pkg/game"
	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	TextColor = color.RGBA{R: 48, G: 81, B: 130, A: 255}

	buttonIdleImage    = image.NewNineSliceColor(color.NRGBA{R: 170, G: 200, B: 222, A: 255})
	buttonPressedImage = image.NewNineSliceColor(color.NRGBA{R: 100, G: 140, B: 180, A: 255})
	counterImage       = image.NewNineSliceColor(color.NRGBA{R: 236, G: 240, B: 243, A: 255})
)

// PanelObject draws the control panel and the remaining flags counter.
type PanelObject struct {
	*BaseObject

	panel          *game.Panel
	remainingFlags func() int
}

func NewPanelObject(id string, panel *game.Panel, remainingFlags func() int) *PanelObject {
	return &PanelObject{
		BaseObject:     NewBaseObject(id, nil),
		panel:          panel,
		remainingFlags: remainingFlags,
	}
}

func (o *PanelObject) Draw(screen *ebiten.Image) {
	for _, label := range o.panel.Labels {
		drawText(screen, label.Text, fonts.LabelFont, label.X, label.Y, TextColor)
	}

	for _, button := range o.panel.Buttons {
		img := buttonIdleImage
		if button.Pressed() {
			img = buttonPressedImage
		}
		drawNineSlice(screen, img, button.X, button.Y, button.Width, button.Height)
		drawCenteredText(screen, button.Label, fonts.ButtonFont, button.X+button.Width/2, button.Y+button.Height/2, TextColor)
	}

	w, h := o.panel.Buttons[0].Width, o.panel.Buttons[0].Height
	drawNineSlice(screen, counterImage, o.panel.CounterX, o.panel.CounterY, w, h)
	drawCenteredText(screen, fmt.Sprintf("%d", o.remainingFlags()), fonts.ButtonFont, o.panel.CounterX+w/2, o.panel.CounterY+h/2, TextColor)
}

func drawNineSlice(screen *ebiten.Image, img *image.NineSlice, x, y, w, h float64) {
	img.Draw(screen, int(w), int(h), func(opts *ebiten.DrawImageOptions) {
		opts.GeoM.Translate(x, y)
	})
}
