package objects

import (
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/flow"
	"github.com/cbodonnell/crabsweeper/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

var goColor = color.RGBA{R: 0, G: 173, B: 216, A: 255}

// SplashObject draws the two logos of the splash sequence as they come due.
type SplashObject struct {
	*BaseObject

	splash *flow.Splash
	width  float64
	height float64
}

func NewSplashObject(id string, splash *flow.Splash, width, height float64) *SplashObject {
	return &SplashObject{
		BaseObject: NewBaseObject(id, nil),
		splash:     splash,
		width:      width,
		height:     height,
	}
}

func (o *SplashObject) Draw(screen *ebiten.Image) {
	if o.splash.ShowLogoOne() {
		drawCenteredText(screen, "Made with Go", fonts.OverlayFont, o.width/2, o.height/3, goColor)
	}
	if o.splash.ShowLogoTwo() {
		drawCenteredText(screen, "Crab Sweeper", fonts.OverlayFont, o.width/2, o.height*2/3, TextColor)
	}
}
