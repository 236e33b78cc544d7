package objects

import (
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a line of text centred on a point while its
// source reports it visible.
type TextOverlayObject struct {
	*BaseObject

	source func() (string, bool)
	x      float64
	y      float64
	face   font.Face
	color  color.Color
}

type NewTextOverlayOptions struct {
	// Source returns the text and whether to draw it this frame.
	Source func() (string, bool)
	// X and Y are the centre of the text.
	X float64
	Y float64
	// Face defaults to fonts.OverlayFont.
	Face font.Face
	// Color defaults to white.
	Color  color.Color
	ZIndex int
}

func NewTextOverlayObject(id string, opts NewTextOverlayOptions) *TextOverlayObject {
	face := opts.Face
	if face == nil {
		face = fonts.OverlayFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		source:     opts.Source,
		x:          opts.X,
		y:          opts.Y,
		face:       face,
		color:      clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t, ok := o.source()
	if !ok {
		return
	}
	drawCenteredText(screen, t, o.face, o.x, o.y, o.color)
}

// drawCenteredText draws t with its bounding box centred on (x, y).
func drawCenteredText(screen *ebiten.Image, t string, face font.Face, x, y float64, clr color.Color) {
	bounds, _ := font.BoundString(face, t)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	h := float64((bounds.Max.Y - bounds.Min.Y).Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-w/2-float64(bounds.Min.X.Floor()), y-h/2-float64(bounds.Min.Y.Floor()))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, face, op)
}

// drawText draws t with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, t string, face font.Face, x, y float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y+float64(face.Metrics().Ascent.Ceil()))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, face, op)
}
