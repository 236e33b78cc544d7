package objects

import (
	"image/color"
	"strconv"

	"github.com/cbodonnell/crabsweeper/client/fonts"
	"github.com/cbodonnell/crabsweeper/pkg/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	coveredTileColor   = color.RGBA{R: 189, G: 214, B: 232, A: 255}
	uncoveredTileColor = color.RGBA{R: 236, G: 240, B: 243, A: 255}
	tileBorderColor    = color.RGBA{R: 48, G: 81, B: 130, A: 255}
	flagColor          = color.RGBA{R: 214, G: 48, B: 49, A: 255}
	questionColor      = color.RGBA{R: 48, G: 81, B: 130, A: 255}
	crabColor          = color.RGBA{R: 232, G: 93, B: 4, A: 255}
	crabEyeColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	adjacencyColors = [9]color.Color{
		nil,
		color.RGBA{R: 25, G: 118, B: 210, A: 255},
		color.RGBA{R: 56, G: 142, B: 60, A: 255},
		color.RGBA{R: 211, G: 47, B: 47, A: 255},
		color.RGBA{R: 123, G: 31, B: 162, A: 255},
		color.RGBA{R: 255, G: 143, B: 0, A: 255},
		color.RGBA{R: 0, G: 151, B: 167, A: 255},
		color.RGBA{R: 66, G: 66, B: 66, A: 255},
		color.RGBA{R: 158, G: 158, B: 158, A: 255},
	}
)

// BoardObject draws the current board of a session. The source is read every
// frame because resets and resizes replace the board.
type BoardObject struct {
	*BaseObject

	source func() *board.Board
}

func NewBoardObject(id string, source func() *board.Board) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, nil),
		source:     source,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	b := o.source()
	if b == nil {
		return
	}
	size := float32(b.TileSize())
	for i := 0; i < b.Size(); i++ {
		x, y := b.TilePosition(i)
		drawTile(screen, b, i, float32(x), float32(y), size)
	}
}

func drawTile(screen *ebiten.Image, b *board.Board, i int, x, y, size float32) {
	fill := coveredTileColor
	if b.IsUncovered(i) {
		fill = uncoveredTileColor
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	vector.StrokeRect(screen, x, y, size, size, 1, tileBorderColor, false)

	cx, cy := float64(x+size/2), float64(y+size/2)
	switch {
	case b.IsUncovered(i) && b.IsMine(i):
		drawCrab(screen, x+size/2, y+size/2, size)
	case b.IsUncovered(i):
		if n := b.Adjacency(i); n > 0 {
			drawCenteredText(screen, strconv.Itoa(n), fonts.ButtonFont, cx, cy, adjacencyColors[n])
		}
	case b.Marker(i) == board.MarkerFlagged:
		drawFlag(screen, x, y, size)
	case b.Marker(i) == board.MarkerQuestioned:
		drawCenteredText(screen, "?", fonts.ButtonFont, cx, cy, questionColor)
	}
}

func drawFlag(screen *ebiten.Image, x, y, size float32) {
	pole := x + size*0.35
	vector.StrokeLine(screen, pole, y+size*0.2, pole, y+size*0.8, 2, tileBorderColor, false)

	var path vector.Path
	path.MoveTo(pole, y+size*0.2)
	path.LineTo(x+size*0.75, y+size*0.35)
	path.LineTo(pole, y+size*0.5)
	path.Close()
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := flagColor.RGBA()
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(bl) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{})
}

func drawCrab(screen *ebiten.Image, cx, cy, size float32) {
	body := size * 0.28
	vector.DrawFilledCircle(screen, cx-body, cy-body*0.6, body*0.45, crabColor, true)
	vector.DrawFilledCircle(screen, cx+body, cy-body*0.6, body*0.45, crabColor, true)
	vector.DrawFilledCircle(screen, cx, cy+body*0.2, body, crabColor, true)
	vector.DrawFilledCircle(screen, cx-body*0.35, cy-body*0.1, body*0.15, crabEyeColor, true)
	vector.DrawFilledCircle(screen, cx+body*0.35, cy-body*0.1, body*0.15, crabEyeColor, true)
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds()).(*ebiten.Image)
}()
