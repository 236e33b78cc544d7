package scenes

import (
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/objects"
)

type ExitScene struct {
	*BaseScene
}

var _ Scene = &ExitScene{}

func NewExitScene() *ExitScene {
	return &ExitScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("exit-root", nil), color.Black),
	}
}
