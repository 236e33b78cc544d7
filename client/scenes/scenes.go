package scenes

import (
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	GetRoot() objects.GameObject
}

type BaseScene struct {
	Root       objects.GameObject
	Background color.Color
}

func NewBaseScene(root objects.GameObject, background color.Color) *BaseScene {
	return &BaseScene{
		Root:       root,
		Background: background,
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	if s.Background != nil {
		screen.Fill(s.Background)
	}
	objects.DrawTree(s.Root, screen)
}
