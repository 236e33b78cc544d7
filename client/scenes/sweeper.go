package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/crabsweeper/client/input"
	"github.com/cbodonnell/crabsweeper/client/objects"
	"github.com/cbodonnell/crabsweeper/pkg/board"
	"github.com/cbodonnell/crabsweeper/pkg/config"
	"github.com/cbodonnell/crabsweeper/pkg/game"
)

var sweeperBackground = color.RGBA{R: 65, G: 146, B: 195, A: 255}

// SweeperScene is the playing screen. It samples the mouse, steps the
// controller and draws the resulting board.
type SweeperScene struct {
	*BaseScene

	controller *game.Controller
	sampler    *input.PointerSampler
}

var _ Scene = &SweeperScene{}

type SweeperSceneOptions struct {
	Config *config.Config
	// Seed drives mine placement for the session.
	Seed uint64
}

func NewSweeperScene(opts SweeperSceneOptions) (*SweeperScene, error) {
	cfg := opts.Config
	controller, err := game.NewController(game.NewControllerOptions{
		Seed:        opts.Seed,
		Width:       cfg.BoardWidth,
		Height:      cfg.BoardHeight,
		Denominator: cfg.Denominator,
		TileSize:    cfg.TileSize,
		CenterX:     cfg.BoardCenterX,
		CenterY:     cfg.BoardCenterY,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	root := objects.NewBaseObject("sweeper-root", nil)
	children := []objects.GameObject{
		objects.NewPanelObject("sweeper-panel", controller.Panel(), controller.RemainingFlags),
		objects.NewBoardObject("sweeper-board", controller.Board),
		objects.NewTextOverlayObject("sweeper-outcome", objects.NewTextOverlayOptions{
			Source: func() (string, bool) {
				return outcomeText(controller.Board())
			},
			X:      cfg.BoardCenterX,
			Y:      cfg.BoardCenterY,
			Color:  objects.TextColor,
			ZIndex: 1,
		}),
	}
	for _, child := range children {
		if err := root.AddChild(child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", child.GetID(), err)
		}
	}

	return &SweeperScene{
		BaseScene:  NewBaseScene(root, sweeperBackground),
		controller: controller,
		sampler:    input.NewPointerSampler(),
	}, nil
}

func (s *SweeperScene) Update() error {
	s.sampler.Sample(s.controller.Pointer())
	if input.IsResetJustPressed() {
		s.controller.Enqueue(game.ResetCommand())
	}
	s.controller.Step()
	return s.BaseScene.Update()
}

func (s *SweeperScene) Controller() *game.Controller {
	return s.controller
}

func outcomeText(b *board.Board) (string, bool) {
	if !b.GameOver() {
		return "", false
	}
	if b.Won() {
		return "#WINNING", true
	}
	return "GAME OVER", true
}
