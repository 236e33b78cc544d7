package game

import (
	"fmt"

	"github.com/cbodonnell/crabsweeper/client/flow"
	"github.com/cbodonnell/crabsweeper/client/input"
	"github.com/cbodonnell/crabsweeper/client/scenes"
	"github.com/cbodonnell/crabsweeper/pkg/config"
	"github.com/cbodonnell/crabsweeper/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// cfg is the start-up configuration.
	cfg *config.Config
	// seed drives mine placement for the playing screen.
	seed uint64
	// screen is the current screen.
	screen flow.Screen
	// scene is the current scene.
	scene scenes.Scene
	// splash is set while the splash screen is shown.
	splash *scenes.SplashScene
	// sweeper is set while the playing screen is shown.
	sweeper *scenes.SweeperScene
}

type NewGameOptions struct {
	Config *config.Config
	Seed   uint64
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		cfg:  opts.Config,
		seed: opts.Seed,
	}

	if err := g.loadSplash(); err != nil {
		return nil, fmt.Errorf("failed to load splash scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadSplash() error {
	splash, err := scenes.NewSplashScene(g.cfg)
	if err != nil {
		return fmt.Errorf("failed to create splash scene: %v", err)
	}
	if err := g.SetScene(splash); err != nil {
		return fmt.Errorf("failed to set splash scene: %v", err)
	}
	g.splash, g.sweeper = splash, nil
	g.screen = flow.ScreenSplash
	return nil
}

func (g *Game) loadSweeper() error {
	sweeper, err := scenes.NewSweeperScene(scenes.SweeperSceneOptions{
		Config: g.cfg,
		Seed:   g.seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create sweeper scene: %v", err)
	}
	if err := g.SetScene(sweeper); err != nil {
		return fmt.Errorf("failed to set sweeper scene: %v", err)
	}
	g.splash, g.sweeper = nil, sweeper
	g.screen = flow.ScreenPlaying
	return nil
}

func (g *Game) loadExit() error {
	if err := g.SetScene(scenes.NewExitScene()); err != nil {
		return fmt.Errorf("failed to set exit scene: %v", err)
	}
	g.splash, g.sweeper = nil, nil
	g.screen = flow.ScreenExit
	return nil
}

func (g *Game) Update() error {
	if g.screen == flow.ScreenExit {
		log.Info("Exiting")
		return ebiten.Termination
	}

	if err := g.handleTransition(); err != nil {
		return fmt.Errorf("failed to change screen: %v", err)
	}
	if g.screen == flow.ScreenExit {
		return nil
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleTransition() error {
	signals := flow.Signals{
		Skip:   input.IsPositiveJustPressed(),
		Escape: input.IsNegativeJustPressed(),
	}
	if g.splash != nil {
		signals.SplashDone = g.splash.Done()
	}

	next := flow.Next(g.screen, signals)
	if next == g.screen {
		return nil
	}
	log.Debug("Screen %s -> %s", g.screen, next)

	switch next {
	case flow.ScreenPlaying:
		return g.loadSweeper()
	case flow.ScreenExit:
		return g.loadExit()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.Debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Screen: %s", g.screen))

	if g.sweeper == nil {
		return
	}

	c := g.sweeper.Controller()
	x, y := c.Pointer().Position()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Session: %s", c.ID()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Seed: %d", c.Seed()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Cursor: %0.0f, %0.0f", x, y))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
