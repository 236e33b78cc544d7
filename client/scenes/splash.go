package scenes

import (
	"image/color"
	"time"

	"github.com/cbodonnell/crabsweeper/client/flow"
	"github.com/cbodonnell/crabsweeper/client/objects"
	"github.com/cbodonnell/crabsweeper/pkg/config"
)

type SplashScene struct {
	*BaseScene

	splash *flow.Splash
	tick   time.Duration
}

var _ Scene = &SplashScene{}

func NewSplashScene(cfg *config.Config) (*SplashScene, error) {
	splash := flow.NewSplash(cfg.SplashLogoOneDelay, cfg.SplashLogoTwoDelay, cfg.SplashDuration)

	root := objects.NewBaseObject("splash-root", nil)
	logos := objects.NewSplashObject("splash-logos", splash, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	if err := root.AddChild(logos); err != nil {
		return nil, err
	}

	return &SplashScene{
		BaseScene: NewBaseScene(root, color.White),
		splash:    splash,
		tick:      flow.TickDuration(cfg.TicksPerSecond),
	}, nil
}

func (s *SplashScene) Update() error {
	s.splash.Advance(s.tick)
	return s.BaseScene.Update()
}

// Done reports whether the splash sequence has finished.
func (s *SplashScene) Done() bool {
	return s.splash.Done()
}
