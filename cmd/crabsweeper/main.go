package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/crabsweeper/client/game"
	"github.com/cbodonnell/crabsweeper/pkg/config"
	pkggame "github.com/cbodonnell/crabsweeper/pkg/game"
	"github.com/cbodonnell/crabsweeper/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse arguments: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, cfg.LogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", cfg.LogLevel)

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed, err = pkggame.NewSeed()
		if err != nil {
			log.Error("Failed to obtain a random seed from the operating system: %v", err)
			os.Exit(1)
		}
	}

	g, err := game.NewGame(game.NewGameOptions{
		Config: cfg,
		Seed:   seed,
	})
	if err != nil {
		log.Error("Failed to create game: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(cfg.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
		os.Exit(1)
	}
}
