package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cbodonnell/crabsweeper/pkg/board"
	"github.com/cbodonnell/crabsweeper/pkg/game/constants"
	"github.com/cbodonnell/crabsweeper/pkg/log"
)

const (
	// SeedEnv pins the mine layout seed instead of reading one from the OS.
	SeedEnv = "CRABSWEEPER_SEED"
	// LogLevelEnv sets the log level when the flag is not given.
	LogLevelEnv = "LOG_LEVEL"

	DefaultWindowTitle = "Crab Sweeper!"
)

// Config is built once at start-up and passed to every component that needs it.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	WindowTitle    string
	TicksPerSecond int

	TileSize     float64
	BoardCenterX float64
	BoardCenterY float64

	BoardWidth  int
	BoardHeight int
	Denominator int

	SplashLogoOneDelay time.Duration
	SplashLogoTwoDelay time.Duration
	SplashDuration     time.Duration

	LogLevel log.LogLevel
	Debug    bool

	// Seed is used instead of an OS seed when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// Default returns the configuration of the stock game.
func Default() *Config {
	return &Config{
		ScreenWidth:        constants.ScreenWidth,
		ScreenHeight:       constants.ScreenHeight,
		WindowTitle:        DefaultWindowTitle,
		TicksPerSecond:     constants.TicksPerSecond,
		TileSize:           constants.TileSize,
		BoardCenterX:       constants.BoardCenterX,
		BoardCenterY:       constants.BoardCenterY,
		BoardWidth:         constants.DefaultBoardWidth,
		BoardHeight:        constants.DefaultBoardHeight,
		Denominator:        constants.DefaultDenominator,
		SplashLogoOneDelay: constants.SplashLogoOneDelay,
		SplashLogoTwoDelay: constants.SplashLogoTwoDelay,
		SplashDuration:     constants.SplashDuration,
		LogLevel:           log.LogLevelInfo,
	}
}

// ParseArgs parses command line arguments on top of the defaults. Environment
// variables fill in values that were not given as flags.
func ParseArgs(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("crabsweeper", flag.ContinueOnError)
	logLevel := fs.String("log-level", "", "Log level (error, warn, info, debug, trace)")
	seed := fs.String("seed", "", "Fixed mine layout seed")
	fs.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "Initial board width in tiles")
	fs.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "Initial board height in tiles")
	fs.IntVar(&cfg.Denominator, "ratio", cfg.Denominator, "Initial crab ratio denominator (1 in N tiles)")
	fs.IntVar(&cfg.TicksPerSecond, "tps", cfg.TicksPerSecond, "Fixed updates per second")
	fs.DurationVar(&cfg.SplashDuration, "splash", cfg.SplashDuration, "Splash screen duration")
	fs.BoolVar(&cfg.Debug, "debug", false, "Draw the debug overlay")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *logLevel == "" {
		*logLevel = strings.ToLower(os.Getenv(LogLevelEnv))
	}
	if *logLevel != "" {
		parsed, err := log.ParseLogLevel(*logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	if *seed == "" {
		*seed = os.Getenv(SeedEnv)
	}
	if *seed != "" {
		parsed, err := strconv.ParseUint(*seed, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed %q: %w", *seed, err)
		}
		cfg.Seed = parsed
		cfg.HasSeed = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BoardOptions returns the options of the first board for the given seed.
func (c *Config) BoardOptions(seed uint64) board.NewBoardOptions {
	return board.NewBoardOptions{
		Width:       c.BoardWidth,
		Height:      c.BoardHeight,
		Denominator: c.Denominator,
		Seed:        seed,
		TileSize:    c.TileSize,
		CenterX:     c.BoardCenterX,
		CenterY:     c.BoardCenterY,
	}
}

func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TicksPerSecond)
	}
	if c.SplashLogoOneDelay > c.SplashLogoTwoDelay || c.SplashDuration < 0 {
		return fmt.Errorf("invalid splash timings: %s, %s, %s", c.SplashLogoOneDelay, c.SplashLogoTwoDelay, c.SplashDuration)
	}
	if err := c.BoardOptions(0).Validate(); err != nil {
		return fmt.Errorf("invalid initial board: %w", err)
	}
	return nil
}
