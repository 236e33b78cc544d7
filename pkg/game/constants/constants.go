package constants

import "time"

const (
	// ScreenWidth is the logical width of the window
	ScreenWidth int = 800
	// ScreenHeight is the logical height of the window
	ScreenHeight int = 500
	// TicksPerSecond is the fixed update rate
	TicksPerSecond int = 60

	// TileSize is the pixel size of a board tile
	TileSize float64 = 32.0
	// BoardCenterX is the x pixel coordinate the board is centred on
	BoardCenterX float64 = 475.0
	// BoardCenterY is the y pixel coordinate the board is centred on
	BoardCenterY float64 = 250.0

	// DefaultBoardWidth is the number of columns of the first board
	DefaultBoardWidth int = 10
	// DefaultBoardHeight is the number of rows of the first board
	DefaultBoardHeight int = 10
	// DefaultDenominator gives the first board a 1 in 10 mine density
	DefaultDenominator int = 10

	// PanelButtonWidth is the pixel width of a panel button
	PanelButtonWidth float64 = 96.0
	// PanelButtonHeight is the pixel height of a panel button
	PanelButtonHeight float64 = 32.0
	// PanelButtonX is the left edge of every panel button
	PanelButtonX float64 = 45.0
	// FlagCounterY is the top edge of the flag counter box
	FlagCounterY float64 = 390.0

	// CommandQueueSize bounds the number of commands pending for one step
	CommandQueueSize int = 16
)

const (
	// SplashLogoOneDelay is when the first splash logo appears
	SplashLogoOneDelay time.Duration = 300 * time.Millisecond
	// SplashLogoTwoDelay is when the second splash logo appears
	SplashLogoTwoDelay time.Duration = time.Second
	// SplashDuration is how long the splash screen lasts
	SplashDuration time.Duration = 3 * time.Second
)
