package game

import (
	"fmt"

	"github.com/cbodonnell/crabsweeper/pkg/board"
	"github.com/cbodonnell/crabsweeper/pkg/game/constants"
	"github.com/cbodonnell/crabsweeper/pkg/input"
	"github.com/cbodonnell/crabsweeper/pkg/log"
	"github.com/cbodonnell/crabsweeper/pkg/queue"
	"github.com/google/uuid"
)

// Controller runs one game session. It exclusively owns the board and the
// pointer state and advances both once per fixed update step.
type Controller struct {
	// id identifies the session in logs.
	id uuid.UUID
	// seed is reused for every board of the session, so Reset reproduces the layout.
	seed uint64
	// layout is the pixel placement shared by every board of the session.
	layout board.NewBoardOptions

	board    *board.Board
	pointer  *input.Pointer
	panel    *Panel
	commands queue.Queue[Command]

	remainingFlags int
	outcomeLogged  bool
}

type NewControllerOptions struct {
	// Seed drives mine placement for the whole session.
	Seed uint64
	// Width, Height and Denominator describe the first board.
	Width       int
	Height      int
	Denominator int
	// TileSize, CenterX and CenterY place the board on screen.
	TileSize float64
	CenterX  float64
	CenterY  float64
	// Panel is the control panel. Nil means NewDefaultPanel.
	Panel *Panel
	// Commands receives panel and keyboard commands. Nil means an in-memory queue.
	Commands queue.Queue[Command]
}

func NewController(opts NewControllerOptions) (*Controller, error) {
	layout := board.NewBoardOptions{
		Width:       opts.Width,
		Height:      opts.Height,
		Denominator: opts.Denominator,
		Seed:        opts.Seed,
		TileSize:    opts.TileSize,
		CenterX:     opts.CenterX,
		CenterY:     opts.CenterY,
	}
	b, err := board.New(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	panel := opts.Panel
	if panel == nil {
		panel = NewDefaultPanel()
	}
	commands := opts.Commands
	if commands == nil {
		commands = queue.NewInMemoryQueue[Command](constants.CommandQueueSize)
	}

	c := &Controller{
		id:       uuid.New(),
		seed:     opts.Seed,
		layout:   layout,
		board:    b,
		pointer:  input.NewPointer(),
		panel:    panel,
		commands: commands,
	}

	// A handler's first sample registers as an edge. Prime every button as
	// released so the first cursor motion is not read as a release.
	for _, button := range input.Buttons {
		c.pointer.RecordButton(button, 0, 0, false)
	}
	c.pointer.ClearStoredPositions()

	c.remainingFlags = b.RemainingFlags()
	log.Info("Started session %s: %dx%d 1:%d seed %d", c.id, b.Width(), b.Height(), b.Denominator(), c.seed)

	return c, nil
}

func (c *Controller) ID() uuid.UUID {
	return c.id
}

func (c *Controller) Seed() uint64 {
	return c.seed
}

func (c *Controller) Board() *board.Board {
	return c.board
}

func (c *Controller) Pointer() *input.Pointer {
	return c.pointer
}

func (c *Controller) Panel() *Panel {
	return c.panel
}

// RemainingFlags is the mine count minus the flag count as of the last step.
func (c *Controller) RemainingFlags() int {
	return c.remainingFlags
}

// Enqueue schedules a command for the next step.
func (c *Controller) Enqueue(command Command) {
	if err := c.commands.Enqueue(command); err != nil {
		log.Warn("Dropped command %s: %v", command, err)
	}
}

// Step advances the session by one fixed update: the panel and the board
// consume the pointer, pending commands are applied, the counters and the
// win state are recomputed and the pointer's stored positions are cleared.
func (c *Controller) Step() {
	if command, ok := c.panel.Update(c.pointer); ok {
		c.Enqueue(command)
	}

	c.updateBoard()

	for _, command := range c.commands.ReadAll() {
		if err := c.apply(command); err != nil {
			log.Error("Failed to apply command %s: %v", command, err)
		}
	}

	c.remainingFlags = c.board.RemainingFlags()
	c.board.IsWon()
	c.logOutcome()

	c.pointer.ClearStoredPositions()
}

func (c *Controller) updateBoard() {
	if pos, ok := c.pointer.Primary().LastReleasePosition(); ok {
		if i, ok := c.board.TileIndexForPoint(pos.X, pos.Y); ok {
			log.Trace("Reveal tile %d", i)
			c.board.Reveal(i)
		}
	}

	if pos, ok := c.pointer.Secondary().LastReleasePosition(); ok {
		if i, ok := c.board.TileIndexForPoint(pos.X, pos.Y); ok {
			log.Trace("Cycle marker on tile %d", i)
			c.board.CycleMarker(i)
		}
	}
}

func (c *Controller) apply(command Command) error {
	switch command.Kind {
	case CommandReset:
		return c.Reset()
	case CommandResize:
		return c.Resize(command.Width, command.Height, command.Denominator)
	default:
		return fmt.Errorf("unknown command kind: %d", command.Kind)
	}
}

// Reset replaces the board with a fresh one of the same shape, generated
// from the session seed.
func (c *Controller) Reset() error {
	if err := c.regenerate(c.layout); err != nil {
		return err
	}
	log.Info("Reset session %s", c.id)
	return nil
}

// Resize replaces the board with one of new dimensions or density. Zero
// arguments keep the current value. An invalid request leaves the current
// board in place and returns a *board.ConfigurationError.
func (c *Controller) Resize(width, height, denominator int) error {
	layout := c.layout
	if width != 0 {
		layout.Width = width
	}
	if height != 0 {
		layout.Height = height
	}
	if denominator != 0 {
		layout.Denominator = denominator
	}

	if err := c.regenerate(layout); err != nil {
		return err
	}
	log.Info("Resized session %s to %dx%d 1:%d", c.id, layout.Width, layout.Height, layout.Denominator)
	return nil
}

func (c *Controller) regenerate(layout board.NewBoardOptions) error {
	b, err := board.New(layout)
	if err != nil {
		return fmt.Errorf("failed to generate board: %w", err)
	}
	c.layout = layout
	c.board = b
	c.remainingFlags = b.RemainingFlags()
	c.outcomeLogged = false
	return nil
}

func (c *Controller) logOutcome() {
	if c.outcomeLogged || !c.board.GameOver() {
		return
	}
	c.outcomeLogged = true
	if c.board.Won() {
		log.Info("Session %s won", c.id)
	} else {
		log.Info("Session %s lost", c.id)
	}
}
