package game

import (
	"errors"
	"testing"

	"github.com/cbodonnell/crabsweeper/pkg/board"
	"github.com/cbodonnell/crabsweeper/pkg/game/constants"
	"github.com/cbodonnell/crabsweeper/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed uint64 = 0x5eed

func newTestController(t *testing.T, width, height, denominator int) *Controller {
	t.Helper()
	c, err := NewController(NewControllerOptions{
		Seed:        testSeed,
		Width:       width,
		Height:      height,
		Denominator: denominator,
		TileSize:    constants.TileSize,
		CenterX:     constants.BoardCenterX,
		CenterY:     constants.BoardCenterY,
	})
	require.NoError(t, err)
	return c
}

func click(p *input.Pointer, button input.Button, x, y float64) {
	p.RecordButton(button, x, y, true)
	p.RecordButton(button, x, y, false)
}

func tileCenter(b *board.Board, i int) (float64, float64) {
	x, y := b.TilePosition(i)
	return x + b.TileSize()/2, y + b.TileSize()/2
}

func findTile(t *testing.T, b *board.Board, mine bool) int {
	t.Helper()
	for i := 0; i < b.Size(); i++ {
		if b.IsMine(i) == mine {
			return i
		}
	}
	t.Fatalf("no tile with mine=%v on board", mine)
	return -1
}

func buttonCenter(t *testing.T, p *Panel, label string) (float64, float64) {
	t.Helper()
	for _, b := range p.Buttons {
		if b.Label == label {
			return b.X + b.Width/2, b.Y + b.Height/2
		}
	}
	t.Fatalf("no panel button %q", label)
	return 0, 0
}

func TestNewController_invalidConfiguration(t *testing.T) {
	_, err := NewController(NewControllerOptions{Width: 16, Height: 15, Denominator: 5})

	var cfgErr *board.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestController_revealOnPrimaryRelease(t *testing.T) {
	c := newTestController(t, 10, 10, 2)
	safe := findTile(t, c.Board(), false)

	x, y := tileCenter(c.Board(), safe)
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()

	assert.True(t, c.Board().IsUncovered(safe))
	_, ok := c.Pointer().Primary().LastReleasePosition()
	assert.False(t, ok, "stored positions are cleared at the end of a step")
}

func TestController_lossOnMine(t *testing.T) {
	c := newTestController(t, 10, 10, 2)
	mine := findTile(t, c.Board(), true)

	x, y := tileCenter(c.Board(), mine)
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()

	assert.True(t, c.Board().GameOver())
	assert.False(t, c.Board().Won())
}

func TestController_secondaryCyclesMarkerOncePerRelease(t *testing.T) {
	c := newTestController(t, 10, 10, 4)
	mines := c.Board().MineCount()
	require.Equal(t, mines, c.RemainingFlags())

	x, y := tileCenter(c.Board(), 0)
	click(c.Pointer(), input.ButtonSecondary, x, y)
	c.Step()
	assert.Equal(t, board.MarkerFlagged, c.Board().Marker(0))
	assert.Equal(t, mines-1, c.RemainingFlags())

	// Without a new release the next steps leave the marker alone.
	c.Step()
	c.Step()
	assert.Equal(t, board.MarkerFlagged, c.Board().Marker(0))
}

func TestController_motionDoesNotReveal(t *testing.T) {
	c := newTestController(t, 10, 10, 10)

	c.Pointer().RecordMotion(tileCenter(c.Board(), 55))
	c.Step()

	for i := 0; i < c.Board().Size(); i++ {
		assert.False(t, c.Board().IsUncovered(i), "tile %d", i)
	}
}

func TestController_releaseOutsideBoard(t *testing.T) {
	c := newTestController(t, 10, 10, 10)
	click(c.Pointer(), input.ButtonPrimary, 5, 5)
	c.Step()

	for i := 0; i < c.Board().Size(); i++ {
		assert.False(t, c.Board().IsUncovered(i), "tile %d", i)
	}
}

func TestController_resetButton(t *testing.T) {
	c := newTestController(t, 10, 10, 3)
	before := c.Board()
	safe := findTile(t, before, false)

	x, y := tileCenter(before, safe)
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()
	require.True(t, before.IsUncovered(safe))

	x, y = buttonCenter(t, c.Panel(), "Reset")
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()

	after := c.Board()
	assert.NotSame(t, before, after)
	assert.Equal(t, before.Width(), after.Width())
	assert.Equal(t, before.Height(), after.Height())
	for i := 0; i < after.Size(); i++ {
		assert.Equal(t, before.IsMine(i), after.IsMine(i), "same seed gives the same layout at %d", i)
		assert.False(t, after.IsUncovered(i))
	}
}

func TestController_resizeButtons(t *testing.T) {
	tests := []struct {
		label           string
		wantWidth       int
		wantHeight      int
		wantDenominator int
	}{
		{label: "10x10", wantWidth: 10, wantHeight: 10, wantDenominator: 7},
		{label: "15x10", wantWidth: 15, wantHeight: 10, wantDenominator: 7},
		{label: "15x15", wantWidth: 15, wantHeight: 15, wantDenominator: 7},
		{label: "1:5", wantWidth: 12, wantHeight: 9, wantDenominator: 5},
		{label: "1:8", wantWidth: 12, wantHeight: 9, wantDenominator: 8},
		{label: "1:15", wantWidth: 12, wantHeight: 9, wantDenominator: 15},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			c := newTestController(t, 12, 9, 7)
			x, y := buttonCenter(t, c.Panel(), tt.label)
			click(c.Pointer(), input.ButtonPrimary, x, y)
			c.Step()

			b := c.Board()
			assert.Equal(t, tt.wantWidth, b.Width())
			assert.Equal(t, tt.wantHeight, b.Height())
			assert.Equal(t, tt.wantDenominator, b.Denominator())
			assert.Equal(t, testSeed, b.Seed())

			left, top := b.Origin()
			w, h := b.PixelSize()
			assert.Equal(t, constants.BoardCenterX, left+w/2)
			assert.Equal(t, constants.BoardCenterY, top+h/2)
		})
	}
}

func TestController_Resize_invalid(t *testing.T) {
	c := newTestController(t, 10, 10, 10)
	before := c.Board()

	err := c.Resize(15, 16, 0)
	var cfgErr *board.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "height", cfgErr.Field)
	assert.Same(t, before, c.Board())

	// An invalid queued command is logged and leaves the board alone.
	c.Enqueue(ResizeCommand(0, 0, -1))
	c.Step()
	assert.Same(t, before, c.Board())
}

func TestController_resetClearsGameOver(t *testing.T) {
	c := newTestController(t, 10, 10, 2)
	mine := findTile(t, c.Board(), true)
	x, y := tileCenter(c.Board(), mine)
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()
	require.True(t, c.Board().GameOver())

	c.Enqueue(ResetCommand())
	c.Step()
	assert.False(t, c.Board().GameOver())
}

func TestController_allMinesIsWonImmediately(t *testing.T) {
	c := newTestController(t, 3, 3, 1)
	c.Step()

	assert.True(t, c.Board().GameOver())
	assert.True(t, c.Board().Won())
	assert.Equal(t, 9, c.RemainingFlags())
}

func TestController_commandsFromQueue(t *testing.T) {
	commands := &mockQueue{}
	defer commands.AssertExpectations(t)

	c, err := NewController(NewControllerOptions{
		Seed:        testSeed,
		Width:       10,
		Height:      10,
		Denominator: 10,
		CenterX:     constants.BoardCenterX,
		CenterY:     constants.BoardCenterY,
		Commands:    commands,
	})
	require.NoError(t, err)
	before := c.Board()

	commands.On("ReadAll").Return(nil).Once()
	c.Step()
	assert.Same(t, before, c.Board())

	commands.On("Enqueue", ResetCommand()).Return(nil).Once()
	commands.On("ReadAll").Return([]Command{ResetCommand()}).Once()
	x, y := buttonCenter(t, c.Panel(), "Reset")
	click(c.Pointer(), input.ButtonPrimary, x, y)
	c.Step()
	assert.NotSame(t, before, c.Board())
}

func TestPanel_pressedState(t *testing.T) {
	p := NewDefaultPanel()
	pointer := input.NewPointer()
	x, y := buttonCenter(t, p, "15x10")

	pointer.RecordButton(input.ButtonPrimary, x, y, true)
	_, ok := p.Update(pointer)
	assert.False(t, ok)
	for _, b := range p.Buttons {
		assert.Equal(t, b.Label == "15x10", b.Pressed(), b.Label)
	}

	// Dragging off the button before releasing issues nothing.
	pointer.RecordMotion(400, 400)
	pointer.RecordButton(input.ButtonPrimary, 400, 400, false)
	_, ok = p.Update(pointer)
	assert.False(t, ok)
	for _, b := range p.Buttons {
		assert.False(t, b.Pressed(), b.Label)
	}
}

func TestPanelButton_Contains(t *testing.T) {
	b := &PanelButton{X: 45, Y: 97, Width: 96, Height: 32}
	assert.True(t, b.Contains(45, 97))
	assert.True(t, b.Contains(141, 129))
	assert.False(t, b.Contains(141.5, 100))
	assert.False(t, b.Contains(44, 100))
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "Reset", ResetCommand().String())
	assert.Equal(t, "Resize{width=15 height=0 denominator=0}", ResizeCommand(15, 0, 0).String())
}
