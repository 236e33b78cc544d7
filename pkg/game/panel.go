package game

import (
	"github.com/cbodonnell/crabsweeper/pkg/game/constants"
	"github.com/cbodonnell/crabsweeper/pkg/input"
)

// PanelButton is a rectangular button that issues a command on release.
type PanelButton struct {
	Label   string
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Command Command

	pressed bool
}

// Contains reports whether (x, y) lies inside the button, edges included.
func (b *PanelButton) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Pressed reports whether the button is drawn in its pressed state.
func (b *PanelButton) Pressed() bool {
	return b.pressed
}

// PanelLabel is a static caption drawn above a group of buttons.
type PanelLabel struct {
	Text string
	X    float64
	Y    float64
}

// Panel is the control column on the left of the board.
type Panel struct {
	Buttons []*PanelButton
	Labels  []PanelLabel
	// CounterX and CounterY locate the remaining flags box.
	CounterX float64
	CounterY float64
}

func newPanelButton(label string, y float64, command Command) *PanelButton {
	return &PanelButton{
		Label:   label,
		X:       constants.PanelButtonX,
		Y:       y,
		Width:   constants.PanelButtonWidth,
		Height:  constants.PanelButtonHeight,
		Command: command,
	}
}

// NewDefaultPanel returns the reset, dimension and crab ratio buttons.
func NewDefaultPanel() *Panel {
	return &Panel{
		Buttons: []*PanelButton{
			newPanelButton("Reset", 97, ResetCommand()),
			newPanelButton("10x10", 161, ResizeCommand(10, 10, 0)),
			newPanelButton("15x10", 193, ResizeCommand(15, 10, 0)),
			newPanelButton("15x15", 225, ResizeCommand(15, 15, 0)),
			newPanelButton("1:5", 289, ResizeCommand(0, 0, 5)),
			newPanelButton("1:8", 321, ResizeCommand(0, 0, 8)),
			newPanelButton("1:15", 353, ResizeCommand(0, 0, 15)),
		},
		Labels: []PanelLabel{
			{Text: "Panel", X: 25, Y: 62},
			{Text: "Dim.", X: 25, Y: 127},
			{Text: "Crab Ratio", X: 25, Y: 254},
		},
		CounterX: constants.PanelButtonX,
		CounterY: constants.FlagCounterY,
	}
}

// Update refreshes the pressed state of every button from the pointer and
// returns the command of the button under the cursor when the primary button
// has a pending release.
func (p *Panel) Update(pointer *input.Pointer) (Command, bool) {
	x, y := pointer.Position()
	primary := pointer.Primary()
	_, released := primary.LastReleasePosition()

	var (
		command Command
		ok      bool
	)
	for _, button := range p.Buttons {
		inside := button.Contains(x, y)
		button.pressed = inside && primary.IsDown()
		if inside && released {
			command, ok = button.Command, true
		}
	}

	return command, ok
}
