package input

// Button identifies one of the tracked pointer buttons.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonAuxiliary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonAuxiliary:
		return "Auxiliary"
	}
	return "Unknown"
}

// Buttons lists every tracked button in a stable order.
var Buttons = []Button{ButtonPrimary, ButtonSecondary, ButtonAuxiliary}

// Pointer aggregates the per-button handlers and the last known cursor position.
type Pointer struct {
	primary   *ButtonHandler
	secondary *ButtonHandler
	auxiliary *ButtonHandler

	x float64
	y float64
}

func NewPointer() *Pointer {
	return &Pointer{
		primary:   NewButtonHandler(),
		secondary: NewButtonHandler(),
		auxiliary: NewButtonHandler(),
	}
}

// Handler returns the handler for a tracked button, or nil for an untracked one.
func (p *Pointer) Handler(button Button) *ButtonHandler {
	switch button {
	case ButtonPrimary:
		return p.primary
	case ButtonSecondary:
		return p.secondary
	case ButtonAuxiliary:
		return p.auxiliary
	}
	return nil
}

func (p *Pointer) Primary() *ButtonHandler {
	return p.primary
}

func (p *Pointer) Secondary() *ButtonHandler {
	return p.secondary
}

func (p *Pointer) Auxiliary() *ButtonHandler {
	return p.auxiliary
}

// RecordButton forwards a press or release sample to the matching handler.
// The cursor position is updated even for untracked buttons.
func (p *Pointer) RecordButton(button Button, x, y float64, pressed bool) {
	state := ButtonStateReleased
	if pressed {
		state = ButtonStatePressed
	}

	if h := p.Handler(button); h != nil {
		h.Push(state, x, y)
	}

	p.x = x
	p.y = y
}

// RecordMotion re-pushes every handler's own previous state at the new
// position, so no press or release edge is synthesized.
func (p *Pointer) RecordMotion(x, y float64) {
	for _, button := range Buttons {
		h := p.Handler(button)
		state, _ := h.PreviousState()
		h.Push(state, x, y)
	}

	p.x = x
	p.y = y
}

// ClearStoredPositions clears the remembered positions of every handler.
// Call once per frame after click and release signals have been consumed.
func (p *Pointer) ClearStoredPositions() {
	for _, button := range Buttons {
		p.Handler(button).ClearStoredPositions()
	}
}

// Position returns the last known cursor position.
func (p *Pointer) Position() (float64, float64) {
	return p.x, p.y
}
