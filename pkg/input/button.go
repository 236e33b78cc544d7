package input

// ButtonState is a level-sampled button state.
type ButtonState int

const (
	ButtonStateReleased ButtonState = iota
	ButtonStatePressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonStateReleased:
		return "Released"
	case ButtonStatePressed:
		return "Pressed"
	}
	return "Unknown"
}

// Position is a pixel position in screen space.
type Position struct {
	X float64
	Y float64
}

// ButtonHandler turns level samples of a single physical button into
// edge-triggered click, hold and release signals.
type ButtonHandler struct {
	// previousState is nil until the first sample has been pushed.
	previousState *ButtonState

	isInitialClick   bool
	isHeld           bool
	isInitialRelease bool

	lastClickPosition   *Position
	lastReleasePosition *Position
}

func NewButtonHandler() *ButtonHandler {
	return &ButtonHandler{}
}

// Push records a new sample and recomputes the edge flags.
func (h *ButtonHandler) Push(state ButtonState, x, y float64) {
	pos := &Position{X: x, Y: y}

	switch {
	case h.previousState == nil && state == ButtonStatePressed:
		h.setFlags(true, false, false)
		h.lastClickPosition = pos
	case h.previousState == nil:
		h.setFlags(false, false, true)
		h.lastReleasePosition = pos
	case state == ButtonStatePressed:
		if *h.previousState == ButtonStateReleased {
			h.setFlags(true, false, false)
			h.lastClickPosition = pos
		} else {
			h.setFlags(false, true, false)
		}
	default:
		if *h.previousState == ButtonStatePressed {
			h.setFlags(false, false, true)
			h.lastReleasePosition = pos
		} else {
			h.setFlags(false, false, false)
		}
	}

	h.previousState = &state
}

func (h *ButtonHandler) setFlags(click, held, release bool) {
	h.isInitialClick = click
	h.isHeld = held
	h.isInitialRelease = release
}

// ClearStoredPositions forgets the remembered click and release positions.
// The edge flags and the previous state are left untouched.
func (h *ButtonHandler) ClearStoredPositions() {
	h.lastClickPosition = nil
	h.lastReleasePosition = nil
}

// PreviousState returns the last pushed state and whether any sample has been pushed yet.
func (h *ButtonHandler) PreviousState() (ButtonState, bool) {
	if h.previousState == nil {
		return ButtonStateReleased, false
	}
	return *h.previousState, true
}

func (h *ButtonHandler) IsInitialClick() bool {
	return h.isInitialClick
}

func (h *ButtonHandler) IsHeld() bool {
	return h.isHeld
}

func (h *ButtonHandler) IsInitialRelease() bool {
	return h.isInitialRelease
}

// IsDown reports whether the button is either freshly clicked or held.
func (h *ButtonHandler) IsDown() bool {
	return h.isInitialClick || h.isHeld
}

// LastClickPosition returns the position of the last click edge, if not yet cleared.
func (h *ButtonHandler) LastClickPosition() (Position, bool) {
	if h.lastClickPosition == nil {
		return Position{}, false
	}
	return *h.lastClickPosition, true
}

// LastReleasePosition returns the position of the last release edge, if not yet cleared.
func (h *ButtonHandler) LastReleasePosition() (Position, bool) {
	if h.lastReleasePosition == nil {
		return Position{}, false
	}
	return *h.lastReleasePosition, true
}
