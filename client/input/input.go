package input

import (
	"github.com/cbodonnell/crabsweeper/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = map[ebiten.MouseButton]input.Button{
	ebiten.MouseButtonLeft:   input.ButtonPrimary,
	ebiten.MouseButtonRight:  input.ButtonSecondary,
	ebiten.MouseButtonMiddle: input.ButtonAuxiliary,
}

// PointerSampler translates ebiten's mouse state into pointer events.
type PointerSampler struct {
	x, y    int
	sampled bool
}

func NewPointerSampler() *PointerSampler {
	return &PointerSampler{}
}

// Sample records this update's cursor motion and mouse button edges.
// Motion is recorded before button edges so a release lands at the current cursor.
func (s *PointerSampler) Sample(pointer *input.Pointer) {
	x, y := ebiten.CursorPosition()
	if !s.sampled || x != s.x || y != s.y {
		pointer.RecordMotion(float64(x), float64(y))
		s.x, s.y, s.sampled = x, y, true
	}

	for mb, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			pointer.RecordButton(button, float64(x), float64(y), true)
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			pointer.RecordButton(button, float64(x), float64(y), false)
		}
	}
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// Mouse buttons are left out so a click that skips a screen is not replayed on the next one.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsResetJustPressed reports the keyboard shortcut for the panel's reset button.
func IsResetJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
