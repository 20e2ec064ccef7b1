package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame of player input
type InputState struct {
	Thrust bool
	Fire   bool

	// Cursor position in screen pixels
	AimX, AimY float64

	TogglePause bool
	ToggleDebug bool
	Restart     bool
}

// ReadInput polls the keyboard and mouse. Space thrusts, the left mouse
// button fires, the cursor aims.
func ReadInput() InputState {
	cx, cy := ebiten.CursorPosition()
	return InputState{
		Thrust:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Fire:        inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		AimX:        float64(cx),
		AimY:        float64(cy),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyD),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
