//go:build windows

package input

import (
	"fmt"
	"math"

	"kbtrackpad/internal/display"
)

var procSetCursorPos = user32.NewProc("SetCursorPos")

type win32Warper struct{}

// NewWarper returns a Warper backed by SetCursorPos.
func NewWarper() Warper {
	return win32Warper{}
}

// WarpTo moves the cursor. SetCursorPos takes virtual-screen coordinates, so
// the display is only used for error context.
func (win32Warper) WarpTo(d display.Display, p display.Point) error {
	x := int32(math.Round(p.X))
	y := int32(math.Round(p.Y))
	ret, _, err := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if ret == 0 {
		return fmt.Errorf("%w: SetCursorPos(%d, %d) on display %d: %v", ErrWarp, x, y, d.ID, err)
	}
	return nil
}
