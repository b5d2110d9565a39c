//go:build darwin

package input

/*
#cgo darwin LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static int moveCursor(uint32_t displayID, double x, double y) {
	return (int)CGDisplayMoveCursorToPoint((CGDirectDisplayID)displayID, CGPointMake(x, y));
}
*/
import "C"

import (
	"fmt"

	"kbtrackpad/internal/display"
)

type quartzWarper struct{}

// NewWarper returns a Warper backed by CGDisplayMoveCursorToPoint.
func NewWarper() Warper {
	return quartzWarper{}
}

// WarpTo converts p to coordinates local to d before moving the cursor.
func (quartzWarper) WarpTo(d display.Display, p display.Point) error {
	x := p.X - d.Bounds.MinX()
	y := p.Y - d.Bounds.MinY()
	if code := C.moveCursor(C.uint32_t(d.ID), C.double(x), C.double(y)); code != 0 {
		return fmt.Errorf("%w: CGDisplayMoveCursorToPoint error %d on display %d", ErrWarp, int(code), d.ID)
	}
	return nil
}
