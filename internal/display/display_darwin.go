//go:build darwin

package display

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdint.h>

static uint32_t activeDisplayList(CGDirectDisplayID *out, uint32_t max) {
    uint32_t count = 0;
    if (CGGetActiveDisplayList(max, out, &count) != kCGErrorSuccess) {
        return 0;
    }
    return count;
}

static void displayBounds(CGDirectDisplayID id, double *x, double *y, double *w, double *h) {
    CGRect r = CGDisplayBounds(id);
    *x = r.origin.x;
    *y = r.origin.y;
    *w = r.size.width;
    *h = r.size.height;
}
*/
import "C"

// maxDisplays bounds the active display query.
const maxDisplays = 32

// quartzProvider reads display bounds from Quartz Display Services. Bounds
// use the global Quartz space: origin at the top-left of the main display.
type quartzProvider struct{}

func newProvider() (Provider, error) {
	return quartzProvider{}, nil
}

func (quartzProvider) Active() ([]Display, error) {
	var ids [maxDisplays]C.CGDirectDisplayID
	n := int(C.activeDisplayList(&ids[0], C.uint32_t(maxDisplays)))

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, Display{
			ID:     uint32(ids[i]),
			Bounds: boundsOf(ids[i]),
		})
	}
	return displays, nil
}

func (quartzProvider) Primary() (Display, error) {
	id := C.CGMainDisplayID()
	if id == 0 {
		return Display{}, ErrNoDisplays
	}
	return Display{ID: uint32(id), Bounds: boundsOf(id)}, nil
}

func boundsOf(id C.CGDirectDisplayID) Rect {
	var x, y, w, h C.double
	C.displayBounds(id, &x, &y, &w, &h)
	return Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}
