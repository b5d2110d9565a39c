//go:build windows

package display

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfo      = user32.NewProc("GetMonitorInfoW")
	procMonitorFromPoint    = user32.NewProc("MonitorFromPoint")
)

const (
	monitorDefaultToPrimary = 0x00000001
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfo struct {
	CbSize    uint32
	RcMonitor rect
	RcWork    rect
	DwFlags   uint32
}

// EnumDisplayMonitors callbacks cannot carry Go pointers, so enumeration
// results are collected here under enumMu.
var (
	enumMu       sync.Mutex
	enumResults  []Display
	enumCallback = windows.NewCallback(func(hMonitor, _, _, _ uintptr) uintptr {
		if d, ok := monitorDisplay(hMonitor, uint32(len(enumResults))); ok {
			enumResults = append(enumResults, d)
		}
		return 1
	})
)

type win32Provider struct{}

func newProvider() (Provider, error) {
	if err := procEnumDisplayMonitors.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPlatform, err)
	}
	return win32Provider{}, nil
}

func (win32Provider) Active() ([]Display, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumResults = nil
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %v", err)
	}
	out := make([]Display, len(enumResults))
	copy(out, enumResults)
	return out, nil
}

func (win32Provider) Primary() (Display, error) {
	// MonitorFromPoint takes a POINT by value; (0,0) packs into a zero word.
	hMonitor, _, _ := procMonitorFromPoint.Call(0, monitorDefaultToPrimary)
	if hMonitor == 0 {
		return Display{}, ErrNoDisplays
	}
	d, ok := monitorDisplay(hMonitor, 0)
	if !ok {
		return Display{}, ErrNoDisplays
	}
	return d, nil
}

func monitorDisplay(hMonitor uintptr, id uint32) (Display, bool) {
	info := monitorInfo{CbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	ret, _, _ := procGetMonitorInfo.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return Display{}, false
	}
	r := info.RcMonitor
	return Display{
		ID: id,
		Bounds: Rect{
			X:      float64(r.Left),
			Y:      float64(r.Top),
			Width:  float64(r.Right - r.Left),
			Height: float64(r.Bottom - r.Top),
		},
	}, true
}
