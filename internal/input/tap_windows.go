//go:build windows

package input

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	whKeyboardLL = 13
	wmQuit       = 0x0012
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	PtX     int32
	PtY     int32
}

// Only one low-level hook is installed per process; the callback reaches it
// through activeHook since windows.NewCallback slots are never freed.
var (
	activeHook   atomic.Pointer[Hook]
	hookCallback = windows.NewCallback(keyboardHookProc)
)

// Hook intercepts keyboard events through a WH_KEYBOARD_LL hook.
type Hook struct {
	logger *slog.Logger

	mu       sync.Mutex
	running  bool
	handler  Handler
	mods     *modifierState
	threadID uint32
	done     chan struct{}
}

// NewInterceptor returns the Windows low-level keyboard hook.
func NewInterceptor(logger *slog.Logger) Interceptor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hook{logger: logger}
}

// Start installs the hook on a dedicated thread with its own message loop.
func (h *Hook) Start(handler Handler) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return ErrAlreadyRunning
	}
	if !activeHook.CompareAndSwap(nil, h) {
		return ErrAlreadyRunning
	}

	h.handler = handler
	h.mods = newModifierState()
	h.done = make(chan struct{})

	ready := make(chan error, 1)
	go h.hookThread(ready)
	if err := <-ready; err != nil {
		activeHook.Store(nil)
		return err
	}

	h.running = true
	h.logger.Info("keyboard hook installed")
	return nil
}

func (h *Hook) hookThread(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)

	module, _, _ := procGetModuleHandle.Call(0)
	hook, _, err := procSetWindowsHookEx.Call(whKeyboardLL, hookCallback, module, 0)
	if hook == 0 {
		ready <- fmt.Errorf("%w: SetWindowsHookEx: %v", ErrTapCreate, err)
		return
	}
	defer procUnhookWindowsHookEx.Call(hook)

	h.threadID = windows.GetCurrentThreadId()
	ready <- nil

	var m msg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
	}
}

// Reenable is a no-op: Windows removes a timed-out low-level hook without
// notification, so there is nothing to switch back on.
func (h *Hook) Reenable() {}

// Stop ends the hook thread's message loop and removes the hook.
func (h *Hook) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return nil
	}

	ret, _, err := procPostThreadMessage.Call(uintptr(h.threadID), wmQuit, 0, 0)
	if ret == 0 {
		return fmt.Errorf("post quit to hook thread: %w", err)
	}
	<-h.done

	activeHook.Store(nil)
	h.running = false
	h.logger.Info("keyboard hook removed")
	return nil
}

func keyboardHookProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		if h := activeHook.Load(); h != nil {
			info := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			if ev, ok := h.mods.hookEvent(wParam, info.VkCode); ok {
				if h.handler.HandleEvent(ev) == Suppress {
					return 1
				}
			}
		}
	}

	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
