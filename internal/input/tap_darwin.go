//go:build darwin

package input

/*
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

extern int goTapEvent(uint32_t eventType, int64_t keycode, uint64_t flags, uintptr_t handle);

static CGEventRef tapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *info) {
	int64_t keycode = 0;
	uint64_t flags = 0;
	if (type == kCGEventKeyDown || type == kCGEventFlagsChanged) {
		keycode = CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
		flags = (uint64_t)CGEventGetFlags(event);
	}
	if (goTapEvent((uint32_t)type, keycode, flags, (uintptr_t)info) != 0) {
		return NULL;
	}
	return event;
}

static CGEventMask cgEventMaskBit(CGEventType type) {
	return ((CGEventMask)1) << type;
}

static CFRunLoopSourceRef startEventTap(uintptr_t handle, CGEventMask mask, CFMachPortRef *tapOut) {
	CFMachPortRef tap = CGEventTapCreate(kCGSessionEventTap,
	                                     kCGHeadInsertEventTap,
	                                     kCGEventTapOptionDefault,
	                                     mask,
	                                     tapCallback,
	                                     (void *)handle);
	if (tap == NULL) {
		return NULL;
	}
	CGEventTapEnable(tap, true);
	CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
	*tapOut = tap;
	return source;
}

static void enableTap(CFMachPortRef tap) {
	CGEventTapEnable(tap, true);
}

static void disableTap(CFMachPortRef tap) {
	CGEventTapEnable(tap, false);
}

static CFRunLoopRef currentRunLoop(void) {
	return CFRunLoopGetCurrent();
}

static void addSourceToRunLoop(CFRunLoopRef loop, CFRunLoopSourceRef source) {
	CFRunLoopAddSource(loop, source, kCFRunLoopCommonModes);
}

static void runLoopFor(double seconds) {
	CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false);
}

static void stopRunLoop(CFRunLoopRef loop) {
	CFRunLoopStop(loop);
}
*/
import "C"

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/cgo"
	"sync"
	"sync/atomic"
)

// runLoopSlice bounds how long the tap thread sleeps before checking for a
// stop request that raced with run loop start-up.
const runLoopSlice = 0.5

// Tap intercepts keyboard events through a Quartz session event tap.
type Tap struct {
	logger *slog.Logger

	mu       sync.Mutex
	running  bool
	handler  Handler
	port     C.CFMachPortRef
	loop     C.CFRunLoopRef
	stopping atomic.Bool
	done     chan struct{}
}

// NewInterceptor returns the darwin event tap.
func NewInterceptor(logger *slog.Logger) Interceptor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tap{logger: logger}
}

// Start creates the tap on a dedicated OS thread and waits for the result.
func (t *Tap) Start(h Handler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return ErrAlreadyRunning
	}

	t.handler = h
	t.stopping.Store(false)
	t.done = make(chan struct{})

	ready := make(chan error, 1)
	go t.run(ready)
	if err := <-ready; err != nil {
		return err
	}

	t.running = true
	t.logger.Info("event tap installed")
	return nil
}

func (t *Tap) run(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(t.done)

	handle := cgo.NewHandle(t)
	defer handle.Delete()

	mask := C.cgEventMaskBit(C.kCGEventFlagsChanged) | C.cgEventMaskBit(C.kCGEventKeyDown)

	var port C.CFMachPortRef
	source := C.startEventTap(C.uintptr_t(handle), mask, &port)
	if source == 0 {
		ready <- fmt.Errorf("%w: CGEventTapCreate returned NULL", ErrTapCreate)
		return
	}
	defer C.CFRelease(C.CFTypeRef(port))
	defer C.CFRelease(C.CFTypeRef(source))

	t.port = port
	t.loop = C.currentRunLoop()
	C.addSourceToRunLoop(t.loop, source)
	ready <- nil

	for !t.stopping.Load() {
		C.runLoopFor(C.double(runLoopSlice))
	}

	C.disableTap(port)
}

// Reenable turns the tap back on. It is called from the tap thread when the
// system disabled the tap for a slow callback or user input.
func (t *Tap) Reenable() {
	if t.port == 0 {
		return
	}
	C.enableTap(t.port)
	t.logger.Debug("event tap re-enabled")
}

// Stop disables the tap, stops its run loop and waits for the thread to exit.
func (t *Tap) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	t.stopping.Store(true)
	C.stopRunLoop(t.loop)
	<-t.done

	t.running = false
	t.port = 0
	t.loop = 0
	t.logger.Info("event tap removed")
	return nil
}

//export goTapEvent
func goTapEvent(eventType C.uint32_t, keycode C.int64_t, flags C.uint64_t, handle C.uintptr_t) C.int {
	t, ok := cgo.Handle(handle).Value().(*Tap)
	if !ok || t.handler == nil {
		return 0
	}

	ev := quartzEvent(uint32(eventType), int64(keycode), uint64(flags))
	if t.handler.HandleEvent(ev) == Suppress {
		return 1
	}
	return 0
}
