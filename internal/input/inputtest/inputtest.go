// Package inputtest provides recording fakes for input.Interceptor and
// input.Warper.
package inputtest

import (
	"sync"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/input"
)

// Warp is one recorded WarpTo call.
type Warp struct {
	Display display.Display
	Point   display.Point
}

// Warper records every warp and returns Err.
type Warper struct {
	Err   error
	Warps []Warp
}

func (w *Warper) WarpTo(d display.Display, p display.Point) error {
	w.Warps = append(w.Warps, Warp{Display: d, Point: p})
	return w.Err
}

// Interceptor is a fake hook. Tests push events through Send.
type Interceptor struct {
	StartErr error

	mu        sync.Mutex
	handler   input.Handler
	reenables int
	stops     int
}

func (i *Interceptor) Start(h input.Handler) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.StartErr != nil {
		return i.StartErr
	}
	if i.handler != nil {
		return input.ErrAlreadyRunning
	}
	i.handler = h
	return nil
}

func (i *Interceptor) Reenable() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.reenables++
}

func (i *Interceptor) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stops++
	i.handler = nil
	return nil
}

// Send delivers e to the installed handler. It returns Pass when nothing is
// installed, as the OS would.
func (i *Interceptor) Send(e input.Event) input.Verdict {
	i.mu.Lock()
	h := i.handler
	i.mu.Unlock()
	if h == nil {
		return input.Pass
	}
	return h.HandleEvent(e)
}

// Running reports whether a handler is installed.
func (i *Interceptor) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.handler != nil
}

// Reenables returns how many times Reenable was called.
func (i *Interceptor) Reenables() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.reenables
}

// Stops returns how many times Stop was called.
func (i *Interceptor) Stops() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stops
}
