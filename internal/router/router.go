// Package router decides, for every intercepted keyboard event, whether to
// move the cursor and whether the key reaches the focused application.
package router

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/input"
	"kbtrackpad/internal/keys"
	"kbtrackpad/internal/trigger"
)

// Resolver maps a key to a global screen point.
type Resolver interface {
	Resolve(keys.KeyCode) (display.Point, bool)
}

// Reenabler switches interception back on after the OS disabled it.
type Reenabler interface {
	Reenable()
}

// Config holds the collaborators of a Router.
type Config struct {
	Mapper    Resolver
	Displays  display.Provider
	Warper    input.Warper
	Reenabler Reenabler
	Logger    *slog.Logger
}

// Router implements input.Handler. HandleEvent must be called from a single
// delivery thread; SetPaused and OnTransition may be called from any
// goroutine.
type Router struct {
	mapper    Resolver
	displays  display.Provider
	warper    input.Warper
	reenabler Reenabler
	logger    *slog.Logger

	tracker trigger.Tracker
	paused  atomic.Bool

	observerMu sync.RWMutex
	observer   func(trigger.Transition)
}

var _ input.Handler = (*Router)(nil)

// New creates a Router.
func New(cfg Config) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		mapper:    cfg.Mapper,
		displays:  cfg.Displays,
		warper:    cfg.Warper,
		reenabler: cfg.Reenabler,
		logger:    logger,
	}
}

// SetPaused stops or resumes routing. While paused every event passes
// through untouched.
func (r *Router) SetPaused(paused bool) {
	if r.paused.Swap(paused) != paused {
		r.logger.Info("routing paused state changed", "paused", paused)
	}
}

// Paused reports whether routing is paused.
func (r *Router) Paused() bool {
	return r.paused.Load()
}

// OnTransition registers fn to be called on the delivery thread whenever
// trackpad mode turns on or off. A nil fn removes the observer.
func (r *Router) OnTransition(fn func(trigger.Transition)) {
	r.observerMu.Lock()
	r.observer = fn
	r.observerMu.Unlock()
}

// Active reports whether trackpad mode is on. Only meaningful on the
// delivery thread.
func (r *Router) Active() bool {
	return r.tracker.Active()
}

func (r *Router) HandleEvent(e input.Event) input.Verdict {
	if e.Kind == input.TapDisabled {
		if r.reenabler != nil {
			r.reenabler.Reenable()
		}
		r.logger.Debug("interception re-enabled after system disable")
		return input.Pass
	}

	if r.paused.Load() {
		if r.tracker.Active() {
			r.tracker.Reset()
		}
		return input.Pass
	}

	switch e.Kind {
	case input.ModifierChange:
		r.modifierChange(e.Modifiers)
		return input.Pass
	case input.KeyDown:
		if !r.tracker.Active() {
			return input.Pass
		}
		r.warp(e.Key)
		return input.Suppress
	}
	return input.Pass
}

func (r *Router) modifierChange(mods keys.Modifiers) {
	t := r.tracker.Apply(mods)
	if t == trigger.None {
		return
	}
	r.logger.Debug("trackpad mode changed", "transition", t.String(), "modifiers", mods.String())

	r.observerMu.RLock()
	fn := r.observer
	r.observerMu.RUnlock()
	if fn != nil {
		fn(t)
	}
}

func (r *Router) warp(key keys.KeyCode) {
	p, ok := r.mapper.Resolve(key)
	if !ok {
		return
	}

	d, err := display.Locate(r.displays, p)
	if err != nil {
		r.logger.Warn("no display for warp target", "key", key.String(), "x", p.X, "y", p.Y, "error", err)
		return
	}
	if err := r.warper.WarpTo(d, p); err != nil {
		r.logger.Warn("cursor warp failed", "key", key.String(), "display", d.ID, "error", err)
		return
	}
	r.logger.Debug("cursor warped", "key", key.String(), "display", d.ID, "x", p.X, "y", p.Y)
}
