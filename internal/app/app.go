// Package app wires the key mapper, router, interceptor and host surfaces
// (tray, pause hotkey, notifications) into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"kbtrackpad/internal/config"
	"kbtrackpad/internal/display"
	"kbtrackpad/internal/hotkey"
	"kbtrackpad/internal/input"
	"kbtrackpad/internal/keymap"
	"kbtrackpad/internal/logging"
	"kbtrackpad/internal/router"
	"kbtrackpad/internal/trigger"
)

// ErrNotTrusted is returned by Start when the OS has not granted the
// permission keyboard interception needs.
var ErrNotTrusted = errors.New("app: accessibility permission not granted")

const (
	statusIdle   = "Idle: hold Fn or Control+Option"
	statusActive = "Trackpad mode"
	statusPaused = "Paused"
)

// Notifier shows desktop notifications.
type Notifier interface {
	Error(msg string)
	Paused(paused bool)
}

// Hotkey is a registrable global hotkey.
type Hotkey interface {
	Register(hotkey.Combo) error
	Unregister() error
}

// Surface is the interactive UI, normally the menu-bar icon.
type Surface interface {
	SetStatus(text string)
	SetActive(active bool)
	// SetPaused mirrors the paused state, e.g. in a checkbox.
	SetPaused(paused bool)
	// Run blocks until Stop is called or the user quits. onReady runs once
	// the UI owns the main loop.
	Run(onReady func())
	Stop()
}

// Deps are the platform services the app drives. Tests substitute fakes.
type Deps struct {
	Displays    display.Provider
	Interceptor input.Interceptor
	Warper      input.Warper
	Notifier    Notifier
	// NewHotkey builds the pause hotkey; nil disables it.
	NewHotkey func(onPress func()) Hotkey
	// Trusted reports the interception permission, optionally prompting.
	Trusted func(prompt bool) bool
	// AskOpenSettings asks whether to open the permission settings.
	AskOpenSettings func() (bool, error)
	OpenSettings    func() error
	// NewSurface builds the UI once routing runs; nil runs headless.
	NewSurface func(*App) Surface
	Logger     *slog.Logger
}

// App is one running instance.
type App struct {
	cfg    config.Config
	deps   Deps
	logger *slog.Logger

	router *router.Router

	mu      sync.Mutex
	hotkey  Hotkey
	surface Surface
	started bool
	stopped bool
}

// New creates an App. Nothing is installed until Start.
func New(cfg config.Config, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		cfg:    cfg,
		deps:   deps,
		logger: logging.Component(logger, "app"),
	}
}

// Start checks permissions, builds the router and installs interception.
// On failure nothing stays installed. The pause hotkey is registered by Run.
func (a *App) Start() error {
	if !a.deps.Trusted(a.cfg.Prompt) {
		a.logger.Warn("accessibility permission missing; interception not started")
		a.offerSettings()
		return ErrNotTrusted
	}

	base := a.deps.Logger
	if base == nil {
		base = logging.Discard()
	}

	if geometry, err := display.Unified(a.deps.Displays); err != nil {
		a.logger.Warn("initial geometry query failed", "error", err)
	} else {
		a.logger.Info("display geometry", "bounds", geometry.String())
	}

	mapper := keymap.New(a.deps.Displays, keymap.Options{
		Tolerance: a.cfg.Tolerance,
		Logger:    logging.Component(base, "keymap"),
	})
	a.router = router.New(router.Config{
		Mapper:    mapper,
		Displays:  a.deps.Displays,
		Warper:    a.deps.Warper,
		Reenabler: a.deps.Interceptor,
		Logger:    logging.Component(base, "router"),
	})
	a.router.OnTransition(a.onTransition)

	if err := a.deps.Interceptor.Start(a.router); err != nil {
		a.logger.Error("keyboard interception failed", "error", err)
		if a.deps.Notifier != nil {
			a.deps.Notifier.Error("Could not intercept the keyboard. Check Accessibility permission.")
		}
		return fmt.Errorf("start interception: %w", err)
	}

	a.mu.Lock()
	a.started = true
	a.mu.Unlock()

	a.logger.Info("routing started")
	return nil
}

func (a *App) offerSettings() {
	if a.deps.AskOpenSettings == nil {
		return
	}
	open, err := a.deps.AskOpenSettings()
	if err != nil {
		a.logger.Warn("permission dialog failed", "error", err)
		return
	}
	if !open || a.deps.OpenSettings == nil {
		return
	}
	if err := a.deps.OpenSettings(); err != nil {
		a.logger.Warn("could not open accessibility settings", "error", err)
	}
}

func (a *App) registerHotkey() {
	if a.cfg.PauseHotkey == "" || a.deps.NewHotkey == nil {
		return
	}
	combo, err := hotkey.Parse(a.cfg.PauseHotkey)
	if err != nil {
		a.logger.Warn("pause hotkey ignored", "hotkey", a.cfg.PauseHotkey, "error", err)
		return
	}
	hk := a.deps.NewHotkey(func() { a.TogglePause() })
	if err := hk.Register(combo); err != nil {
		a.logger.Warn("pause hotkey unavailable", "hotkey", combo.String(), "error", err)
		return
	}
	a.mu.Lock()
	a.hotkey = hk
	a.mu.Unlock()
}

func (a *App) onTransition(t trigger.Transition) {
	a.mu.Lock()
	s := a.surface
	a.mu.Unlock()
	if s == nil {
		return
	}
	active := t == trigger.Activated
	s.SetActive(active)
	if active {
		s.SetStatus(statusActive)
	} else {
		s.SetStatus(statusIdle)
	}
}

// TogglePause flips the paused state and returns the new value.
func (a *App) TogglePause() bool {
	paused := !a.router.Paused()
	a.SetPaused(paused)
	return paused
}

// SetPaused pauses or resumes routing and updates the UI.
func (a *App) SetPaused(paused bool) {
	if a.router == nil {
		return
	}
	a.router.SetPaused(paused)

	a.mu.Lock()
	s := a.surface
	a.mu.Unlock()

	if s != nil {
		s.SetPaused(paused)
		s.SetActive(false)
		if paused {
			s.SetStatus(statusPaused)
		} else {
			s.SetStatus(statusIdle)
		}
	}
	if a.deps.Notifier != nil {
		a.deps.Notifier.Paused(paused)
	}
}

// Paused reports whether routing is paused.
func (a *App) Paused() bool {
	return a.router != nil && a.router.Paused()
}

// Stop removes the hotkey and the interceptor. It is safe to call more than
// once and before Start.
func (a *App) Stop() error {
	a.mu.Lock()
	if a.stopped || !a.started {
		a.mu.Unlock()
		return nil
	}
	a.stopped = true
	hk := a.hotkey
	a.mu.Unlock()

	if hk != nil {
		if err := hk.Unregister(); err != nil {
			a.logger.Warn("pause hotkey unregister failed", "error", err)
		}
	}
	if err := a.deps.Interceptor.Stop(); err != nil {
		return fmt.Errorf("stop interception: %w", err)
	}
	a.logger.Info("routing stopped")
	return nil
}

// Run starts the app, registers the pause hotkey and blocks until ctx is
// done or the surface quits. Interception is always removed before Run
// returns. With a surface Run must be called from the main goroutine.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.Start(); err != nil {
		return err
	}
	defer func() {
		if stopErr := a.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	if !a.cfg.Tray || a.deps.NewSurface == nil {
		a.registerHotkey()
		<-ctx.Done()
		return nil
	}

	surface := a.deps.NewSurface(a)
	a.mu.Lock()
	a.surface = surface
	a.mu.Unlock()
	surface.SetStatus(statusIdle)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("shutting down")
			surface.Stop()
		case <-done:
		}
	}()

	surface.Run(a.registerHotkey)
	a.logger.Info("surface closed")
	return nil
}
