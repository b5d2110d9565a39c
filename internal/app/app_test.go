package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbtrackpad/internal/config"
	"kbtrackpad/internal/display"
	"kbtrackpad/internal/display/displaytest"
	"kbtrackpad/internal/hotkey"
	"kbtrackpad/internal/input"
	"kbtrackpad/internal/input/inputtest"
	"kbtrackpad/internal/keys"
)

type fakeNotifier struct {
	errors []string
	paused []bool
}

func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *fakeNotifier) Paused(paused bool) { n.paused = append(n.paused, paused) }

type fakeHotkey struct {
	registerErr  error
	registered   []hotkey.Combo
	unregistered int
	onPress      func()
}

func (h *fakeHotkey) Register(c hotkey.Combo) error {
	if h.registerErr != nil {
		return h.registerErr
	}
	h.registered = append(h.registered, c)
	return nil
}

func (h *fakeHotkey) Unregister() error {
	h.unregistered++
	return nil
}

type fakeSurface struct {
	mu         sync.Mutex
	statuses   []string
	active     []bool
	paused     []bool
	afterReady func()
	once       sync.Once
	quit       chan struct{}
}

func newFakeSurface() *fakeSurface { return &fakeSurface{quit: make(chan struct{})} }

func (s *fakeSurface) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, text)
}

func (s *fakeSurface) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, active)
}

func (s *fakeSurface) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = append(s.paused, paused)
}

func (s *fakeSurface) Run(onReady func()) {
	if onReady != nil {
		onReady()
	}
	if s.afterReady != nil {
		s.afterReady()
	}
	<-s.quit
}

func (s *fakeSurface) Stop() { s.once.Do(func() { close(s.quit) }) }

type fixture struct {
	cfg         config.Config
	interceptor *inputtest.Interceptor
	warper      *inputtest.Warper
	notifier    *fakeNotifier
	hotkey      *fakeHotkey
	trusted     bool
	prompted    []bool
	asked       int
	answer      bool
	opened      int
	deps        Deps
}

func newFixture() *fixture {
	cfg := config.Defaults()
	cfg.Tray = false
	f := &fixture{
		cfg:         cfg,
		interceptor: &inputtest.Interceptor{},
		warper:      &inputtest.Warper{},
		notifier:    &fakeNotifier{},
		hotkey:      &fakeHotkey{},
		trusted:     true,
	}
	f.deps = Deps{
		Displays:    displaytest.Single(display.Rect{Width: 1500, Height: 600}),
		Interceptor: f.interceptor,
		Warper:      f.warper,
		Notifier:    f.notifier,
		NewHotkey: func(onPress func()) Hotkey {
			f.hotkey.onPress = onPress
			return f.hotkey
		},
		Trusted: func(prompt bool) bool {
			f.prompted = append(f.prompted, prompt)
			return f.trusted
		},
		AskOpenSettings: func() (bool, error) {
			f.asked++
			return f.answer, nil
		},
		OpenSettings: func() error {
			f.opened++
			return nil
		},
	}
	return f
}

func (f *fixture) app() *App { return New(f.cfg, f.deps) }

func TestStartWithoutPermission(t *testing.T) {
	f := newFixture()
	f.trusted = false
	f.answer = true

	err := f.app().Start()

	assert.ErrorIs(t, err, ErrNotTrusted)
	assert.False(t, f.interceptor.Running())
	assert.Equal(t, []bool{true}, f.prompted)
	assert.Equal(t, 1, f.asked)
	assert.Equal(t, 1, f.opened)
	assert.Empty(t, f.hotkey.registered)
}

func TestStartWithoutPermissionDeclined(t *testing.T) {
	f := newFixture()
	f.trusted = false
	f.cfg.Prompt = false

	err := f.app().Start()

	assert.ErrorIs(t, err, ErrNotTrusted)
	assert.Equal(t, []bool{false}, f.prompted)
	assert.Equal(t, 1, f.asked)
	assert.Zero(t, f.opened)
}

func TestStartInterceptorFailure(t *testing.T) {
	f := newFixture()
	f.interceptor.StartErr = input.ErrTapCreate
	a := f.app()

	err := a.Start()

	assert.ErrorIs(t, err, input.ErrTapCreate)
	assert.Len(t, f.notifier.errors, 1)
	assert.Empty(t, f.hotkey.registered)
	require.NoError(t, a.Stop())
	assert.Zero(t, f.interceptor.Stops())
}

func TestStartRoutesKeys(t *testing.T) {
	f := newFixture()
	a := f.app()
	require.NoError(t, a.Start())
	t.Cleanup(func() { _ = a.Stop() })

	assert.Equal(t, input.Pass, f.interceptor.Send(input.Event{Kind: input.ModifierChange, Modifiers: keys.ModFn}))
	v := f.interceptor.Send(input.Event{Kind: input.KeyDown, Key: keys.KeyGrave})

	assert.Equal(t, input.Suppress, v)
	require.Len(t, f.warper.Warps, 1)
	assert.InDelta(t, 50, f.warper.Warps[0].Point.Y, 1e-9)
}

func TestStartLeavesHotkeyToRun(t *testing.T) {
	f := newFixture()
	a := f.app()
	require.NoError(t, a.Start())
	t.Cleanup(func() { _ = a.Stop() })

	assert.Empty(t, f.hotkey.registered)
}

func TestRunRegistersPauseHotkeyOnceReady(t *testing.T) {
	f := newFixture()
	f.cfg.Tray = true
	surface := newFakeSurface()
	f.deps.NewSurface = func(*App) Surface { return surface }
	a := f.app()

	var pausedByHotkey bool
	var passed input.Verdict
	surface.afterReady = func() {
		f.hotkey.onPress()
		pausedByHotkey = a.Paused()
		f.interceptor.Send(input.Event{Kind: input.ModifierChange, Modifiers: keys.ModFn})
		passed = f.interceptor.Send(input.Event{Kind: input.KeyDown, Key: keys.KeyJ})
		surface.Stop()
	}

	require.NoError(t, a.Run(context.Background()))

	want, err := hotkey.Parse(hotkey.DefaultPause)
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Combo{want}, f.hotkey.registered)
	assert.True(t, pausedByHotkey)
	assert.Equal(t, input.Pass, passed)
	assert.Empty(t, f.warper.Warps)
	assert.Equal(t, 1, f.hotkey.unregistered)
	assert.Equal(t, []bool{true}, surface.paused)
}

func TestRunHeadlessRegistersPauseHotkey(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.app().Run(ctx))

	assert.Len(t, f.hotkey.registered, 1)
	assert.Equal(t, 1, f.hotkey.unregistered)
}

func TestHotkeyFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.hotkey.registerErr = errors.New("taken")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.app().Run(ctx))

	assert.Zero(t, f.hotkey.unregistered)
	assert.Equal(t, 1, f.interceptor.Stops())
}

func TestEmptyHotkeyIsSkipped(t *testing.T) {
	f := newFixture()
	f.cfg.PauseHotkey = ""
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.app().Run(ctx))

	assert.Nil(t, f.hotkey.onPress)
}

func TestTogglePauseNotifies(t *testing.T) {
	f := newFixture()
	a := f.app()
	require.NoError(t, a.Start())
	t.Cleanup(func() { _ = a.Stop() })

	assert.True(t, a.TogglePause())
	assert.False(t, a.TogglePause())

	assert.Equal(t, []bool{true, false}, f.notifier.paused)
	assert.False(t, a.Paused())
}

func TestSetPausedBeforeStartIsIgnored(t *testing.T) {
	f := newFixture()
	a := f.app()

	a.SetPaused(true)

	assert.False(t, a.Paused())
	assert.Empty(t, f.notifier.paused)
}

func TestStopIsIdempotent(t *testing.T) {
	f := newFixture()
	a := f.app()
	require.NoError(t, a.Stop())
	require.NoError(t, a.Start())

	require.NoError(t, a.Stop())
	require.NoError(t, a.Stop())

	assert.Equal(t, 1, f.interceptor.Stops())
	assert.False(t, f.interceptor.Running())
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app().Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, f.interceptor.Stops())
	assert.False(t, f.interceptor.Running())
}

func TestRunReturnsStartError(t *testing.T) {
	f := newFixture()
	f.trusted = false

	err := f.app().Run(context.Background())

	assert.ErrorIs(t, err, ErrNotTrusted)
}

func TestRunWithSurface(t *testing.T) {
	f := newFixture()
	f.cfg.Tray = true
	surface := newFakeSurface()
	var built *App
	f.deps.NewSurface = func(a *App) Surface {
		built = a
		return surface
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := f.app()
	require.NoError(t, a.Run(ctx))

	assert.Same(t, a, built)
	assert.Equal(t, []string{statusIdle}, surface.statuses)
	assert.Equal(t, 1, f.interceptor.Stops())
}

func TestSurfaceFollowsTriggerAndPause(t *testing.T) {
	f := newFixture()
	a := f.app()
	surface := newFakeSurface()
	require.NoError(t, a.Start())
	t.Cleanup(func() { _ = a.Stop() })
	a.surface = surface

	f.interceptor.Send(input.Event{Kind: input.ModifierChange, Modifiers: keys.ModFn})
	f.interceptor.Send(input.Event{Kind: input.ModifierChange})
	a.SetPaused(true)

	assert.Equal(t, []bool{true, false, false}, surface.active)
	assert.Equal(t, []string{statusActive, statusIdle, statusPaused}, surface.statuses)
	assert.Equal(t, []bool{true}, surface.paused)
}
