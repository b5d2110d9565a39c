package router_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/display/displaytest"
	"kbtrackpad/internal/input"
	"kbtrackpad/internal/input/inputtest"
	"kbtrackpad/internal/keymap"
	"kbtrackpad/internal/keys"
	"kbtrackpad/internal/router"
	"kbtrackpad/internal/trigger"
)

type fixture struct {
	displays    *displaytest.Provider
	warper      *inputtest.Warper
	interceptor *inputtest.Interceptor
	router      *router.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	p := displaytest.Single(display.Rect{Width: 1500, Height: 600})
	f := &fixture{
		displays:    p,
		warper:      &inputtest.Warper{},
		interceptor: &inputtest.Interceptor{},
	}
	f.router = router.New(router.Config{
		Mapper:    keymap.New(p, keymap.Options{}),
		Displays:  p,
		Warper:    f.warper,
		Reenabler: f.interceptor,
	})
	require.NoError(t, f.interceptor.Start(f.router))
	return f
}

func modifiers(m keys.Modifiers) input.Event {
	return input.Event{Kind: input.ModifierChange, Modifiers: m}
}

func keyDown(code keys.KeyCode) input.Event {
	return input.Event{Kind: input.KeyDown, Key: code}
}

func TestInactiveKeyDownPasses(t *testing.T) {
	f := newFixture(t)

	v := f.interceptor.Send(keyDown(keys.KeyJ))

	assert.Equal(t, input.Pass, v)
	assert.Empty(t, f.warper.Warps)
}

func TestActiveKeyDownWarpsOnceAndSuppresses(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, input.Pass, f.interceptor.Send(modifiers(keys.ModFn)))
	v := f.interceptor.Send(keyDown(keys.KeyGrave))

	assert.Equal(t, input.Suppress, v)
	require.Len(t, f.warper.Warps, 1)
	w := f.warper.Warps[0]
	assert.Equal(t, uint32(1), w.Display.ID)
	assert.InDelta(t, 53.57, w.Point.X, 0.01)
	assert.InDelta(t, 50, w.Point.Y, 1e-9)
}

func TestChordActivates(t *testing.T) {
	f := newFixture(t)

	f.interceptor.Send(modifiers(keys.ModControl))
	assert.Equal(t, input.Pass, f.interceptor.Send(keyDown(keys.KeyA)))

	f.interceptor.Send(modifiers(keys.ModControl | keys.ModOption))
	assert.Equal(t, input.Suppress, f.interceptor.Send(keyDown(keys.KeyA)))
	assert.Len(t, f.warper.Warps, 1)
}

func TestUnresolvedKeySuppressedWithoutWarp(t *testing.T) {
	f := newFixture(t)
	f.interceptor.Send(modifiers(keys.ModFn))

	v := f.interceptor.Send(keyDown(keys.KeyEscape))

	assert.Equal(t, input.Suppress, v)
	assert.Empty(t, f.warper.Warps)
}

func TestModifierEventsAlwaysPass(t *testing.T) {
	f := newFixture(t)

	for _, m := range []keys.Modifiers{keys.ModFn, keys.ModFn | keys.ModShift, 0, keys.ModControl | keys.ModOption} {
		assert.Equal(t, input.Pass, f.interceptor.Send(modifiers(m)))
	}
}

func TestReleasingTriggerStopsRouting(t *testing.T) {
	f := newFixture(t)

	f.interceptor.Send(modifiers(keys.ModFn))
	f.interceptor.Send(keyDown(keys.KeyJ))
	f.interceptor.Send(modifiers(0))
	v := f.interceptor.Send(keyDown(keys.KeyJ))

	assert.Equal(t, input.Pass, v)
	assert.Len(t, f.warper.Warps, 1)
}

func TestTapDisabledReenables(t *testing.T) {
	f := newFixture(t)

	v := f.interceptor.Send(input.Event{Kind: input.TapDisabled})

	assert.Equal(t, input.Pass, v)
	assert.Equal(t, 1, f.interceptor.Reenables())
}

func TestOtherEventsPass(t *testing.T) {
	f := newFixture(t)
	f.interceptor.Send(modifiers(keys.ModFn))

	assert.Equal(t, input.Pass, f.interceptor.Send(input.Event{Kind: input.Other}))
}

func TestWarpFailureKeepsVerdict(t *testing.T) {
	f := newFixture(t)
	f.warper.Err = errors.New("cursor locked")
	f.interceptor.Send(modifiers(keys.ModFn))

	v := f.interceptor.Send(keyDown(keys.KeyK))

	assert.Equal(t, input.Suppress, v)
	assert.Len(t, f.warper.Warps, 1)
}

func TestWarpTargetsContainingDisplay(t *testing.T) {
	p := &displaytest.Provider{
		Displays: []display.Display{
			{ID: 1, Bounds: display.Rect{Width: 1500, Height: 600}},
			{ID: 2, Bounds: display.Rect{X: 1500, Width: 1500, Height: 600}},
		},
		Main: display.Display{ID: 1, Bounds: display.Rect{Width: 1500, Height: 600}},
	}
	w := &inputtest.Warper{}
	r := router.New(router.Config{
		Mapper:   keymap.New(p, keymap.Options{}),
		Displays: p,
		Warper:   w,
	})

	r.HandleEvent(modifiers(keys.ModFn))
	r.HandleEvent(keyDown(keys.KeyP))
	r.HandleEvent(keyDown(keys.KeyQ))

	require.Len(t, w.Warps, 2)
	assert.Equal(t, uint32(2), w.Warps[0].Display.ID)
	assert.Equal(t, uint32(1), w.Warps[1].Display.ID)
}

func TestPausedPassesEverything(t *testing.T) {
	f := newFixture(t)
	f.interceptor.Send(modifiers(keys.ModFn))

	f.router.SetPaused(true)
	assert.True(t, f.router.Paused())
	assert.Equal(t, input.Pass, f.interceptor.Send(keyDown(keys.KeyJ)))
	assert.Equal(t, input.Pass, f.interceptor.Send(modifiers(keys.ModFn)))
	assert.False(t, f.router.Active())
	assert.Empty(t, f.warper.Warps)

	f.router.SetPaused(false)
	assert.Equal(t, input.Pass, f.interceptor.Send(keyDown(keys.KeyJ)), "trigger must be pressed again")
	f.interceptor.Send(modifiers(keys.ModFn))
	assert.Equal(t, input.Suppress, f.interceptor.Send(keyDown(keys.KeyJ)))
}

func TestPausedStillReenables(t *testing.T) {
	f := newFixture(t)
	f.router.SetPaused(true)

	f.interceptor.Send(input.Event{Kind: input.TapDisabled})

	assert.Equal(t, 1, f.interceptor.Reenables())
}

func TestOnTransitionObserver(t *testing.T) {
	f := newFixture(t)
	var got []trigger.Transition
	f.router.OnTransition(func(tr trigger.Transition) {
		got = append(got, tr)
	})

	f.interceptor.Send(modifiers(0))
	f.interceptor.Send(modifiers(keys.ModFn))
	f.interceptor.Send(modifiers(keys.ModFn))
	f.interceptor.Send(modifiers(0))

	assert.Equal(t, []trigger.Transition{trigger.Activated, trigger.Deactivated}, got)
}
