// Package trigger tracks whether trackpad mode is active from the stream of
// modifier-change notifications.
package trigger

import "kbtrackpad/internal/keys"

// Transition is the state change produced by one modifier notification.
type Transition int

const (
	None Transition = iota
	Activated
	Deactivated
)

func (t Transition) String() string {
	switch t {
	case Activated:
		return "activated"
	case Deactivated:
		return "deactivated"
	default:
		return "none"
	}
}

// Held reports whether mods satisfy the activation predicate: Fn, or the
// Control+Option chord for keyboards without a usable Fn key.
func Held(mods keys.Modifiers) bool {
	return mods.Has(keys.ModFn) || mods.Has(keys.ModControl|keys.ModOption)
}

// Tracker holds the trackpad-mode flag. The zero value is inactive and
// ready to use. Tracker is not safe for concurrent use.
type Tracker struct {
	active bool
}

// Apply evaluates the predicate for mods and returns the resulting
// transition. Repeating the same result yields None.
func (t *Tracker) Apply(mods keys.Modifiers) Transition {
	held := Held(mods)
	switch {
	case held && !t.active:
		t.active = true
		return Activated
	case !held && t.active:
		t.active = false
		return Deactivated
	}
	return None
}

// OnModifierChange applies mods and returns the new active state.
func (t *Tracker) OnModifierChange(mods keys.Modifiers) bool {
	t.Apply(mods)
	return t.active
}

// Active reports whether trackpad mode is on.
func (t *Tracker) Active() bool {
	return t.active
}

// Reset forces the inactive state without reporting a transition.
func (t *Tracker) Reset() {
	t.active = false
}
