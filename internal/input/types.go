// Package input provides cross-platform keyboard interception and cursor
// placement.
package input

import (
	"fmt"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/keys"
)

// Kind classifies an intercepted event.
type Kind int

const (
	// Other covers event types the interceptor delivers but nothing handles.
	Other Kind = iota
	// ModifierChange reports the set of held modifiers after a change.
	ModifierChange
	// KeyDown is a non-modifier key press, including auto-repeat.
	KeyDown
	// TapDisabled means the OS switched interception off and it must be
	// re-enabled.
	TapDisabled
)

func (k Kind) String() string {
	switch k {
	case ModifierChange:
		return "modifier_change"
	case KeyDown:
		return "key_down"
	case TapDisabled:
		return "tap_disabled"
	default:
		return "other"
	}
}

// Event is one keyboard notification in platform-neutral form.
type Event struct {
	Kind      Kind
	Key       keys.KeyCode
	Modifiers keys.Modifiers
}

func (e Event) String() string {
	return fmt.Sprintf("%s key=%s mods=%s", e.Kind, e.Key, e.Modifiers)
}

// Verdict tells the interceptor what to do with the original event.
type Verdict int

const (
	// Pass lets the event continue to the focused application.
	Pass Verdict = iota
	// Suppress drops the event.
	Suppress
)

func (v Verdict) String() string {
	if v == Suppress {
		return "suppress"
	}
	return "pass"
}

// Handler decides the fate of each intercepted event. HandleEvent runs on
// the interceptor's delivery thread and must return quickly.
type Handler interface {
	HandleEvent(Event) Verdict
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Event) Verdict

func (f HandlerFunc) HandleEvent(e Event) Verdict { return f(e) }

// Interceptor installs a system-wide keyboard hook.
type Interceptor interface {
	// Start installs the hook and begins delivering events to h. It returns
	// once the hook is registered or registration failed.
	Start(h Handler) error
	// Reenable switches interception back on after the OS disabled it.
	Reenable()
	// Stop removes the hook. It is safe to call more than once.
	Stop() error
}

// Warper moves the mouse cursor.
type Warper interface {
	// WarpTo places the cursor at p, given in global coordinates, on d.
	WarpTo(d display.Display, p display.Point) error
}
