package input

import "kbtrackpad/internal/keys"

// Quartz event types delivered to the darwin tap.
const (
	cgEventKeyDown              uint32 = 10
	cgEventKeyUp                uint32 = 11
	cgEventFlagsChanged         uint32 = 12
	cgEventTapDisabledByTimeout uint32 = 0xFFFFFFFE
	cgEventTapDisabledByUser    uint32 = 0xFFFFFFFF
)

// Quartz CGEventFlags device-independent masks.
const (
	cgFlagShift     uint64 = 0x00020000
	cgFlagControl   uint64 = 0x00040000
	cgFlagAlternate uint64 = 0x00080000
	cgFlagCommand   uint64 = 0x00100000
	cgFlagFn        uint64 = 0x00800000
)

func modifiersFromCGFlags(flags uint64) keys.Modifiers {
	var mods keys.Modifiers
	if flags&cgFlagShift != 0 {
		mods |= keys.ModShift
	}
	if flags&cgFlagControl != 0 {
		mods |= keys.ModControl
	}
	if flags&cgFlagAlternate != 0 {
		mods |= keys.ModOption
	}
	if flags&cgFlagCommand != 0 {
		mods |= keys.ModCommand
	}
	if flags&cgFlagFn != 0 {
		mods |= keys.ModFn
	}
	return mods
}

// quartzEvent converts the fields the darwin tap extracts from a CGEvent.
func quartzEvent(eventType uint32, keycode int64, flags uint64) Event {
	switch eventType {
	case cgEventTapDisabledByTimeout, cgEventTapDisabledByUser:
		return Event{Kind: TapDisabled}
	case cgEventFlagsChanged:
		return Event{
			Kind:      ModifierChange,
			Key:       keys.KeyCode(keycode),
			Modifiers: modifiersFromCGFlags(flags),
		}
	case cgEventKeyDown:
		return Event{
			Kind:      KeyDown,
			Key:       keys.KeyCode(keycode),
			Modifiers: modifiersFromCGFlags(flags),
		}
	}
	return Event{Kind: Other, Key: keys.KeyCode(keycode)}
}

// Low-level keyboard hook messages.
const (
	wmKeyDown    uintptr = 0x0100
	wmKeyUp      uintptr = 0x0101
	wmSysKeyDown uintptr = 0x0104
	wmSysKeyUp   uintptr = 0x0105
)

// modifierState rebuilds the held-modifier set from individual key
// transitions, since the Windows hook reports keys rather than flags.
type modifierState struct {
	held map[keys.KeyCode]bool
}

func newModifierState() *modifierState {
	return &modifierState{held: make(map[keys.KeyCode]bool)}
}

func (s *modifierState) current() keys.Modifiers {
	var mods keys.Modifiers
	for code := range s.held {
		mods |= keys.ModifierFor(code)
	}
	return mods
}

// hookEvent converts one hook notification. The second result is false for
// notifications that carry nothing to handle, such as key releases.
func (s *modifierState) hookEvent(msg uintptr, vk uint32) (Event, bool) {
	code, known := keys.FromWindowsVK(vk)
	down := msg == wmKeyDown || msg == wmSysKeyDown
	up := msg == wmKeyUp || msg == wmSysKeyUp

	if known && keys.ModifierFor(code) != 0 {
		switch {
		case down:
			s.held[code] = true
		case up:
			delete(s.held, code)
		default:
			return Event{}, false
		}
		return Event{Kind: ModifierChange, Key: code, Modifiers: s.current()}, true
	}

	if !down {
		return Event{}, false
	}
	if !known {
		return Event{Kind: Other, Modifiers: s.current()}, true
	}
	return Event{Kind: KeyDown, Key: code, Modifiers: s.current()}, true
}
