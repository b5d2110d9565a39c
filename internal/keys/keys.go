// Package keys defines the key and modifier vocabulary shared by the
// interception backends and the core. macOS virtual key codes are the
// canonical KeyCode values; other platforms translate into them.
package keys

import "strconv"

// KeyCode identifies a physical key position. Values are stable for the
// lifetime of the process.
type KeyCode uint16

// macOS virtual key codes (kVK_*) used by the fixed layout.
const (
	KeyA            KeyCode = 0
	KeyS            KeyCode = 1
	KeyD            KeyCode = 2
	KeyF            KeyCode = 3
	KeyH            KeyCode = 4
	KeyG            KeyCode = 5
	KeyZ            KeyCode = 6
	KeyX            KeyCode = 7
	KeyC            KeyCode = 8
	KeyV            KeyCode = 9
	KeyB            KeyCode = 11
	KeyQ            KeyCode = 12
	KeyW            KeyCode = 13
	KeyE            KeyCode = 14
	KeyR            KeyCode = 15
	KeyY            KeyCode = 16
	KeyT            KeyCode = 17
	Key1            KeyCode = 18
	Key2            KeyCode = 19
	Key3            KeyCode = 20
	Key4            KeyCode = 21
	Key6            KeyCode = 22
	Key5            KeyCode = 23
	KeyEqual        KeyCode = 24
	Key9            KeyCode = 25
	Key7            KeyCode = 26
	KeyMinus        KeyCode = 27
	Key8            KeyCode = 28
	Key0            KeyCode = 29
	KeyRightBracket KeyCode = 30
	KeyO            KeyCode = 31
	KeyU            KeyCode = 32
	KeyLeftBracket  KeyCode = 33
	KeyI            KeyCode = 34
	KeyP            KeyCode = 35
	KeyReturn       KeyCode = 36
	KeyL            KeyCode = 37
	KeyJ            KeyCode = 38
	KeyQuote        KeyCode = 39
	KeyK            KeyCode = 40
	KeySemicolon    KeyCode = 41
	KeyBackslash    KeyCode = 42
	KeyComma        KeyCode = 43
	KeySlash        KeyCode = 44
	KeyN            KeyCode = 45
	KeyM            KeyCode = 46
	KeyPeriod       KeyCode = 47
	KeyTab          KeyCode = 48
	KeySpace        KeyCode = 49
	KeyGrave        KeyCode = 50
	KeyDelete       KeyCode = 51
	KeyEscape       KeyCode = 53
	KeyRightCommand KeyCode = 54
	KeyCommand      KeyCode = 55
	KeyShift        KeyCode = 56
	KeyCapsLock     KeyCode = 57
	KeyOption       KeyCode = 58
	KeyControl      KeyCode = 59
	KeyRightShift   KeyCode = 60
	KeyRightOption  KeyCode = 61
	KeyRightControl KeyCode = 62
	KeyFunction     KeyCode = 63
	KeyLeftArrow    KeyCode = 123
	KeyRightArrow   KeyCode = 124
	KeyDownArrow    KeyCode = 125
	KeyUpArrow      KeyCode = 126
)

var keyNames = map[KeyCode]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyGrave:        "GRAVE",
	KeyMinus:        "MINUS",
	KeyEqual:        "EQUAL",
	KeyDelete:       "BACKSPACE",
	KeyTab:          "TAB",
	KeyLeftBracket:  "LBRACKET",
	KeyRightBracket: "RBRACKET",
	KeyBackslash:    "BACKSLASH",
	KeyCapsLock:     "CAPSLOCK",
	KeySemicolon:    "SEMICOLON",
	KeyQuote:        "QUOTE",
	KeyReturn:       "ENTER",
	KeyShift:        "SHIFT",
	KeyRightShift:   "RSHIFT",
	KeyComma:        "COMMA",
	KeyPeriod:       "PERIOD",
	KeySlash:        "SLASH",
	KeyOption:       "ALT",
	KeyRightOption:  "RALT",
	KeyCommand:      "CMD",
	KeyRightCommand: "RCMD",
	KeyControl:      "CTRL",
	KeyRightControl: "RCTRL",
	KeyFunction:     "FN",
	KeySpace:        "SPACE",
	KeyEscape:       "ESC",
	KeyLeftArrow:    "LEFT",
	KeyRightArrow:   "RIGHT",
	KeyDownArrow:    "DOWN",
	KeyUpArrow:      "UP",
}

// String returns a short upper-case name, or "KEY<n>" for codes without one.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "KEY" + strconv.Itoa(int(k))
}

// Modifiers is the set of modifier keys held at the time of an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModOption
	ModCommand
	ModFn
)

// Has reports whether every modifier in m is held.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

func (mods Modifiers) String() string {
	if mods == 0 {
		return "none"
	}
	out := ""
	for _, part := range []struct {
		mod  Modifiers
		name string
	}{
		{ModFn, "fn"},
		{ModControl, "ctrl"},
		{ModOption, "alt"},
		{ModShift, "shift"},
		{ModCommand, "cmd"},
	} {
		if mods&part.mod == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += part.name
	}
	return out
}
