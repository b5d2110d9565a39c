package keys

// Windows VK code to canonical KeyCode mapping.
// Reference: https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
var windowsToKeyCode = map[uint32]KeyCode{
	// Letters
	0x41: KeyA, 0x42: KeyB, 0x43: KeyC, 0x44: KeyD, 0x45: KeyE,
	0x46: KeyF, 0x47: KeyG, 0x48: KeyH, 0x49: KeyI, 0x4A: KeyJ,
	0x4B: KeyK, 0x4C: KeyL, 0x4D: KeyM, 0x4E: KeyN, 0x4F: KeyO,
	0x50: KeyP, 0x51: KeyQ, 0x52: KeyR, 0x53: KeyS, 0x54: KeyT,
	0x55: KeyU, 0x56: KeyV, 0x57: KeyW, 0x58: KeyX, 0x59: KeyY,
	0x5A: KeyZ,

	// Digits
	0x30: Key0, 0x31: Key1, 0x32: Key2, 0x33: Key3, 0x34: Key4,
	0x35: Key5, 0x36: Key6, 0x37: Key7, 0x38: Key8, 0x39: Key9,

	0x08: KeyDelete, // Backspace
	0x09: KeyTab,
	0x0D: KeyReturn,
	0x14: KeyCapsLock,
	0x1B: KeyEscape,
	0x20: KeySpace,

	0x25: KeyLeftArrow,
	0x26: KeyUpArrow,
	0x27: KeyRightArrow,
	0x28: KeyDownArrow,

	// Modifiers. Windows keys stand in for Command.
	0x10: KeyShift,
	0x11: KeyControl,
	0x12: KeyOption,
	0x5B: KeyCommand,
	0x5C: KeyRightCommand,
	0xA0: KeyShift,
	0xA1: KeyRightShift,
	0xA2: KeyControl,
	0xA3: KeyRightControl,
	0xA4: KeyOption,
	0xA5: KeyRightOption,

	// OEM punctuation (US layout)
	0xBA: KeySemicolon,
	0xBB: KeyEqual,
	0xBC: KeyComma,
	0xBD: KeyMinus,
	0xBE: KeyPeriod,
	0xBF: KeySlash,
	0xC0: KeyGrave,
	0xDB: KeyLeftBracket,
	0xDC: KeyBackslash,
	0xDD: KeyRightBracket,
	0xDE: KeyQuote,
}

// FromWindowsVK translates a Windows virtual-key code.
func FromWindowsVK(vk uint32) (KeyCode, bool) {
	code, ok := windowsToKeyCode[vk]
	return code, ok
}

// ModifierFor returns the modifier a key contributes, or 0 when the key
// is not a modifier.
func ModifierFor(code KeyCode) Modifiers {
	switch code {
	case KeyShift, KeyRightShift:
		return ModShift
	case KeyControl, KeyRightControl:
		return ModControl
	case KeyOption, KeyRightOption:
		return ModOption
	case KeyCommand, KeyRightCommand:
		return ModCommand
	case KeyFunction:
		return ModFn
	}
	return 0
}
