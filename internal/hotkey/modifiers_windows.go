//go:build windows

package hotkey

import "golang.design/x/hotkey"

// Cmd maps to the Windows key.
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModCmd:   hotkey.ModWin,
}
