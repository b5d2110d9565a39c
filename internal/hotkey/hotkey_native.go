//go:build darwin || windows

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
)

// keyMap maps normalized key names to library keys. modifierMap lives in the
// per-OS files.
var keyMap = map[string]hotkey.Key{
	"SPACE":  hotkey.KeySpace,
	"RETURN": hotkey.KeyReturn,
	"ESCAPE": hotkey.KeyEscape,
	"DELETE": hotkey.KeyDelete,
	"TAB":    hotkey.KeyTab,
	"LEFT":   hotkey.KeyLeft,
	"RIGHT":  hotkey.KeyRight,
	"UP":     hotkey.KeyUp,
	"DOWN":   hotkey.KeyDown,

	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}

// nativeHotkey forwards library keydown events as plain signals.
type nativeHotkey struct {
	hk   *hotkey.Hotkey
	out  chan struct{}
	done chan struct{}
}

func registerPlatform(combo Combo) (registration, error) {
	mods := make([]hotkey.Modifier, 0, len(combo.Modifiers))
	for _, m := range combo.Modifiers {
		mod, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("%w: modifier %s", ErrUnsupportedPlatform, m)
		}
		mods = append(mods, mod)
	}
	key, ok := keyMap[combo.Key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, combo.Key)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	n := &nativeHotkey{hk: hk, out: make(chan struct{}, 1), done: make(chan struct{})}
	go n.forward()
	return n, nil
}

func (n *nativeHotkey) forward() {
	for {
		select {
		case <-n.done:
			return
		case _, ok := <-n.hk.Keydown():
			if !ok {
				return
			}
			select {
			case n.out <- struct{}{}:
			default:
			}
		}
	}
}

func (n *nativeHotkey) Keydown() <-chan struct{} { return n.out }

func (n *nativeHotkey) Unregister() error {
	close(n.done)
	return n.hk.Unregister()
}

// RunOnMainThread runs fn while the main thread services hotkey events. It
// is needed when nothing else (such as the tray) owns the main loop.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}
