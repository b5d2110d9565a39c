//go:build !darwin && !windows

package hotkey

func registerPlatform(Combo) (registration, error) {
	return nil, ErrUnsupportedPlatform
}

// RunOnMainThread calls fn directly.
func RunOnMainThread(fn func()) { fn() }
