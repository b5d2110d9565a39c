package input

import "errors"

var (
	// ErrTapCreate is returned when the OS refuses to install the keyboard
	// hook, typically because accessibility permission is missing.
	ErrTapCreate = errors.New("input: failed to install keyboard interception")
	// ErrUnsupportedPlatform is returned on platforms without a backend.
	ErrUnsupportedPlatform = errors.New("input: platform not supported")
	// ErrAlreadyRunning is returned by Start on a running interceptor.
	ErrAlreadyRunning = errors.New("input: interceptor already running")
	// ErrWarp wraps failures reported by the cursor placement call.
	ErrWarp = errors.New("input: cursor warp failed")
)
