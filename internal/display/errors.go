package display

import "errors"

var (
	// ErrUnsupportedPlatform is returned when running on an unsupported OS
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNoDisplays is returned when the platform reports no usable display,
	// not even a primary one
	ErrNoDisplays = errors.New("no displays available")
)
