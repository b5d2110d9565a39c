//go:build !darwin && !windows

package display

// Stub implementation for platforms without a display backend

func newProvider() (Provider, error) {
	return nil, ErrUnsupportedPlatform
}
