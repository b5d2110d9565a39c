//go:build !darwin && !windows

package osutils

import "os"

// AccessibilityTrusted is false: no interception backend exists here.
func AccessibilityTrusted(bool) bool {
	return false
}

func OpenAccessibilitySettings() error {
	return ErrUnsupportedPlatform
}

// IsAdmin reports whether the process runs as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}
