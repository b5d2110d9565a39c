// Package osutils wraps the OS permission checks the interceptor depends on.
package osutils

import "errors"

// ErrUnsupportedPlatform is returned where a helper has no implementation.
var ErrUnsupportedPlatform = errors.New("osutils: platform not supported")

// Permission summarizes what the process is allowed to do.
type Permission struct {
	// Trusted is true when keyboard interception may be installed.
	Trusted bool
	// Elevated is true when the process runs with administrator rights.
	Elevated bool
}

// Check reports the current permission state without prompting.
func Check() Permission {
	return Permission{
		Trusted:  AccessibilityTrusted(false),
		Elevated: IsAdmin(),
	}
}
