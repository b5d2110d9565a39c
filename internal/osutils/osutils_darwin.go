//go:build darwin

package osutils

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>

static Boolean axTrusted(Boolean prompt) {
	const void *keys[] = { kAXTrustedCheckOptionPrompt };
	const void *values[] = { prompt ? kCFBooleanTrue : kCFBooleanFalse };
	CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
	                                             &kCFTypeDictionaryKeyCallBacks,
	                                             &kCFTypeDictionaryValueCallBacks);
	Boolean trusted = AXIsProcessTrustedWithOptions(options);
	CFRelease(options);
	return trusted;
}
*/
import "C"

import (
	"fmt"
	"os"
	"os/exec"
)

const accessibilityPane = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"

// AccessibilityTrusted reports whether the process may install an event tap.
// With prompt set, macOS shows its own permission request when untrusted.
func AccessibilityTrusted(prompt bool) bool {
	p := C.Boolean(0)
	if prompt {
		p = C.Boolean(1)
	}
	return C.axTrusted(p) != C.Boolean(0)
}

// OpenAccessibilitySettings opens the Privacy > Accessibility pane.
func OpenAccessibilitySettings() error {
	if err := exec.Command("open", accessibilityPane).Run(); err != nil {
		return fmt.Errorf("open accessibility settings: %w", err)
	}
	return nil
}

// IsAdmin reports whether the process runs as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}
