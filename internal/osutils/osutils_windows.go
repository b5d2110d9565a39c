//go:build windows

package osutils

import (
	"golang.org/x/sys/windows"
)

// AccessibilityTrusted is always true: low-level keyboard hooks need no
// grant. Keys typed into elevated windows stay invisible to a non-elevated
// process, which Check reports through Elevated.
func AccessibilityTrusted(bool) bool {
	return true
}

// OpenAccessibilitySettings has nothing to open on Windows.
func OpenAccessibilitySettings() error {
	return nil
}

// IsAdmin checks if the current process has administrative privileges
func IsAdmin() bool {
	var token windows.Token
	h, _ := windows.GetCurrentProcess()
	err := windows.OpenProcessToken(h, windows.TOKEN_QUERY, &token)
	if err != nil {
		return false
	}
	defer token.Close()

	var sid *windows.SID
	err = windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	member, err := token.IsMember(sid)
	if err != nil {
		return false
	}
	return member
}
