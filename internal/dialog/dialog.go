// Package dialog shows the modal dialogs the host needs before the tray is up.
package dialog

import (
	"errors"

	"github.com/ncruces/zenity"
)

const title = "kbtrackpad"

const permissionText = "kbtrackpad needs Accessibility access to read the keyboard and move the cursor.\n\n" +
	"Enable it in System Settings > Privacy & Security > Accessibility, then start kbtrackpad again."

// question is swapped out in tests.
var question = zenity.Question

// AskOpenSettings explains the missing permission and reports whether the
// user wants the settings pane opened. Closing the dialog counts as no.
func AskOpenSettings() (bool, error) {
	err := question(permissionText,
		zenity.Title(title),
		zenity.WarningIcon,
		zenity.OKLabel("Open Settings"),
		zenity.CancelLabel("Quit"),
	)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, zenity.ErrCanceled):
		return false, nil
	}
	return false, err
}

// ShowError shows a blocking error message.
func ShowError(message string) error {
	return zenity.Error(message, zenity.Title(title))
}
