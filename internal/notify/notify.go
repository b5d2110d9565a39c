// Package notify shows desktop notifications.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

const appName = "kbtrackpad"

// Notifier sends desktop notifications when enabled.
type Notifier struct {
	enabled bool
	logger  *slog.Logger
	send    func(title, message string, icon any) error
}

// New creates a Notifier.
func New(enabled bool, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{enabled: enabled, logger: logger, send: beeep.Notify}
}

// Paused tells the user routing was switched off or back on.
func (n *Notifier) Paused(paused bool) {
	if paused {
		n.notify("Paused", "Keys are no longer turned into cursor jumps.")
		return
	}
	n.notify("Resumed", "Hold Fn or Control+Option to jump the cursor.")
}

// Error reports a failure the user needs to act on.
func (n *Notifier) Error(msg string) {
	n.notify("Error", msg)
}

// Info shows a plain message.
func (n *Notifier) Info(msg string) {
	n.notify("", msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	full := appName
	if title != "" {
		full = appName + ": " + title
	}
	// Notification failures are not fatal.
	if err := n.send(full, message, ""); err != nil {
		n.logger.Debug("notification failed", "title", full, "error", err)
	}
}
