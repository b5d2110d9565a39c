package main

import (
	"log/slog"

	"kbtrackpad/internal/app"
	"kbtrackpad/internal/autostart"
	"kbtrackpad/internal/notify"
	"kbtrackpad/internal/tray"
)

// traySurface shows the app in the menu bar.
type traySurface struct {
	*tray.Tray
	pauseItem int
}

func newTraySurface(a *app.App, n *notify.Notifier, logger *slog.Logger) *traySurface {
	t := tray.New("kbtrackpad")
	s := &traySurface{Tray: t}

	s.pauseItem = t.AddCheckbox("Pause", a.Paused(), func(checked bool) {
		a.SetPaused(checked)
	})

	if login, err := autostart.New(); err != nil {
		logger.Warn("launch at login unavailable", "error", err)
	} else {
		t.AddCheckbox("Launch at Login", login.IsEnabled(), func(checked bool) {
			var err error
			if checked {
				err = login.Enable()
			} else {
				err = login.Disable()
			}
			switch {
			case err != nil:
				logger.Warn("launch at login change failed", "enable", checked, "error", err)
				n.Error("Could not change Launch at Login.")
			case checked:
				n.Info("kbtrackpad will start at login.")
			default:
				n.Info("kbtrackpad will no longer start at login.")
			}
		})
	}

	t.AddSeparator()
	t.AddMenuItem("Quit", func() {
		t.Stop()
	})
	return s
}

func (s *traySurface) SetPaused(paused bool) {
	s.SetItemChecked(s.pauseItem, paused)
}
