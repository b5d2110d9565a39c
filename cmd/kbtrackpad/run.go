package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kbtrackpad/internal/app"
	"kbtrackpad/internal/dialog"
	"kbtrackpad/internal/display"
	"kbtrackpad/internal/hotkey"
	"kbtrackpad/internal/input"
	"kbtrackpad/internal/logging"
	"kbtrackpad/internal/notify"
	"kbtrackpad/internal/osutils"
)

func newRunCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start trackpad mode (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runCmd,
	}
}

func (c *cli) runCmd(cmd *cobra.Command, _ []string) error {
	displays, err := display.NewProvider()
	if err != nil {
		return err
	}

	logger := c.logger
	notifier := notify.New(c.cfg.Notifications, logging.Component(logger, "notify"))
	a := app.New(c.cfg, app.Deps{
		Displays:    displays,
		Interceptor: input.NewInterceptor(logging.Component(logger, "input")),
		Warper:      input.NewWarper(),
		Notifier:    notifier,
		NewHotkey: func(onPress func()) app.Hotkey {
			return hotkey.New(onPress, logging.Component(logger, "hotkey"))
		},
		Trusted:         osutils.AccessibilityTrusted,
		AskOpenSettings: dialog.AskOpenSettings,
		OpenSettings:    osutils.OpenAccessibilitySettings,
		NewSurface: func(a *app.App) app.Surface {
			return newTraySurface(a, notifier, logging.Component(logger, "tray"))
		},
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("kbtrackpad starting", "version", Version)
	if !c.cfg.Tray {
		// Without the tray nothing else drives the main loop the pause
		// hotkey needs.
		hotkey.RunOnMainThread(func() { err = a.Run(ctx) })
		return err
	}
	err = a.Run(ctx)
	if err != nil && !errors.Is(err, app.ErrNotTrusted) {
		// Launched at login nobody sees stderr.
		if dErr := dialog.ShowError(err.Error()); dErr != nil {
			logger.Warn("error dialog failed", "error", dErr)
		}
	}
	return err
}
