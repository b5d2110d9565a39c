package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kbtrackpad/internal/autostart"
)

func newAutostartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage launching kbtrackpad at login",
	}

	action := func(use, short string, fn func(*autostart.Manager) error, done string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := autostart.New()
				if err != nil {
					return err
				}
				if err := fn(m); err != nil {
					return err
				}
				c.logger.Info(done, "label", autostart.Label)
				return nil
			},
		}
	}

	cmd.AddCommand(
		action("enable", "Start kbtrackpad at login", (*autostart.Manager).Enable, "autostart enabled"),
		action("disable", "Stop starting kbtrackpad at login", (*autostart.Manager).Disable, "autostart disabled"),
		&cobra.Command{
			Use:   "status",
			Short: "Report whether kbtrackpad starts at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := autostart.New()
				if err != nil {
					return err
				}
				state := "disabled"
				if m.IsEnabled() {
					state = "enabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "autostart %s\n", state)
				return nil
			},
		},
	)
	return cmd
}
