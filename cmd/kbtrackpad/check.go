package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/osutils"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print permission state and display geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			perm := osutils.Check()
			fmt.Fprintf(out, "accessibility trusted: %t\n", perm.Trusted)
			fmt.Fprintf(out, "elevated:              %t\n", perm.Elevated)

			provider, err := display.NewProvider()
			if err != nil {
				return err
			}
			displays, err := provider.Active()
			if err != nil {
				return err
			}
			for _, d := range displays {
				fmt.Fprintf(out, "display %d: %s\n", d.ID, d.Bounds.String())
			}
			geometry, err := display.Unified(provider)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "unified geometry:      %s\n", geometry.String())

			if !perm.Trusted {
				c.logger.Warn("grant Accessibility access before running kbtrackpad")
			}
			return nil
		},
	}
}
