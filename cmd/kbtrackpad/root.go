package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kbtrackpad/internal/config"
	"kbtrackpad/internal/logging"
)

// cli carries the settings resolved before any subcommand runs.
type cli struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "kbtrackpad",
		Short: "Move the cursor with the keyboard",
		Long: `kbtrackpad maps every key of the main keyboard block to a point on screen.
Hold Fn, or Control+Option, and press a key to jump the cursor there.
The key is swallowed while trackpad mode is on; everything else types normally.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runCmd,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(c),
		newCheckCmd(c),
		newAutostartCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup loads .env files and config, then builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(config.DotEnvPaths()...); err != nil {
		return err
	}
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kbtrackpad %s\n", Version)
		},
	}
}
