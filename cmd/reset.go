package cmd

import (
	"fmt"

	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logPath, err := resolveLogPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve events path: %w", err)
		}

		if !resetConfirmed {
			fmt.Fprintf(cmd.OutOrStdout(),
				"This deletes all learning history at %s.\nRe-run with --yes to confirm.\n", logPath)
			return nil
		}

		log, err := store.Open(logPath)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		if err := log.Reset(); err != nil {
			return fmt.Errorf("reset event log: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Event log deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Confirm deletion")
}
