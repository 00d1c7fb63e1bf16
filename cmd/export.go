package cmd

import (
	"fmt"

	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/export"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event log to a SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logPath, err := resolveLogPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve events path: %w", err)
		}
		log, err := store.Open(logPath)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}

		events, err := log.Load(ctx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}

		db, err := export.Open(ctx, exportOut)
		if err != nil {
			return fmt.Errorf("open export database: %w", err)
		}
		defer db.Close()

		n, err := export.Events(ctx, db, events)
		if err != nil {
			return fmt.Errorf("export events: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "renaissance.db", "SQLite file to write")
}
