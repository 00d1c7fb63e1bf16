package cmd

import (
	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "renaissance",
	Short: "Adaptive learning for business analytics",
	Long:  "Renaissance — terminal app with role-based roadmaps, an adaptive AI tutor and a learning dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("events", "", "Path to the events JSON log (overrides RENAISSANCE_EVENTS)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveLogPath returns the events path using the --events flag first,
// then the config (RENAISSANCE_EVENTS), then the default XDG path.
func resolveLogPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("events"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Events != "" {
		return cfg.Events, store.EnsureDir(cfg.Events)
	}
	return store.DefaultLogPath()
}
