package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pushpullleg/renaissance/internal/analytics"
	"github.com/pushpullleg/renaissance/internal/assessment"
	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		events := log.LoadAll(cmd.Context())
		snap := analytics.Summarize(events, cfg.User.ID, time.Now())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User:           %s (%s)\n", cfg.User.Name, cfg.User.ID)
		fmt.Fprintf(out, "Level:          L%d %s\n", snap.Level, assessment.LevelLabels[snap.Level])
		fmt.Fprintf(out, "Latest score:   %.0f%%\n", snap.ScorePct)
		fmt.Fprintf(out, "Questions:      %d (%d correct, %.0f%% accuracy)\n",
			snap.QuestionCount, snap.CorrectCount, snap.AccuracyPct)
		fmt.Fprintf(out, "Sessions:       %d\n", snap.SessionCount)
		fmt.Fprintf(out, "Active minutes: %d\n", snap.ActiveMinutes)
		fmt.Fprintf(out, "Streak:         %d day(s)\n", snap.StreakDays)
		if snap.PrimaryFocus != "" {
			fmt.Fprintf(out, "Focus next:     %s\n", snap.PrimaryFocus)
		}
		if len(snap.SecondaryFocus) > 0 {
			fmt.Fprintf(out, "Also explore:   %s\n", strings.Join(snap.SecondaryFocus, ", "))
		}
		if len(snap.RecentTopics) > 0 {
			fmt.Fprintf(out, "Recent topics:  %s\n", strings.Join(snap.RecentTopics, ", "))
		}
		return nil
	},
}
