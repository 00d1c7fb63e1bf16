package cmd

import (
	"fmt"
	"os"

	"github.com/pushpullleg/renaissance/internal/app"
	"github.com/pushpullleg/renaissance/internal/config"
	"github.com/pushpullleg/renaissance/internal/llm"
	"github.com/pushpullleg/renaissance/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads config, opens the event log, builds the LLM provider and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	opts := app.Options{Log: log, Config: cfg}

	if cfg.HasAnyKey() {
		provider, err := llm.NewProvider(ctx, cfg.LLMConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The tutor will answer with offline fallbacks.")
		} else {
			opts.Provider = provider
		}
	}

	return app.Run(opts)
}
