package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/snowin/snowin/internal/app"
	"github.com/snowin/snowin/internal/logging"
	"github.com/snowin/snowin/internal/snowdata"
)

// runApp resolves configuration, sets up logging and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	_, closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	provider := snowdata.NewProvider(cfg.DataFile)
	slog.Info("starting snowin", "version", version, "source", provider.Name(), "tab", cfg.StartTab.String())

	return app.Run(cmd.Context(), app.Options{
		Provider: provider,
		StartTab: cfg.StartTab,
	})
}
