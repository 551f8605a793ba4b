package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/snowin/snowin/internal/config"
	"github.com/snowin/snowin/internal/viewstate"
)

var rootCmd = &cobra.Command{
	Use:   "snowin",
	Short: "Snowboarding companion for the terminal",
	Long:  "SnoWin: weather, resorts, session review, leaderboard and profile for snowboarders, in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data", "", "JSON snapshot file to show instead of the built-in data (overrides SNOWIN_DATA)")
	flags.String("log-file", "", "Write logs to this file (overrides SNOWIN_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides SNOWIN_LOG_LEVEL)")
	flags.String("tab", "", "Tab to open on start: home, session or profile (overrides SNOWIN_START_TAB)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
}

// resolveConfig loads the environment configuration and applies any flags
// set on the command line on top of it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile, _ = flags.GetString("data")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = level
	}
	if flags.Changed("tab") {
		v, _ := flags.GetString("tab")
		tab, err := viewstate.ParseTab(v)
		if err != nil {
			return nil, fmt.Errorf("--tab: %w", err)
		}
		cfg.StartTab = tab
	}
	return cfg, nil
}
