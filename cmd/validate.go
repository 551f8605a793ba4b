package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snowin/snowin/internal/snowdata"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON snapshot file",
	Long:  "Validate a snapshot file against the snapshot schema and consistency rules, reporting the first problem found.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot file: %w", err)
		}
		if _, err := snowdata.Parse(raw); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}
