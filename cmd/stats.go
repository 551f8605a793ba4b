package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snowin/snowin/internal/snowdata"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the latest session summary and trick log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		st := snap.Session.Stats
		fmt.Fprintf(out, "Duration   %s\n", snowdata.FormatDuration(st.DurationSeconds))
		fmt.Fprintf(out, "Distance   %s km\n", snowdata.FormatDistance(st.DistanceKm))
		fmt.Fprintf(out, "XP Earned  %s\n", snowdata.FormatXP(st.XPEarned))
		fmt.Fprintf(out, "Avg Speed  %s km/h\n", snowdata.FormatSpeed(st.AvgSpeedKmh))

		fmt.Fprintln(out, "\nTricks:")
		for _, t := range snap.Session.Tricks {
			fmt.Fprintf(out, "  %s  %-16s %-8s %s\n", t.Time, t.Name, snowdata.XPAward(t.XP), t.Outcome)
		}
		return nil
	},
}
