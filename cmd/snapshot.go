package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snowin/snowin/internal/snowdata"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the data the screens would show",
	Long: `Print the active data snapshot without starting the TUI.

The snapshot comes from --data / SNOWIN_DATA when set, otherwise the
built-in data is used. Use --format json to get a file that can be edited
and passed back with --data.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("format", "text", "Output format: text or json")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q: must be text or json", format)
	}

	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	writeSnapshotText(out, snap)
	return nil
}

// loadSnapshot fetches the snapshot from the configured provider.
func loadSnapshot(cmd *cobra.Command) (*snowdata.Snapshot, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	snap, err := snowdata.NewProvider(cfg.DataFile).Snapshot(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

func writeSnapshotText(w io.Writer, s *snowdata.Snapshot) {
	r := s.Rider
	fmt.Fprintf(w, "%s  Level %d  %s XP  %d sessions  %d badges\n\n",
		r.Name, r.Level, snowdata.FormatXP(r.TotalXP), r.Sessions, r.Badges)

	fmt.Fprintf(w, "Weather: %s %s %s\n", s.Weather.Location, snowdata.FormatTemperature(s.Weather.TemperatureC), s.Weather.Sky)
	for _, c := range s.Weather.Conditions {
		fmt.Fprintf(w, "  %-12s %s\n", c.Title, c.Value)
	}

	fmt.Fprintf(w, "\nResorts: %s\n", strings.Join(s.ResortNames(), ", "))

	fmt.Fprintln(w, "\nEquipment:")
	for _, e := range s.Equipment {
		battery := "-"
		if e.Battery != nil {
			battery = fmt.Sprintf("%d%%", *e.Battery)
		}
		fmt.Fprintf(w, "  %-20s %-16s %s\n", e.Name, e.Status, battery)
	}

	fmt.Fprintln(w, "\nNews:")
	for _, n := range s.News {
		fmt.Fprintf(w, "  %s (%s)\n", n.Title, n.Age)
	}

	fmt.Fprintln(w, "\nFriends ranking:")
	for _, f := range s.Leaderboard.Friends {
		fmt.Fprintf(w, "  #%d %-14s %s XP\n", f.Rank, f.Name, snowdata.FormatXP(f.XP))
	}

	d := s.Profile.Device
	fmt.Fprintf(w, "\nDevice: %s  battery %d%%  firmware %s\n", d.Name, d.Battery, d.Firmware)
}
