package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor statistics from the analytics database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Page views:      %d\n", stats.TotalVisitors)
		fmt.Fprintf(out, "Unique visitors: %d\n", stats.UniqueVisitors)
		fmt.Fprintf(out, "Today:           %d\n", stats.VisitorsToday)
		fmt.Fprintf(out, "This week:       %d\n", stats.VisitorsThisWeek)
		fmt.Fprintf(out, "Lightbox views:  %d\n", stats.TotalOpens)
		if len(stats.TopItems) > 0 {
			fmt.Fprintln(out, "\nMost viewed:")
			for _, item := range stats.TopItems {
				fmt.Fprintf(out, "  %-12s %-28s %d\n", item.Widget, item.ItemKey, item.Opens)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
