package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// NewStatsCommand creates the sales statistics command.
func NewStatsCommand(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show sales totals for a date range (defaults to today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			report, err := app.Stats.Report(cmd.Context(), start, end)
			if err != nil {
				return renderError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sales:         %d\n", report.Count)
			fmt.Fprintf(out, "revenue:       %.2f\n", report.TotalValue)
			fmt.Fprintf(out, "daily average: %.2f\n", report.DailyAverage)
			fmt.Fprintf(out, "growth:        %.1f%% (previous window %.2f)\n", report.GrowthRate, report.PreviousTotal)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD), inclusive")

	return cmd
}

// parseRange turns the date flags into an inclusive [start, end] window.
// Missing flags default to today.
func parseRange(from, to string) (time.Time, time.Time, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	start := today
	if from != "" {
		parsed, err := time.ParseInLocation(dateLayout, from, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date %q", from)
		}
		start = parsed
	}

	endDay := start
	if to != "" {
		parsed, err := time.ParseInLocation(dateLayout, to, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date %q", to)
		}
		endDay = parsed
	}

	end := endDay.Add(24*time.Hour - time.Second)
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s", endDay.Format(dateLayout), start.Format(dateLayout))
	}
	return start, end, nil
}
