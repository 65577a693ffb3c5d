package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hperssn/drill/internal/domain"
	"github.com/hperssn/drill/internal/storage"
)

var (
	historyJSON  bool
	historyToday bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show completed exercises and points",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print as JSON")
	historyCmd.Flags().BoolVar(&historyToday, "today", false, "Only show today's completions")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	dayStart := storage.StartOfDay(time.Now())

	var records []domain.CompletionRecord
	if historyToday {
		records, err = a.repo.CompletionsSince(ctx, a.userID, dayStart)
	} else {
		records, err = a.repo.CompletionsByUser(ctx, a.userID)
	}
	if err != nil {
		return fmt.Errorf("listing completions: %w", err)
	}

	stats, err := a.repo.Stats(ctx, a.userID, dayStart)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			UserID      string                    `json:"userId"`
			Stats       *storage.Stats            `json:"stats"`
			Completions []domain.CompletionRecord `json:"completions"`
		}{a.userID, stats, records})
	}

	fmt.Fprintf(out, "Player %s: %d points from %d exercises (%d today, +%d points)\n\n",
		a.userID, stats.TotalPoints, stats.TotalCompletions, stats.CompletionsToday, stats.PointsToday)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPLETED\tEXERCISE\tPOINTS")
	for _, r := range records {
		title := r.ExerciseID
		if ex, err := a.catalog.Lookup(r.ExerciseID); err == nil {
			title = ex.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.CompletedAt.Local().Format("2006-01-02 15:04"), title, r.PointsEarned)
	}
	return w.Flush()
}
