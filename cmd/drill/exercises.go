package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hperssn/drill/internal/domain"
)

var categoryFlag string

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List catalog exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(false)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tDURATION\tPOINTS")
		for _, ex := range a.catalog.List(domain.Category(categoryFlag)) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				ex.ID, ex.Title, ex.Category, ex.Difficulty,
				domain.FormatClock(ex.DurationSeconds), ex.Points)
		}
		return w.Flush()
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&categoryFlag, "category", "", "Only list one category (warmup, strength, agility, skill, cooldown)")
}
