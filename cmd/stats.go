package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		cards, err := st.Cards().List(ctx, store.CardFilter{})
		if err != nil {
			return err
		}

		now := time.Now()
		due := 0
		byMastery := map[card.MasteryLevel]int{}
		for _, c := range cards {
			if len(c.DueExerciseTypes(now)) > 0 {
				due++
			}
			byMastery[c.OverallMastery()]++
		}

		totals, err := st.Events().Totals(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Cards:    %d (%d due)\n", len(cards), due)
		fmt.Printf("Reviews:  %d", totals.Total)
		if totals.Total > 0 {
			fmt.Printf(" (%.0f%% correct)", 100*float64(totals.Correct)/float64(totals.Total))
		}
		fmt.Println()

		levels := []card.MasteryLevel{
			card.MasteryNew,
			card.MasteryDifficult,
			card.MasteryLearning,
			card.MasteryGood,
			card.MasteryMastered,
		}
		fmt.Println("\nMastery:")
		for _, lvl := range levels {
			if n := byMastery[lvl]; n > 0 {
				fmt.Printf("  %-10s %d\n", lvl, n)
			}
		}
		return nil
	},
}
