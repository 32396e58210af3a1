package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/store"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage the card collection",
}

var cardsAddCmd = &cobra.Command{
	Use:   "add <front> [back]",
	Short: "Add a new card",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		settings, err := st.Settings().Load(ctx)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		front := args[0]
		back := ""
		if len(args) == 2 {
			back = args[1]
		}

		lang, _ := cmd.Flags().GetString("lang")
		if lang == "" {
			lang = settings.ActiveLanguage
		}

		c := card.New(front, back, lang, time.Now())
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			c.Tags = card.NormalizeTags(tags)
		}
		c.Notes, _ = cmd.Flags().GetString("notes")
		c.IconRef, _ = cmd.Flags().GetString("icon")

		if err := st.Cards().Create(ctx, c); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", c.Front, shortID(c.ID))
		return nil
	},
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		filter := store.CardFilter{}
		filter.Language, _ = cmd.Flags().GetString("lang")
		filter.DueOnly, _ = cmd.Flags().GetBool("due")
		filter.FavoritesOnly, _ = cmd.Flags().GetBool("favorites")
		filter.IncludeArchived, _ = cmd.Flags().GetBool("archived")
		filter.Tag, _ = cmd.Flags().GetString("tag")

		cards, err := st.Cards().List(ctx, filter)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println("No cards found.")
			return nil
		}

		fmt.Printf("%-9s  %-24s  %-24s  %-9s  %s\n", "ID", "Front", "Back", "Mastery", "Tags")
		fmt.Println(strings.Repeat("─", 80))
		for _, c := range cards {
			marker := " "
			if c.Favorite {
				marker = "★"
			}
			fmt.Printf("%-9s  %-24s  %-24s  %-9s  %s %s\n",
				shortID(c.ID),
				clip(c.Front, 24),
				clip(c.Back, 24),
				c.OverallMastery(),
				strings.Join(c.Tags, ","),
				marker)
		}
		return nil
	},
}

var cardsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one card in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		c, err := findCard(ctx, st, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:        %s\n", c.ID)
		fmt.Printf("Front:     %s\n", c.Front)
		fmt.Printf("Back:      %s\n", c.Back)
		fmt.Printf("Language:  %s\n", c.Language)
		if c.IconRef != "" {
			fmt.Printf("Icon:      %s\n", c.IconRef)
		}
		if len(c.Tags) > 0 {
			fmt.Printf("Tags:      %s\n", strings.Join(c.Tags, ", "))
		}
		if c.Notes != "" {
			fmt.Printf("Notes:     %s\n", c.Notes)
		}
		for _, ex := range c.Examples {
			fmt.Printf("Example:   %s\n", ex)
		}
		printGrammar(c)
		fmt.Printf("Mastery:   %s\n", c.OverallMastery())
		fmt.Printf("Reviews:   %d (%d correct)\n", c.ReviewCount, c.CorrectCount)

		if len(c.Scores) > 0 {
			fmt.Println("\nPer exercise:")
			for t, s := range c.Scores {
				if s.TotalAttempts() == 0 {
					continue
				}
				due := "—"
				if s.NextReview != nil {
					due = s.NextReview.Format("2006-01-02")
				}
				fmt.Printf("  %-22s  chain %d (best %d)  %3.0f%%  due %s\n",
					t.DisplayName(), s.CurrentChain, s.BestChain, s.SuccessRate(), due)
			}
		}
		return nil
	},
}

var cardsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a card's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		c, err := findCard(ctx, st, args[0])
		if err != nil {
			return err
		}

		now := time.Now()
		if front, _ := cmd.Flags().GetString("front"); front != "" {
			c = c.WithContent(front, c.Back, now)
		}
		if back, _ := cmd.Flags().GetString("back"); back != "" {
			c = c.WithContent(c.Front, back, now)
		}
		if cmd.Flags().Changed("notes") {
			c.Notes, _ = cmd.Flags().GetString("notes")
			c.UpdatedAt = now
		}
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			c = c.WithTags(tags, now)
		}

		if err := st.Cards().SaveCard(ctx, c); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", shortID(c.ID))
		return nil
	},
}

var cardsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a card permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		c, err := findCard(ctx, st, args[0])
		if err != nil {
			return err
		}
		if err := st.Cards().Delete(ctx, c.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s (%s)\n", c.Front, shortID(c.ID))
		return nil
	},
}

var cardsArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a card (kept, but excluded from practice)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleCard(cmd, args[0], func(c card.Card, now time.Time) card.Card {
			undo, _ := cmd.Flags().GetBool("undo")
			return c.WithArchived(!undo, now)
		})
	},
}

var cardsFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a card's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleCard(cmd, args[0], func(c card.Card, now time.Time) card.Card {
			return c.WithFavorite(!c.Favorite, now)
		})
	},
}

func toggleCard(cmd *cobra.Command, id string, apply func(card.Card, time.Time) card.Card) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	c, err := findCard(ctx, st, id)
	if err != nil {
		return err
	}

	c = apply(c, time.Now())
	if err := st.Cards().SaveCard(ctx, c); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", shortID(c.ID))
	return nil
}

// findCard resolves a full ID or unique prefix to a card.
func findCard(ctx context.Context, st *store.Store, id string) (card.Card, error) {
	if c, err := st.Cards().Get(ctx, id); err == nil {
		return c, nil
	}

	cards, err := st.Cards().List(ctx, store.CardFilter{IncludeArchived: true})
	if err != nil {
		return card.Card{}, err
	}

	var matches []card.Card
	for _, c := range cards {
		if strings.HasPrefix(c.ID, id) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return card.Card{}, fmt.Errorf("no card matches %q", id)
	case 1:
		return matches[0], nil
	default:
		return card.Card{}, fmt.Errorf("%q is ambiguous (%d matches)", id, len(matches))
	}
}

func printGrammar(c card.Card) {
	switch g := c.Grammar.(type) {
	case card.NounGrammar:
		fmt.Printf("Gender:    %s\n", g.Gender)
		if g.Plural != "" {
			fmt.Printf("Plural:    %s\n", g.Plural)
		}
	case card.VerbGrammar:
		if g.PresentThird != "" {
			fmt.Printf("Present:   er/sie/es %s\n", g.PresentThird)
		}
		if g.PastSimple != "" {
			fmt.Printf("Past:      %s\n", g.PastSimple)
		}
		if g.PastParticiple != "" {
			fmt.Printf("Perfect:   %s\n", g.PastParticiple)
		}
	case card.AdjectiveGrammar:
		if g.Comparative != "" {
			fmt.Printf("Compar.:   %s / %s\n", g.Comparative, g.Superlative)
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func init() {
	cardsAddCmd.Flags().String("lang", "", "Language code (defaults to the active language)")
	cardsAddCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	cardsAddCmd.Flags().String("notes", "", "Usage notes")
	cardsAddCmd.Flags().String("icon", "", "Icon (emoji)")

	cardsListCmd.Flags().String("lang", "", "Filter by language")
	cardsListCmd.Flags().Bool("due", false, "Only cards due for review")
	cardsListCmd.Flags().Bool("favorites", false, "Only favorites")
	cardsListCmd.Flags().Bool("archived", false, "Include archived cards")
	cardsListCmd.Flags().String("tag", "", "Filter by tag")

	cardsEditCmd.Flags().String("front", "", "New front text")
	cardsEditCmd.Flags().String("back", "", "New back text")
	cardsEditCmd.Flags().String("notes", "", "New notes")
	cardsEditCmd.Flags().StringSlice("tags", nil, "Replacement tags")

	cardsArchiveCmd.Flags().Bool("undo", false, "Unarchive instead")

	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsShowCmd)
	cardsCmd.AddCommand(cardsEditCmd)
	cardsCmd.AddCommand(cardsRmCmd)
	cardsCmd.AddCommand(cardsArchiveCmd)
	cardsCmd.AddCommand(cardsFavoriteCmd)
}
