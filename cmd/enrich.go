package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlutz/kartei/internal/card"
	"github.com/mlutz/kartei/internal/enrich"
	"github.com/mlutz/kartei/internal/llm"
	"github.com/mlutz/kartei/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [id]",
	Short: "Fill in card details with an LLM",
	Long: "Looks up translation, word type, grammar forms, and example sentences " +
		"for a card's front word. Only empty fields are filled; nothing you typed " +
		"yourself is overwritten.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if len(args) == 0 && !all {
			return fmt.Errorf("give a card ID, or --all to enrich every incomplete card")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		log := newLogger(cmd)

		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM API key configured; set KARTEI_ANTHROPIC_API_KEY, KARTEI_OPENAI_API_KEY, or KARTEI_GEMINI_API_KEY")
			}
			cfg = discovered
		}

		provider, err := llm.NewProvider(ctx, cfg, st.Events(), log)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}
		enricher := enrich.New(provider, enrich.DefaultConfig())

		var targets []card.Card
		if all {
			cards, err := st.Cards().List(ctx, store.CardFilter{})
			if err != nil {
				return err
			}
			for _, c := range cards {
				if c.Back == "" || c.Grammar == nil {
					targets = append(targets, c)
				}
			}
			if len(targets) == 0 {
				fmt.Println("All cards are already complete.")
				return nil
			}
		} else {
			c, err := findCard(ctx, st, args[0])
			if err != nil {
				return err
			}
			targets = []card.Card{c}
		}

		var failed int
		for _, c := range targets {
			enriched, err := enricher.Enrich(ctx, c, time.Now())
			if err != nil {
				log.WithError(err).WithField("card", shortID(c.ID)).Warn("enrichment failed")
				fmt.Printf("✗ %s: %v\n", c.Front, err)
				failed++
				continue
			}
			if err := st.Cards().SaveCard(ctx, enriched); err != nil {
				return fmt.Errorf("save %s: %w", shortID(c.ID), err)
			}
			fmt.Printf("✓ %s → %s\n", enriched.Front, enriched.Back)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d cards failed", failed, len(targets))
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().Bool("all", false, "Enrich every card with missing details")
}
