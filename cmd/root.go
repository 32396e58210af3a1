// Package cmd defines the kartei command-line interface.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlutz/kartei/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kartei",
	Short: "Terminal flashcards for language learning",
	Long:  "Kartei — spaced-repetition vocabulary flashcards in the terminal, with LLM-assisted card creation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KARTEI_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KARTEI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newLogger builds the CLI logger, debug-level with --verbose.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
