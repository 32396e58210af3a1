package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mlutz/kartei/internal/app"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command, startPractice bool) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:         st,
		Log:           newLogger(cmd),
		StartPractice: startPractice,
	})
}
