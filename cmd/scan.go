package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidsheet/internal"
)

// scanCmd lists the rows a run would process, without touching any of them.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List pending rows without processing them",
	Example: `  # Show which sheet rows the next run would pick up
  vidsheet scan`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(); err != nil {
			return err
		}

		app, err := internal.NewApp(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		entries, err := app.PendingRecords(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No pending videos.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("row %d: %s\n", entry.Row, entry.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
