package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"vidsheet/internal"
)

// previewCmd summarizes a single URL straight to the terminal, leaving
// the sheet alone.
var previewCmd = &cobra.Command{
	Use:   "preview [video URL]",
	Short: "Summarize one video URL without touching the sheet",
	Example: `  # Summarize a single video to the terminal
  vidsheet preview "https://www.youtube.com/watch?v=tAP1eZYEuKA"

  # Use a specific OpenAI model
  vidsheet preview "https://youtu.be/tAP1eZYEuKA" --model gpt-4o

  # Also copy the raw summary to the clipboard
  vidsheet preview "https://youtu.be/tAP1eZYEuKA" --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ApplyOpenAIFlags(cmd, config); err != nil {
			return err
		}
		if err := config.ValidateProviders(); err != nil {
			return err
		}

		url := args[0]
		if !internal.IsSupportedVideoURL(url) {
			return fmt.Errorf("%q is not a supported video URL (YouTube, X/Twitter, Vimeo, TikTok, Instagram, Facebook, LinkedIn, Reddit)", url)
		}

		app, err := internal.NewApp(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		summary, err := app.SummarizeURL(cmd.Context(), url)
		if err != nil {
			return err
		}

		if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
			if err := clipboard.WriteAll(summary); err != nil {
				return fmt.Errorf("copying summary to clipboard: %w", err)
			}
			fmt.Println("Summary copied to clipboard")
		}

		rendered, err := internal.RenderMarkdown(summary)
		if err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}

		fmt.Println(rendered)
		return nil
	},
}

func init() {
	internal.AddOpenAIFlags(previewCmd)
	previewCmd.Flags().Bool("copy", false, "Copy the raw summary to the clipboard")
	rootCmd.AddCommand(previewCmd)
}
