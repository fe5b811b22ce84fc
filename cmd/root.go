package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vidsheet/internal"
)

var (
	config *internal.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vidsheet",
	Short: "Summarize video links from a Google Sheet with AI",
	Long: `Vidsheet is a batch pipeline meant for cron-style invocation.

It scans a Google Sheet for rows holding unprocessed video URLs
(column A, empty status in column C), fetches a transcript for each
via the Supadata API, summarizes the transcript with an OpenAI model,
and writes the summary (column B) and a status marker (column C) back
to the row. One invocation processes the whole worklist sequentially
and exits.`,
	Example: `  # Process all pending rows once (e.g. from cron)
  vidsheet

  # Use a specific OpenAI model
  vidsheet --model gpt-4o

  # Use a custom instruction prompt
  vidsheet --prompt ./prompt.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.HandleVerboseFlag(cmd, config); err != nil {
			return err
		}
		logger = internal.NewLogger(config.LogLevel, os.Stderr)
		return nil
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ApplyOpenAIFlags(cmd, config); err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			logger.Error().Err(err).Msg("fatal setup error")
			return err
		}

		app, err := internal.NewApp(cmd.Context(), config, logger)
		if err != nil {
			logger.Error().Err(err).Msg("fatal setup error")
			return err
		}

		return app.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize configuration with Viper
	config = internal.InitConfig()
	logger = internal.NewLogger(config.LogLevel, os.Stderr)

	// Ensure XDG directories exist
	if err := internal.EnsureDirs(config.ConfigDir, config.DataDir, config.CacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating XDG directories: %v\n", err)
		os.Exit(1)
	}

	// Ensure default config and prompt exist in the XDG config directory
	if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default config: %v\n", err)
	}
	if err := internal.EnsureDefaultPrompt(config.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to ensure default prompt: %v\n", err)
	}

	// Interrupts cancel the context; the current record finishes the
	// write it is in, following writes fail fast on the dead context.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn().Msg("received interrupt signal, shutting down")
		cancel()
	}()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	internal.AddOpenAIFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output (useful for cron)")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}
