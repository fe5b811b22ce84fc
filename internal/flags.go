package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOpenAIFlags adds flags related to the language model
func AddOpenAIFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "", "OpenAI model to use for summaries")
	cmd.Flags().StringP("prompt", "p", "", "Custom instruction prompt (string or file path)")
}

// ApplyOpenAIFlags folds the --model and --prompt flags into config,
// validating the model either way.
func ApplyOpenAIFlags(cmd *cobra.Command, config *Config) error {
	modelFlag, _ := cmd.Flags().GetString("model")
	if modelFlag != "" {
		if err := ValidateModel(modelFlag); err != nil {
			return err
		}
		config.Model = modelFlag
	} else if err := ValidateModel(config.Model); err != nil {
		return fmt.Errorf("invalid model in config: %w", err)
	}

	promptFlag := cmd.Flags().Lookup("prompt")
	if promptFlag != nil && promptFlag.Changed {
		prompt, err := cmd.Flags().GetString("prompt")
		if err != nil {
			return fmt.Errorf("failed to get prompt flag: %w", err)
		}
		if prompt != "" {
			config.Prompt = prompt
		}
	}

	return nil
}

// HandleVerboseFlag processes the --verbose and --quiet flags to update config
func HandleVerboseFlag(cmd *cobra.Command, config *Config) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if verbose {
		config.Verbose = true
		config.LogLevel = "debug"
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		config.Quiet = true
	}

	return nil
}
