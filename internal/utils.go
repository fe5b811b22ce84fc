package internal

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// supportedModels are the chat models summaries may use.
var supportedModels = []string{"gpt-4o", "gpt-4o-mini", "o4-mini", "gpt-4.1-nano"}

// ValidateModel checks if the model is supported
func ValidateModel(model string) error {
	if slices.Contains(supportedModels, model) {
		return nil
	}
	return fmt.Errorf("unsupported model: %s (supported: %s)", model, strings.Join(supportedModels, ", "))
}
