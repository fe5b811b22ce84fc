package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig() *Config {
	return &Config{
		OpenAIAPIKey:      "sk-test",
		SupadataAPIKey:    "sd-test",
		GoogleCredentials: `{"type":"service_account"}`,
		SpreadsheetID:     "sheet-id",
	}
}

func TestValidateComplete(t *testing.T) {
	t.Parallel()

	require.NoError(t, fullConfig().Validate())
}

func TestValidateReportsAllMissing(t *testing.T) {
	t.Parallel()

	err := (&Config{}).Validate()
	require.Error(t, err)

	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, []string{
		"OPENAI_API_KEY",
		"SUPADATA_API_KEY",
		"GOOGLE_CREDENTIALS",
		"SPREADSHEET_ID",
	}, setupErr.Missing)
}

func TestValidateSingleMissing(t *testing.T) {
	t.Parallel()

	config := fullConfig()
	config.SpreadsheetID = ""

	err := config.Validate()
	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, []string{"SPREADSHEET_ID"}, setupErr.Missing)
	assert.Contains(t, err.Error(), "SPREADSHEET_ID")
}

func TestValidateProvidersIgnoresSheetSettings(t *testing.T) {
	t.Parallel()

	// Provider-only commands work without spreadsheet coordinates.
	config := &Config{OpenAIAPIKey: "sk-test", SupadataAPIKey: "sd-test"}
	require.NoError(t, config.ValidateProviders())

	err := (&Config{OpenAIAPIKey: "sk-test"}).ValidateProviders()
	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, []string{"SUPADATA_API_KEY"}, setupErr.Missing)
}
