package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings.
type Config struct {
	// User configurable settings
	Model          string
	Prompt         string
	SummaryTimeout time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	Verbose        bool
	Quiet          bool

	// Credentials and store coordinates (environment only, never in config.toml)
	OpenAIAPIKey      string
	SupadataAPIKey    string
	SupadataBaseURL   string
	GoogleCredentials string
	SpreadsheetID     string
	WorksheetName     string

	// Fixed XDG paths (not configurable)
	ConfigDir string
	DataDir   string
	CacheDir  string
}

//go:embed config.toml prompt.txt
var defaultFS embed.FS

// ensureDefaultFile checks if a file exists in the specified directory
// and creates it from the embedded default if it doesn't exist
func ensureDefaultFile(configDir, embedFilename, description string) error {
	filePath := filepath.Join(configDir, embedFilename)

	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile(embedFilename)
	if err != nil {
		return fmt.Errorf("reading embedded default %s: %w", description, err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default %s: %w", description, err)
	}

	return nil
}

// EnsureDefaultConfig creates config.toml in the XDG config directory
// from the embedded default if it is missing.
func EnsureDefaultConfig(configDir string) error {
	return ensureDefaultFile(configDir, "config.toml", "configuration")
}

// EnsureDefaultPrompt creates prompt.txt in the XDG config directory
// from the embedded default if it is missing.
func EnsureDefaultPrompt(configDir string) error {
	return ensureDefaultFile(configDir, "prompt.txt", "prompt")
}

// InitConfig initializes Viper and loads configuration
func InitConfig() *Config {
	// XDG standard directories
	configDir := filepath.Join(xdg.ConfigHome, "vidsheet")
	dataDir := filepath.Join(xdg.DataHome, "vidsheet")
	cacheDir := filepath.Join(xdg.CacheHome, "vidsheet")

	v := viper.New()

	// Defaults for configurable settings
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("prompt", "") // if empty will use prompt.txt from the config dir
	v.SetDefault("summary_timeout", 2*time.Minute)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("worksheet_name", "Sheet1")
	v.SetDefault("supadata_base_url", "https://api.supadata.ai/v1")

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("VIDSHEET")
	v.AutomaticEnv()

	// Credentials and store coordinates come from well-known env vars
	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("supadata_api_key", "SUPADATA_API_KEY")
	_ = v.BindEnv("google_credentials", "GOOGLE_CREDENTIALS")
	_ = v.BindEnv("spreadsheet_id", "SPREADSHEET_ID")
	_ = v.BindEnv("worksheet_name", "WORKSHEET_NAME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	return &Config{
		Model:          v.GetString("model"),
		Prompt:         v.GetString("prompt"),
		SummaryTimeout: v.GetDuration("summary_timeout"),
		RequestTimeout: v.GetDuration("request_timeout"),
		LogLevel:       v.GetString("log_level"),
		Verbose:        v.GetBool("verbose"),
		Quiet:          v.GetBool("quiet"),

		OpenAIAPIKey:      v.GetString("openai_api_key"),
		SupadataAPIKey:    v.GetString("supadata_api_key"),
		SupadataBaseURL:   v.GetString("supadata_base_url"),
		GoogleCredentials: v.GetString("google_credentials"),
		SpreadsheetID:     v.GetString("spreadsheet_id"),
		WorksheetName:     v.GetString("worksheet_name"),

		ConfigDir: configDir,
		DataDir:   dataDir,
		CacheDir:  cacheDir,
	}
}

// Validate checks everything a full pipeline run needs. All missing
// settings are reported at once so a cron invocation fails with one
// actionable message.
func (c *Config) Validate() error {
	var missing []string
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.SupadataAPIKey == "" {
		missing = append(missing, "SUPADATA_API_KEY")
	}
	if c.GoogleCredentials == "" {
		missing = append(missing, "GOOGLE_CREDENTIALS")
	}
	if c.SpreadsheetID == "" {
		missing = append(missing, "SPREADSHEET_ID")
	}
	if len(missing) > 0 {
		return &SetupError{Missing: missing}
	}
	return nil
}

// ValidateProviders checks only the transcription and language-model
// credentials, for commands that never touch the sheet.
func (c *Config) ValidateProviders() error {
	var missing []string
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.SupadataAPIKey == "" {
		missing = append(missing, "SUPADATA_API_KEY")
	}
	if len(missing) > 0 {
		return &SetupError{Missing: missing}
	}
	return nil
}
