// Package config holds all adwaste configuration. The configuration value is
// constructed once at startup from the environment and passed to each
// component; nothing reads the environment after that.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all adwaste configuration.
type Config struct {
	// Gemini settings
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout string

	// Google Ads settings
	CustomerID    string
	AdsConfigPath string

	// Dry-run settings
	CampaignConfigPath string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		GeminiModel:        "gemini-3-flash-preview",
		GeminiBaseURL:      "https://generativelanguage.googleapis.com/v1beta",
		GeminiTimeout:      "120s",
		AdsConfigPath:      "google-ads.yaml",
		CampaignConfigPath: "campaign_config.yaml",
	}
}

// New builds the runtime configuration: defaults, then a .env file when one
// exists in the working directory, then real environment variables on top.
func New() *Config {
	// Errors from a missing .env are expected; real env always wins anyway
	// because godotenv does not overwrite variables that are already set.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.GeminiAPIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.GeminiModel = model
	}
	if id := os.Getenv("TARGET_CUSTOMER_ID"); id != "" {
		c.CustomerID = id
	}
	if path := os.Getenv("PATH_TO_ADS_CONFIG"); path != "" {
		c.AdsConfigPath = path
	}
	if path := os.Getenv("CAMPAIGN_CONFIG"); path != "" {
		c.CampaignConfigPath = path
	}
}

// GetGeminiTimeout returns the Gemini request timeout as a duration.
func (c *Config) GetGeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.GeminiTimeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// ValidateLive checks the configuration needed for the live reporting path.
func (c *Config) ValidateLive() error {
	if c.CustomerID == "" {
		return fmt.Errorf("TARGET_CUSTOMER_ID not set. Set the env var and retry.")
	}
	return nil
}
