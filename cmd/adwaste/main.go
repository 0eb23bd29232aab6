package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adwaste/internal/ads"
	"adwaste/internal/analysis"
	"adwaste/internal/config"
	"adwaste/internal/dryrun"
	"adwaste/internal/logging"
	"adwaste/internal/report"
)

var (
	// Global flags
	verbose    bool
	dryRunFlag bool
	mockGemini bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adwaste",
	Short: "adwaste - wasted-spend analysis for Google Ads search terms",
	Long: `adwaste finds high-spend, zero-conversion search terms in a Google Ads
account and asks Gemini for negative-keyword recommendations.

Configuration comes from the environment:
  GEMINI_API_KEY      Gemini API key (omit to preview the prompt instead)
  TARGET_CUSTOMER_ID  Google Ads account to query
  PATH_TO_ADS_CONFIG  google-ads.yaml credential file (default: google-ads.yaml)
  CAMPAIGN_CONFIG     dry-run campaign file (default: campaign_config.yaml)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalysis,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Simulate the Ads API using the campaign config file")
	rootCmd.Flags().BoolVar(&mockGemini, "mock-gemini", false, "Use a canned Gemini-style response instead of calling the API")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runAnalysis drives the whole pipeline: resolve the run mode, fetch or
// synthesize terms, analyze, print. Every handled failure prints a message
// and returns nil so the process exits 0.
func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	mode := newRunMode(dryRunFlag, mockGemini)

	cwd, _ := os.Getwd()
	if err := logging.Initialize(cwd); err != nil {
		logger.Warn("Debug logging unavailable", zap.Error(err))
	}
	defer logging.CloseAll()

	logger.Debug("Run mode resolved",
		zap.String("source", mode.source.String()),
		zap.String("backend", mode.backend.String()))

	fmt.Println("--- Starting Gemini Ads Analysis ---")

	ctx := context.Background()

	if mode.source == sourceDryRun {
		return runDryRun(ctx, cfg, mode)
	}
	return runLive(ctx, cfg, mode)
}

// runDryRun synthesizes terms from the campaign config file.
func runDryRun(ctx context.Context, cfg *config.Config, mode runMode) error {
	campaign, err := dryrun.Load(cfg.CampaignConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Dry-run requested but %s not found.\n", cfg.CampaignConfigPath)
		} else {
			fmt.Printf("Dry-run requested but %s could not be read: %v\n", cfg.CampaignConfigPath, err)
		}
		return nil
	}

	terms := dryrun.Synthesize(campaign)

	fmt.Printf("Dry-run: generated %d simulated terms from %s.\n", len(terms), cfg.CampaignConfigPath)
	fmt.Println("Terms preview:")
	for _, t := range terms {
		fmt.Println(" -", t.Line())
	}

	fmt.Println("\nSending (simulated) terms to Gemini for analysis...")
	result := analyze(ctx, cfg, mode, terms)
	fmt.Println("\n--- GEMINI 3 RECOMMENDATIONS (Dry-run) ---")
	fmt.Println(result.Text)
	return nil
}

// runLive queries the Ads API for real wasted spend.
func runLive(ctx context.Context, cfg *config.Config, mode runMode) error {
	if err := cfg.ValidateLive(); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	creds, err := ads.LoadFromStorage(cfg.AdsConfigPath)
	if err != nil {
		logging.BootError("ads config load failed: %v", err)
		fmt.Printf("Stop: Could not load %s. Please add it to the folder or set PATH_TO_ADS_CONFIG.\n", cfg.AdsConfigPath)
		return nil
	}

	client := ads.NewClient(ctx, creds)

	fmt.Printf("Fetching data for Account %s...\n", cfg.CustomerID)
	terms := report.FetchWastedSpend(ctx, client, cfg.CustomerID)

	if len(terms) == 0 {
		fmt.Println("No wasted spend detected based on your filters.")
		return nil
	}

	fmt.Printf("Found %d terms. Sending to Gemini 3 for review...\n", len(terms))
	result := analyze(ctx, cfg, mode, terms)
	fmt.Println("\n--- GEMINI 3 RECOMMENDATIONS ---")
	fmt.Println(result.Text)
	return nil
}

// analyze runs the selected backend. Model call errors become the printed
// result text; the run never aborts at this stage.
func analyze(ctx context.Context, cfg *config.Config, mode runMode, terms []report.TermSpend) analysis.Result {
	var backend analysis.Analyzer
	switch mode.backend {
	case backendMock:
		backend = analysis.MockAnalyzer{}
	default:
		geminiConfig := analysis.DefaultGeminiConfig(cfg.GeminiAPIKey)
		geminiConfig.Model = cfg.GeminiModel
		geminiConfig.BaseURL = cfg.GeminiBaseURL
		geminiConfig.Timeout = cfg.GetGeminiTimeout()
		backend = analysis.NewGeminiAnalyzerWithConfig(geminiConfig)
	}

	result, err := backend.Analyze(ctx, terms)
	if err != nil {
		logger.Debug("Analysis backend failed", zap.Error(err))
		return analysis.Result{Text: fmt.Sprintf("Gemini API error: %v", err)}
	}
	return result
}
