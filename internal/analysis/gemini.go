package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adwaste/internal/logging"
	"adwaste/internal/report"
)

// PreviewNotice prefixes the unsent prompt when no API key is configured.
const PreviewNotice = "GEMINI_API_KEY not set. Preview prompt to send to Gemini:\n\n"

// GeminiConfig holds configuration for the Gemini analyzer.
type GeminiConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-3-flash-preview",
		Timeout: 2 * time.Minute,
	}
}

// GeminiAnalyzer sends the wasted-spend prompt to the Gemini API.
// With no API key configured it returns the unsent prompt as a preview
// instead of failing, so the tool stays usable offline.
type GeminiAnalyzer struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiAnalyzer creates a Gemini analyzer with default settings.
func NewGeminiAnalyzer(apiKey string) *GeminiAnalyzer {
	return NewGeminiAnalyzerWithConfig(DefaultGeminiConfig(apiKey))
}

// NewGeminiAnalyzerWithConfig creates a Gemini analyzer with custom config.
func NewGeminiAnalyzerWithConfig(config GeminiConfig) *GeminiAnalyzer {
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &GeminiAnalyzer{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the configured model identifier.
func (g *GeminiAnalyzer) Model() string {
	return g.model
}

// Analyze builds the prompt and sends it to Gemini. The call is attempted
// exactly once; any failure surfaces as an error for the caller to present.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, terms []report.TermSpend) (Result, error) {
	if len(terms) == 0 {
		return Result{Text: NoDataMessage}, nil
	}

	prompt := BuildPrompt(terms)

	if g.apiKey == "" {
		logging.Gemini("Analyze: no API key, returning prompt preview (%d terms)", len(terms))
		return Result{Text: PreviewNotice + prompt, Preview: true}, nil
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.httpClient.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	logging.GeminiDebug("Analyze: model=%s prompt_len=%d", g.model, len(prompt))

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: GeminiGenerationConfig{
			Temperature: 1.0,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logging.GeminiError("Analyze: request failed after %v: %v", time.Since(startTime), err)
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.GeminiError("Analyze: API returned status %d: %s", resp.StatusCode, string(body))
		return Result{}, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return Result{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return Result{}, fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("no completion returned")
	}

	var text strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	logging.Gemini("Analyze: completed in %v response_len=%d total_tokens=%d",
		time.Since(startTime), text.Len(), geminiResp.UsageMetadata.TotalTokenCount)

	return Result{Text: strings.TrimSpace(text.String())}, nil
}
