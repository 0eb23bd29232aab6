// Package ads is a minimal Google Ads reporting client covering the single
// searchStream call this tool issues. Credentials are loaded from the
// standard google-ads.yaml layout and exchanged through the OAuth2 refresh
// token flow.
package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/yaml.v3"

	"adwaste/internal/logging"
)

const (
	defaultBaseURL = "https://googleads.googleapis.com"
	apiVersion     = "v21"
	adwordsScope   = "https://www.googleapis.com/auth/adwords"
)

// Credentials mirrors the google-ads.yaml credential file.
type Credentials struct {
	DeveloperToken  string `yaml:"developer_token"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	RefreshToken    string `yaml:"refresh_token"`
	LoginCustomerID string `yaml:"login_customer_id"`
}

// LoadFromStorage reads credentials from a google-ads.yaml file.
func LoadFromStorage(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ads config: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse ads config: %w", err)
	}

	if creds.DeveloperToken == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("ads config %s is missing developer_token or refresh_token", path)
	}

	return &creds, nil
}

// ClientConfig holds configuration for the reporting client.
type ClientConfig struct {
	Credentials *Credentials
	BaseURL     string
	Timeout     time.Duration
	// HTTPClient overrides the OAuth2 client. Tests use this.
	HTTPClient *http.Client
}

// Client issues reporting queries against the Google Ads REST API.
type Client struct {
	creds      *Credentials
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a reporting client with default settings.
func NewClient(ctx context.Context, creds *Credentials) *Client {
	return NewClientWithConfig(ctx, ClientConfig{Credentials: creds})
}

// NewClientWithConfig creates a reporting client with custom config.
func NewClientWithConfig(ctx context.Context, config ClientConfig) *Client {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		oauthConfig := &oauth2.Config{
			ClientID:     config.Credentials.ClientID,
			ClientSecret: config.Credentials.ClientSecret,
			Scopes:       []string{adwordsScope},
			Endpoint:     google.Endpoint,
		}
		token := &oauth2.Token{
			RefreshToken: config.Credentials.RefreshToken,
			TokenType:    "Bearer",
		}
		httpClient = oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	}
	httpClient.Timeout = timeout

	return &Client{
		creds:      config.Credentials,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// SearchStream runs a GAQL query against the given account and returns the
// flattened result rows. Platform failures come back as *APIError.
func (c *Client) SearchStream(ctx context.Context, customerID, query string) ([]Row, error) {
	startTime := time.Now()
	logging.AdsDebug("SearchStream: customer=%s query_len=%d", customerID, len(query))

	reqBody, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream", c.baseURL, apiVersion, customerID)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.creds.DeveloperToken)
	if c.creds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.creds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.AdsError("SearchStream: request failed after %v: %v", time.Since(startTime), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.AdsError("SearchStream: API returned status %d: %s", resp.StatusCode, string(body))
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var batches []searchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var rows []Row
	for _, batch := range batches {
		rows = append(rows, batch.Results...)
	}

	logging.Ads("SearchStream: completed in %v batches=%d rows=%d",
		time.Since(startTime), len(batches), len(rows))
	return rows, nil
}

// parseAPIError extracts the human-readable message from an error response.
// searchStream wraps the error envelope in a one-element array; unary calls
// return it bare, so both shapes are tried.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}

	var envelopes []apiErrorBody
	if err := json.Unmarshal(body, &envelopes); err != nil {
		var single apiErrorBody
		if err := json.Unmarshal(body, &single); err == nil && single.Error != nil {
			envelopes = []apiErrorBody{single}
		}
	}
	for _, env := range envelopes {
		if env.Error != nil {
			apiErr.Status = env.Error.Status
			apiErr.Message = env.Error.Message
			break
		}
	}

	return apiErr
}
