package ads

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one result from a searchStream response, restricted to the fields
// the reporting queries select.
type Row struct {
	SearchTermView SearchTermView `json:"searchTermView"`
	Metrics        Metrics        `json:"metrics"`
}

// SearchTermView carries the literal query text a user entered.
type SearchTermView struct {
	SearchTerm string `json:"searchTerm"`
}

// Metrics holds the per-row performance metrics.
type Metrics struct {
	CostMicros  Int64String `json:"costMicros"`
	Conversions float64     `json:"conversions"`
	Impressions Int64String `json:"impressions"`
}

// Int64String decodes the int64 fields the REST API encodes as JSON strings.
type Int64String int64

// UnmarshalJSON accepts both quoted and bare numbers.
func (v *Int64String) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid int64 value %q: %w", s, err)
	}
	*v = Int64String(n)
	return nil
}

// Int64 returns the decoded value.
func (v Int64String) Int64() int64 {
	return int64(v)
}

// searchStreamBatch is one element of the JSON array searchStream returns.
type searchStreamBatch struct {
	Results   []Row  `json:"results"`
	FieldMask string `json:"fieldMask"`
}

// apiErrorBody is the error envelope Google APIs return on failure.
type apiErrorBody struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// APIError is a platform-reported query failure. The message is the
// human-readable text from the API error body.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads api error (status %d): %s", e.StatusCode, e.Message)
}
