package report

import (
	"context"
	"errors"
	"fmt"

	"adwaste/internal/ads"
	"adwaste/internal/logging"
)

// maxTerms caps every report at the ten most expensive terms.
const maxTerms = 10

// wastedSpendQuery selects high-spend, zero-conversion search terms from the
// last 30 days, most expensive first. The filter is fixed: it is the
// definition of wasted spend this tool reports on, not a tunable.
const wastedSpendQuery = `
    SELECT
      search_term_view.search_term,
      metrics.cost_micros,
      metrics.conversions,
      metrics.impressions
    FROM search_term_view
    WHERE metrics.conversions = 0
      AND metrics.cost_micros > 50000000
      AND segments.date DURING LAST_30_DAYS
    ORDER BY metrics.cost_micros DESC
    LIMIT 10
`

// Querier is the reporting surface FetchWastedSpend needs from the Ads client.
type Querier interface {
	SearchStream(ctx context.Context, customerID, query string) ([]ads.Row, error)
}

// FetchWastedSpend runs the wasted-spend query for the given account.
// Platform errors are printed and swallowed: callers get an empty slice,
// indistinguishable from "nothing met the filter".
func FetchWastedSpend(ctx context.Context, q Querier, customerID string) []TermSpend {
	rows, err := q.SearchStream(ctx, customerID, wastedSpendQuery)
	if err != nil {
		var apiErr *ads.APIError
		if errors.As(err, &apiErr) {
			fmt.Printf("Ads API Error: %s\n", apiErr.Message)
		} else {
			fmt.Printf("Ads API Error: %v\n", err)
		}
		logging.AdsError("wasted spend query failed: %v", err)
		return nil
	}

	terms := make([]TermSpend, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, TermSpend{
			Term:       row.SearchTermView.SearchTerm,
			CostMicros: row.Metrics.CostMicros.Int64(),
		})
		if len(terms) >= maxTerms {
			break
		}
	}

	logging.Ads("wasted spend query: customer=%s terms=%d", customerID, len(terms))
	return terms
}
