package report

import (
	"context"
	"strings"
	"testing"

	"adwaste/internal/ads"
)

// fakeQuerier records the query it receives and returns canned rows.
type fakeQuerier struct {
	gotCustomerID string
	gotQuery      string
	rows          []ads.Row
	err           error
}

func (f *fakeQuerier) SearchStream(_ context.Context, customerID, query string) ([]ads.Row, error) {
	f.gotCustomerID = customerID
	f.gotQuery = query
	return f.rows, f.err
}

func row(term string, costMicros int64) ads.Row {
	return ads.Row{
		SearchTermView: ads.SearchTermView{SearchTerm: term},
		Metrics:        ads.Metrics{CostMicros: ads.Int64String(costMicros)},
	}
}

func TestFetchWastedSpend_MapsRows(t *testing.T) {
	q := &fakeQuerier{rows: []ads.Row{
		row("lawn mower repair manual", 120_500_000),
		row("free lawn mower", 80_000_000),
	}}

	terms := FetchWastedSpend(context.Background(), q, "1234567890")

	if q.gotCustomerID != "1234567890" {
		t.Errorf("customer id = %q, want 1234567890", q.gotCustomerID)
	}
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(terms))
	}
	if terms[0].Term != "lawn mower repair manual" || terms[0].CostMicros != 120_500_000 {
		t.Errorf("unexpected first term: %+v", terms[0])
	}
	if terms[1].Line() != "Term: 'free lawn mower' (Spent: $80.00)" {
		t.Errorf("unexpected line: %q", terms[1].Line())
	}
}

func TestFetchWastedSpend_QueryShape(t *testing.T) {
	q := &fakeQuerier{}
	FetchWastedSpend(context.Background(), q, "123")

	for _, fragment := range []string{
		"FROM search_term_view",
		"metrics.conversions = 0",
		"metrics.cost_micros > 50000000",
		"segments.date DURING LAST_30_DAYS",
		"ORDER BY metrics.cost_micros DESC",
		"LIMIT 10",
	} {
		if !strings.Contains(q.gotQuery, fragment) {
			t.Errorf("query missing %q:\n%s", fragment, q.gotQuery)
		}
	}
}

func TestFetchWastedSpend_CapsAtTen(t *testing.T) {
	var rows []ads.Row
	for i := 0; i < 25; i++ {
		rows = append(rows, row("term", 60_000_000))
	}
	q := &fakeQuerier{rows: rows}

	terms := FetchWastedSpend(context.Background(), q, "123")
	if len(terms) != 10 {
		t.Errorf("expected cap at 10 terms, got %d", len(terms))
	}
}

func TestFetchWastedSpend_APIErrorReturnsEmpty(t *testing.T) {
	q := &fakeQuerier{err: &ads.APIError{StatusCode: 403, Message: "The caller does not have permission"}}

	terms := FetchWastedSpend(context.Background(), q, "123")
	if terms != nil {
		t.Errorf("expected nil terms on API error, got %v", terms)
	}
}

func TestFetchWastedSpend_EmptyResult(t *testing.T) {
	q := &fakeQuerier{}

	terms := FetchWastedSpend(context.Background(), q, "123")
	if len(terms) != 0 {
		t.Errorf("expected no terms, got %d", len(terms))
	}
}
