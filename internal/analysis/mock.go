package analysis

import (
	"context"
	"fmt"
	"strings"

	"adwaste/internal/report"
)

// MockAnalyzer emits a canned Gemini-style report for testing and offline
// use. Purely a formatting function of its input: no network, no state.
type MockAnalyzer struct{}

// Analyze renders the fixed-template report: a simulated-spend summary,
// three generic recommendations, one note per term in input order, and a
// closing reminder.
func (MockAnalyzer) Analyze(_ context.Context, terms []report.TermSpend) (Result, error) {
	var total float64
	for _, t := range terms {
		total += t.Cost()
	}

	var b strings.Builder
	b.WriteString("(Mock) Gemini Analysis Summary:\n")
	fmt.Fprintf(&b, "Total simulated spend: $%.2f across %d terms.\n", total, len(terms))
	b.WriteString("Top recommendations:\n")
	b.WriteString("1) Add informational negative keywords: 'how to', 'video', 'manual', 'youtube'.\n")
	b.WriteString("2) Exclude parts & low-value intents: 'parts', 'cheap', 'coupon', 'used'.\n")
	b.WriteString("3) Verify landing page and geo-targeting for high-spend, high-intent keywords.\n\n")
	b.WriteString("Detailed per-term notes:\n")

	for _, t := range terms {
		fmt.Fprintf(&b, "- %s: Likely informational or parts intent; consider adding related negatives.\n", t.Line())
	}

	b.WriteString("\nMock closing note: Review negative keyword list and monitor conversions for 7 days.")

	return Result{Text: b.String()}, nil
}
