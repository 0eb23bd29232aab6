// Package analysis turns wasted-spend term reports into negative-keyword
// recommendations, either via the Gemini API or a deterministic offline mock.
package analysis

import (
	"context"

	"adwaste/internal/report"
)

// Result is the outcome of an analysis run. Preview marks the no-credential
// fallback where the unsent prompt itself is returned instead of a model
// response.
type Result struct {
	Text    string
	Preview bool
}

// Analyzer produces a recommendation report for a set of term spends.
type Analyzer interface {
	Analyze(ctx context.Context, terms []report.TermSpend) (Result, error)
}
