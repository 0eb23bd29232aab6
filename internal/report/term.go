// Package report turns raw search-term metrics into the spend records the
// analysis backends consume.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

const microsPerUnit = 1_000_000

// TermSpend is a single search term and what it cost over the report window.
// Cost is kept in micros end to end; formatting happens at presentation time.
type TermSpend struct {
	Term       string
	CostMicros int64
}

// Cost returns the spend in whole currency units.
func (t TermSpend) Cost() float64 {
	return float64(t.CostMicros) / microsPerUnit
}

// Line renders the term in the report exchange format:
//
//	Term: '<term>' (Spent: $<cost>)
func (t TermSpend) Line() string {
	return fmt.Sprintf("Term: '%s' (Spent: $%.2f)", t.Term, t.Cost())
}

// Lines renders every term via Line, preserving order.
func Lines(terms []TermSpend) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Line()
	}
	return out
}

// ParseLineCost recovers the spend from a formatted term line: the substring
// after the last '$' with a trailing ')' stripped. Unparsable lines count as
// zero spend.
func ParseLineCost(line string) float64 {
	idx := strings.LastIndex(line, "$")
	if idx < 0 {
		return 0
	}
	raw := strings.TrimSpace(strings.TrimSuffix(line[idx+1:], ")"))
	cost, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return cost
}
