package analysis

import (
	"strings"
	"testing"

	"adwaste/internal/report"
)

func TestBuildPrompt_Empty(t *testing.T) {
	if got := BuildPrompt(nil); got != NoDataMessage {
		t.Errorf("BuildPrompt(nil) = %q, want %q", got, NoDataMessage)
	}
	if got := BuildPrompt([]report.TermSpend{}); got != NoDataMessage {
		t.Errorf("BuildPrompt(empty) = %q, want %q", got, NoDataMessage)
	}
}

func TestBuildPrompt(t *testing.T) {
	terms := []report.TermSpend{
		{Term: "mower repair manual", CostMicros: 120_000_000},
		{Term: "free mower", CostMicros: 80_000_000},
	}

	prompt := BuildPrompt(terms)

	want := "You are a Google Ads specialist. Look at these search terms that are costing money " +
		"but resulting in zero conversions:\n\n" +
		"Term: 'mower repair manual' (Spent: $120.00)\n" +
		"Term: 'free mower' (Spent: $80.00)" +
		"\n\nTask:\n1. Identify which terms likely represent 'junk' or 'irrelevant' intent.\n" +
		"2. Provide a list of recommended Negative Keywords to add.\n3. Explain briefly why for each."

	if prompt != want {
		t.Errorf("BuildPrompt mismatch:\ngot:  %q\nwant: %q", prompt, want)
	}
}

func TestBuildPrompt_SingleTermHasNoStrayNewlines(t *testing.T) {
	prompt := BuildPrompt([]report.TermSpend{{Term: "x", CostMicros: 60_000_000}})
	if strings.Contains(prompt, "Term: 'x' (Spent: $60.00)\n\nTask:") == false {
		t.Errorf("term list should be followed directly by the task block:\n%s", prompt)
	}
}
