package analysis

import (
	"strings"

	"adwaste/internal/report"
)

// NoDataMessage is returned in place of a prompt when there is nothing to
// analyze.
const NoDataMessage = "No data found to analyze."

const (
	promptHeader = "You are a Google Ads specialist. Look at these search terms that are costing money " +
		"but resulting in zero conversions:\n\n"
	promptTask = "\n\nTask:\n1. Identify which terms likely represent 'junk' or 'irrelevant' intent.\n" +
		"2. Provide a list of recommended Negative Keywords to add.\n3. Explain briefly why for each."
)

// BuildPrompt combines the role statement, the newline-joined term lines and
// the fixed task description into a single instruction prompt. An empty term
// list short-circuits to NoDataMessage.
func BuildPrompt(terms []report.TermSpend) string {
	if len(terms) == 0 {
		return NoDataMessage
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString(strings.Join(report.Lines(terms), "\n"))
	b.WriteString(promptTask)
	return b.String()
}
