// Package views projects models into the JSON shapes returned by the API.
package views

import "time"

const (
	// SummaryLength is the number of characters kept in a listing summary.
	SummaryLength = 100
	// Ellipsis marks a truncated summary.
	Ellipsis = "..."
)

// Summarize returns the first SummaryLength characters of content followed by Ellipsis,
// or content verbatim when it is not longer than SummaryLength.
func Summarize(content string) string {
	runes := []rune(content)
	if len(runes) <= SummaryLength {
		return content
	}
	return string(runes[:SummaryLength]) + Ellipsis
}

// FormatTime renders timestamps as RFC 3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
