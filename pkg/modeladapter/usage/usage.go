// Package usage records the token counts a generation service reports.
package usage

import "time"

// TokenCount holds the counts and timing reported for a single generation.
type TokenCount struct {
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
}

// Tracker accumulates token counts. The zero value is ready to use.
// Tracker is not safe for concurrent use.
type Tracker struct {
	entries []TokenCount
}

// Add records a token count entry.
func (t *Tracker) Add(tc TokenCount) {
	t.entries = append(t.entries, tc)
}

// Last returns the most recent entry.
// The bool is false when the tracker has no entries.
func (t *Tracker) Last() (TokenCount, bool) {
	if len(t.entries) == 0 {
		return TokenCount{}, false
	}

	return t.entries[len(t.entries)-1], true
}

// Estimate approximates the token count of text at one token per four bytes,
// rounded up.
func Estimate(text string) int {
	return (len(text) + 3) / 4
}
