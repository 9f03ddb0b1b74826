// File: services/agent/intent.go
package agent

import (
	"strconv"
	"strings"
)

// Intent classifies one user message from lexical cues alone.
type Intent int

const (
	IntentUnrecognized Intent = iota
	IntentBooking
	IntentSelection
)

var bookingKeywords = []string{"book", "schedule", "meeting", "appointment"}

// ClassifyIntent derives the intent of a trimmed, non-empty message. For
// IntentSelection the second return value is the parsed 1-based slot number.
// Keyword matching wins over digit parsing, so "book slot 3" is a booking
// request, not a selection.
func ClassifyIntent(message string) (Intent, int) {
	lower := strings.ToLower(message)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return IntentBooking, 0
		}
	}

	trimmed := strings.TrimSpace(message)
	if n, err := strconv.Atoi(trimmed); err == nil && isAllDigits(trimmed) {
		return IntentSelection, n
	}
	return IntentUnrecognized, 0
}

// isAllDigits rejects signs and whitespace that Atoi would accept.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
