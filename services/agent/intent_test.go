package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantIndex  int
	}{
		{"book keyword", "Book a meeting tomorrow at 3pm", IntentBooking, 0},
		{"schedule keyword", "can you SCHEDULE something friday", IntentBooking, 0},
		{"meeting keyword", "I need a meeting next week", IntentBooking, 0},
		{"appointment keyword", "appointment please", IntentBooking, 0},
		{"keyword inside word", "rebooking fees", IntentBooking, 0},
		{"digit reply", "3", IntentSelection, 3},
		{"digit reply with spaces", "  2  ", IntentSelection, 2},
		{"multi digit", "12", IntentSelection, 12},
		{"keyword beats digits", "book slot 3", IntentBooking, 0},
		{"negative number", "-3", IntentUnrecognized, 0},
		{"signed number", "+3", IntentUnrecognized, 0},
		{"mixed digits", "3pm", IntentUnrecognized, 0},
		{"plain chat", "hello there", IntentUnrecognized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, index := ClassifyIntent(tt.message)
			assert.Equal(t, tt.wantIntent, intent)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}
