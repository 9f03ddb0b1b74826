package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCandidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain timestamp", "2025-06-03T15:00:00Z", "2025-06-03T15:00:00Z"},
		{"label prefix", "ISO 8601 datetime: 2025-06-03T15:00:00", "2025-06-03T15:00:00"},
		{"surrounding whitespace", "  2025-06-03T15:00:00 \n", "2025-06-03T15:00:00"},
		{"backtick fencing", "`2025-06-03T15:00:00`", "2025-06-03T15:00:00"},
		{"quoted", "\"2025-06-03T15:00:00\"", "2025-06-03T15:00:00"},
		{"empty output", "", ""},
		{"label only", "ISO 8601 datetime:", ""},
		{"free text passes through", "sometime next week", "sometime next week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanCandidate(tt.in))
		})
	}
}
