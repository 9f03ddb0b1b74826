package models

import "time"

// Slot is a candidate meeting interval [Start, End). Slots are ephemeral:
// generated fresh per search, identified only by their position in the
// suggestion list they were returned in.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SuggestionList is the ordered, capped set of available slots offered to the
// user in one turn, displayed 1-based. Order is start-time ascending with no
// duplicate start times; every member passed the availability check at
// generation time.
type SuggestionList struct {
	Slots []Slot `json:"slots"`
	// Exhausted is set when the scan hit its horizon before collecting the
	// requested number of slots.
	Exhausted bool      `json:"exhausted"`
	CreatedAt time.Time `json:"createdAt"`
}
