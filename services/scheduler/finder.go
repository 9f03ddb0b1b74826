// File: services/scheduler/finder.go
package scheduler

import (
	"context"
	"time"

	"schedmate/calendar"
	"schedmate/models"

	"go.uber.org/zap"
)

// SlotFinder enumerates open slots within working hours.
type SlotFinder interface {
	FindSlots(ctx context.Context, from time.Time) models.SuggestionList
}

// DefaultFinder scans forward from an anchor time in one-hour steps, keeping
// slots the availability checker reports free, up to the suggestion cap. The
// scan is bounded by HorizonDays so a fully busy calendar terminates with a
// partial (possibly empty) list.
type DefaultFinder struct {
	Availability     calendar.AvailabilityChecker
	WorkingHourStart int
	WorkingHourEnd   int
	MaxSuggestions   int
	SlotDuration     time.Duration
	HorizonDays      int
	Logger           *zap.Logger
}

// FindSlots returns the suggestion list anchored at from's calendar day.
// For a fixed anchor and a fixed availability answer sequence the result is
// deterministic and ordered start-ascending.
func (f *DefaultFinder) FindSlots(ctx context.Context, from time.Time) models.SuggestionList {
	list := models.SuggestionList{CreatedAt: time.Now()}

	// Pin the anchor to the working-hour start on its calendar day.
	cursor := time.Date(from.Year(), from.Month(), from.Day(),
		f.WorkingHourStart, 0, 0, 0, from.Location())
	horizon := cursor.AddDate(0, 0, f.HorizonDays)

	for len(list.Slots) < f.MaxSuggestions {
		if !cursor.Before(horizon) {
			list.Exhausted = true
			f.Logger.Warn("slot search exhausted scan horizon",
				zap.Time("anchor", from), zap.Int("found", len(list.Slots)))
			break
		}
		if cursor.Hour() >= f.WorkingHourEnd {
			next := cursor.AddDate(0, 0, 1)
			cursor = time.Date(next.Year(), next.Month(), next.Day(),
				f.WorkingHourStart, 0, 0, 0, next.Location())
			continue
		}

		end := cursor.Add(f.SlotDuration)
		if f.Availability.IsFree(ctx, cursor, end) {
			list.Slots = append(list.Slots, models.Slot{Start: cursor, End: end})
		}
		// Advance one hour, not to the slot end, so near-adjacent openings
		// are not skipped.
		cursor = cursor.Add(time.Hour)
	}
	return list
}
