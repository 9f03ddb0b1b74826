package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// availFunc adapts a function to the availability checker interface.
type availFunc func(start time.Time) bool

func (f availFunc) IsFree(_ context.Context, start, _ time.Time) bool {
	return f(start)
}

func newTestFinder(avail availFunc) *DefaultFinder {
	return &DefaultFinder{
		Availability:     avail,
		WorkingHourStart: 10,
		WorkingHourEnd:   17,
		MaxSuggestions:   3,
		SlotDuration:     time.Hour,
		HorizonDays:      14,
		Logger:           zap.NewNop(),
	}
}

func TestFindSlotsAllFree(t *testing.T) {
	finder := newTestFinder(func(time.Time) bool { return true })
	anchor := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC) // Monday afternoon

	list := finder.FindSlots(context.Background(), anchor)

	require.Len(t, list.Slots, 3)
	assert.False(t, list.Exhausted)

	// Anchored at the working-hour start of the anchor's day, one per hour.
	want := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for i, slot := range list.Slots {
		assert.Equal(t, want.Add(time.Duration(i)*time.Hour), slot.Start)
		assert.Equal(t, slot.Start.Add(time.Hour), slot.End)
	}
}

func TestFindSlotsAllBusyExhaustsHorizon(t *testing.T) {
	finder := newTestFinder(func(time.Time) bool { return false })
	anchor := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	list := finder.FindSlots(context.Background(), anchor)

	assert.Empty(t, list.Slots)
	assert.True(t, list.Exhausted)
}

func TestFindSlotsRollsOverToNextDay(t *testing.T) {
	// Only 16:00 is free each day, so suggestions span three days.
	finder := newTestFinder(func(start time.Time) bool { return start.Hour() == 16 })
	anchor := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	list := finder.FindSlots(context.Background(), anchor)

	require.Len(t, list.Slots, 3)
	for i, slot := range list.Slots {
		assert.Equal(t, 16, slot.Start.Hour())
		assert.Equal(t, 2+i, slot.Start.Day())
	}
}

func TestFindSlotsStayInsideWorkingHours(t *testing.T) {
	finder := newTestFinder(func(time.Time) bool { return true })
	finder.MaxSuggestions = 20
	anchor := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	list := finder.FindSlots(context.Background(), anchor)

	require.Len(t, list.Slots, 20)
	for _, slot := range list.Slots {
		assert.GreaterOrEqual(t, slot.Start.Hour(), 10)
		assert.Less(t, slot.Start.Hour(), 17)
	}
}

func TestFindSlotsStrictlyIncreasing(t *testing.T) {
	// Free every other hour; results must stay ordered without duplicates.
	finder := newTestFinder(func(start time.Time) bool { return start.Hour()%2 == 0 })
	finder.MaxSuggestions = 6
	anchor := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	list := finder.FindSlots(context.Background(), anchor)

	require.Len(t, list.Slots, 6)
	for i := 1; i < len(list.Slots); i++ {
		assert.True(t, list.Slots[i-1].Start.Before(list.Slots[i].Start))
	}
}

func TestFindSlotsDeterministic(t *testing.T) {
	finder := newTestFinder(func(start time.Time) bool { return start.Hour() != 12 })
	anchor := time.Date(2025, 6, 2, 11, 45, 0, 0, time.UTC)

	first := finder.FindSlots(context.Background(), anchor)
	second := finder.FindSlots(context.Background(), anchor)

	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, first.Exhausted, second.Exhausted)
}
