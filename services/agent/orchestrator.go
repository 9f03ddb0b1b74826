// File: services/agent/orchestrator.go
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"schedmate/calendar"
	recordsRepo "schedmate/database/repository/records"
	"schedmate/models"
	"schedmate/services/resolver"
	"schedmate/services/scheduler"

	"go.uber.org/zap"
)

// ErrEmptyMessage rejects a turn before orchestration runs; it is the one
// failure surfaced as a structured error rather than reply text.
var ErrEmptyMessage = errors.New("missing or empty message")

const helpText = "I can help you book appointments! Try saying:\n" +
	"- 'Book something next Friday morning'\n" +
	"- 'Tomorrow at 3pm'\n" +
	"- Or reply with a number from the suggested slots."

// Formats accepted for a resolved time candidate. Anything else counts as
// "could not resolve".
var candidateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// DefaultTurnService drives one turn: classify the message, resolve or
// enumerate times, and issue the booking. It holds no mutable state, so turns
// may run concurrently across conversations.
type DefaultTurnService struct {
	Resolver resolver.TimeResolver
	Finder   scheduler.SlotFinder
	Booker   calendar.Booker
	Lock     scheduler.SlotLock
	Sessions SessionStore
	Records  recordsRepo.BookingRecordRepository
	Timezone *time.Location
	Logger   *zap.Logger

	// Now is the turn's clock; overridable in tests.
	Now func() time.Time
}

func (s *DefaultTurnService) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.Timezone)
	}
	return time.Now().In(s.Timezone)
}

// HandleTurn implements TurnService.
func (s *DefaultTurnService) HandleTurn(ctx context.Context, conversationID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	intent, index := ClassifyIntent(message)
	switch intent {
	case IntentBooking:
		return s.handleBookingRequest(ctx, conversationID, message), nil
	case IntentSelection:
		return s.handleSlotSelection(ctx, conversationID, index), nil
	default:
		return helpText, nil
	}
}

// handleBookingRequest resolves the time phrase and either books it directly
// or falls back to a suggestion list. A candidate that fails validation gets
// the same suggestion fallback as a missing candidate, prefixed with a
// corrective sentence.
func (s *DefaultTurnService) handleBookingRequest(ctx context.Context, conversationID, message string) string {
	candidate := s.Resolver.Resolve(ctx, message)
	if candidate != "" {
		start, err := s.parseCandidate(candidate)
		if err == nil {
			return s.bookAt(ctx, conversationID, start)
		}
		s.Logger.Debug("resolved candidate failed validation",
			zap.String("candidate", candidate), zap.Error(err))
		return "⚠️ That didn't look like a valid time.\n" +
			s.suggest(ctx, conversationID, "Here are a few openings instead:")
	}
	return s.suggest(ctx, conversationID, "I couldn't find a specific time. Here are a few suggestions:")
}

// handleSlotSelection resolves a numeric reply against the list this
// conversation was last shown; with no stored list (first turn, expired TTL,
// store unreachable) it indexes into a freshly computed one.
func (s *DefaultTurnService) handleSlotSelection(ctx context.Context, conversationID string, number int) string {
	var slots []models.Slot

	stored, err := s.Sessions.Get(ctx, conversationID)
	if err != nil {
		s.Logger.Warn("session store unavailable, recomputing slots", zap.Error(err))
	}
	if stored != nil {
		slots = stored.Slots
	} else {
		slots = s.Finder.FindSlots(ctx, s.now()).Slots
	}

	if len(slots) == 0 {
		return "I don't have any open slots to offer right now. Try asking for a specific time instead."
	}

	index := number - 1
	if index < 0 || index >= len(slots) {
		return fmt.Sprintf("Please pick a number between 1 and %d.", len(slots))
	}
	return s.bookAt(ctx, conversationID, slots[index].Start)
}

// suggest computes a fresh suggestion list, stores it for this conversation,
// and renders it as a numbered schedule.
func (s *DefaultTurnService) suggest(ctx context.Context, conversationID, lead string) string {
	list := s.Finder.FindSlots(ctx, s.now())
	if len(list.Slots) == 0 {
		return "I couldn't find any open slots in the coming days. Try asking for a specific time instead."
	}

	if err := s.Sessions.Set(ctx, conversationID, &list); err != nil {
		s.Logger.Warn("failed to store suggestion list", zap.Error(err))
	}

	var sb strings.Builder
	sb.WriteString(lead)
	sb.WriteString("\n")
	for i, slot := range list.Slots {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, slot.Start.Format("Monday at 03:04 PM")))
	}
	sb.WriteString("\nReply with a slot number.")
	return sb.String()
}

// bookAt takes the slot lock, issues the booking, and relays the outcome
// verbatim. The lock is advisory; the booker re-checks availability before
// committing either way.
func (s *DefaultTurnService) bookAt(ctx context.Context, conversationID string, start time.Time) string {
	acquired, err := s.Lock.Acquire(ctx, start)
	if err != nil {
		s.Logger.Warn("slot lock unavailable, proceeding unlocked", zap.Error(err))
	} else if !acquired {
		return models.BookingOutcome{Status: models.BookingUnavailable}.Message()
	} else {
		defer s.Lock.Release(ctx, start)
	}

	outcome := s.Booker.Book(ctx, start)
	if outcome.Status == models.BookingConfirmed {
		if err := s.Sessions.Clear(ctx, conversationID); err != nil {
			s.Logger.Warn("failed to clear suggestion list", zap.Error(err))
		}
		s.recordBooking(ctx, conversationID, outcome)
	}
	return outcome.Message()
}

// recordBooking appends the audit row; failures are logged, never surfaced.
func (s *DefaultTurnService) recordBooking(ctx context.Context, conversationID string, outcome models.BookingOutcome) {
	if s.Records == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := s.Records.Create(ctx, models.BookingRecord{
		ConversationID: conversationID,
		Start:          outcome.Start,
		End:            outcome.End,
	})
	if err != nil {
		s.Logger.Warn("failed to record booking", zap.Error(err))
	}
}

// parseCandidate validates the resolver's output as a well-formed timestamp.
// Zone-less candidates are interpreted in the configured timezone.
func (s *DefaultTurnService) parseCandidate(candidate string) (time.Time, error) {
	var lastErr error
	for _, layout := range candidateLayouts {
		t, err := time.ParseInLocation(layout, candidate, s.Timezone)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
