package models

import (
	"fmt"
	"time"
)

// BookingStatus classifies the outcome of a booking attempt.
type BookingStatus string

const (
	BookingConfirmed   BookingStatus = "confirmed"
	BookingUnavailable BookingStatus = "unavailable"
	BookingFailed      BookingStatus = "failed"
)

// BookingOutcome is the typed result of a calendar booking attempt.
type BookingOutcome struct {
	Status BookingStatus `json:"status"`
	Start  time.Time     `json:"start,omitempty"`
	End    time.Time     `json:"end,omitempty"`
	Detail string        `json:"detail,omitempty"`
}

// Message renders the outcome as user-facing reply text.
func (o BookingOutcome) Message() string {
	switch o.Status {
	case BookingConfirmed:
		return fmt.Sprintf("✅ Booked from %s to %s.",
			o.Start.Format("03:04 PM"), o.End.Format("03:04 PM"))
	case BookingUnavailable:
		return "❌ That time is not available."
	default:
		return "⚠️ Something went wrong while booking. Please try again."
	}
}

// BookingRecord is the audit row persisted after a confirmed booking.
type BookingRecord struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	Start          time.Time `bson:"start" json:"start"`
	End            time.Time `bson:"end" json:"end"`
	CalendarID     string    `bson:"calendarId" json:"calendarId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
