// File: calendar/client.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"schedmate/models"

	"go.uber.org/zap"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// AvailabilityChecker reports whether a time range is free on the calendar.
// Malformed input or backend errors are reported as "not free" (fail closed).
type AvailabilityChecker interface {
	IsFree(ctx context.Context, start, end time.Time) bool
}

// Booker attempts to reserve a slot, re-checking availability immediately
// before committing.
type Booker interface {
	Book(ctx context.Context, start time.Time) models.BookingOutcome
}

// Client wraps the Google Calendar API for availability checks and event
// insertion. It is constructed explicitly and injected; a failed backend can
// be replaced by constructing a new Client without a process restart.
type Client struct {
	svc          *calendar.Service
	calendarID   string
	timezone     *time.Location
	slotDuration time.Duration
	logger       *zap.Logger
}

// Config carries the settings needed to talk to one calendar.
type Config struct {
	CalendarID      string
	CredentialsFile string
	Timezone        *time.Location
	SlotDuration    time.Duration
}

// New creates a calendar client authenticated with a service account.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{
		svc:          svc,
		calendarID:   cfg.CalendarID,
		timezone:     cfg.Timezone,
		slotDuration: cfg.SlotDuration,
		logger:       logger,
	}, nil
}

// Healthy probes the configured calendar; used by the health monitor.
func (c *Client) Healthy(ctx context.Context) bool {
	if c.svc == nil {
		return false
	}
	_, err := c.svc.Calendars.Get(c.calendarID).Context(ctx).Do()
	return err == nil
}

// IsFree runs a freebusy query for [start, end). Any error is treated as busy.
func (c *Client) IsFree(ctx context.Context, start, end time.Time) bool {
	if c.svc == nil {
		c.logger.Warn("calendar service not initialized")
		return false
	}
	if !start.Before(end) {
		return false
	}

	req := &calendar.FreeBusyRequest{
		TimeMin:  start.Format(time.RFC3339),
		TimeMax:  end.Format(time.RFC3339),
		TimeZone: c.timezone.String(),
		Items:    []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		c.logger.Error("availability check failed", zap.Error(err))
		return false
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return false
	}
	return len(cal.Busy) == 0
}

// Book reserves [start, start+slotDuration) as a "Scheduled Appointment"
// event. Availability is re-checked immediately before the insert; the window
// between that check and the insert is the backend's to close.
func (c *Client) Book(ctx context.Context, start time.Time) models.BookingOutcome {
	end := start.Add(c.slotDuration)

	if !c.IsFree(ctx, start, end) {
		return models.BookingOutcome{Status: models.BookingUnavailable, Start: start, End: end}
	}

	event := &calendar.Event{
		Summary: "Scheduled Appointment",
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.timezone.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.timezone.String(),
		},
	}

	if _, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do(); err != nil {
		c.logger.Error("failed to book slot", zap.Error(err))
		return models.BookingOutcome{Status: models.BookingFailed, Start: start, End: end, Detail: err.Error()}
	}

	c.logger.Info("booked slot",
		zap.Time("start", start), zap.Time("end", end), zap.String("calendarID", c.calendarID))
	return models.BookingOutcome{Status: models.BookingConfirmed, Start: start, End: end}
}
