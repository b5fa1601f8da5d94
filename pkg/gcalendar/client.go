// Package gcalendar queries the Google Calendar FreeBusy API for committed
// periods. The scheduling engine consumes these as busy intervals.
package gcalendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Period is one committed busy span reported by the calendar.
type Period struct {
	Start time.Time
	End   time.Time
}

// Client wraps the Google Calendar API service. Queries are paced to stay
// inside the Calendar API quota.
type Client struct {
	service    *calendar.Service
	calendarID string
	limiter    *rate.Limiter
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path. calendarID may be empty, meaning "primary".
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		service:    svc,
		calendarID: calendarID,
		// Calendar API allows far more, but suggestion queries are bursty
		// and retrying on 403 is worse than waiting.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}, nil
}

// BusyIntervals returns the committed periods between from and to, as
// reported by the FreeBusy endpoint.
func (c *Client) BusyIntervals(ctx context.Context, from, to time.Time) ([]Period, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}

	var out []Period
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("bad busy period start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("bad busy period end %q: %w", period.End, err)
		}
		out = append(out, Period{Start: start, End: end})
	}
	return out, nil
}
