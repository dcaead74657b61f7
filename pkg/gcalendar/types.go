package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"

	// ColorID picks the event color from the Calendar palette.
	// Empty keeps the calendar default.
	ColorID string

	// ReminderMinutes adds a popup reminder that many minutes before
	// the event. Zero keeps the calendar's default reminders.
	ReminderMinutes int
}

// Event is a simplified representation of a Google Calendar event.
// All-day events carry zero StartTime and EndTime.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
