package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/scheduling"
	"taskhub/pkg/gcalendar"
	"taskhub/pkg/log"
)

// reminderMinutes is the popup lead time on scheduled task events.
const reminderMinutes = 10

// CalendarRepository schedules task records as Google Calendar events.
type CalendarRepository struct {
	client   *gcalendar.Client
	slots    *scheduling.Engine
	timezone string
	l        log.Logger
}

func NewCalendarRepository(client *gcalendar.Client, slots *scheduling.Engine, timezone string, l log.Logger) *CalendarRepository {
	return &CalendarRepository{client: client, slots: slots, timezone: timezone, l: l}
}

// ScheduleTask finds a free slot for the task and creates the event.
// It returns the created event's provider id.
func (r *CalendarRepository) ScheduleTask(ctx context.Context, record model.TaskRecord, settings model.Settings) (string, error) {
	duration := record.EstimatedDuration
	if duration <= 0 {
		duration = 30
	}

	slot := r.slots.FindSlot(ctx, time.Duration(duration)*time.Minute, settings.ProductiveHours, settings.WorkStartTime)

	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:         "[Task] " + record.Task,
		Description:     composeEventDescription(record),
		StartTime:       slot.Start,
		EndTime:         slot.End,
		Timezone:        r.timezone,
		ColorID:         colorForPriority(record.Priority),
		ReminderMinutes: reminderMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("sync to google calendar: %w", err)
	}
	return created.ID, nil
}

// DeleteEvent removes the scheduled event by provider id.
func (r *CalendarRepository) DeleteEvent(ctx context.Context, providerID string) error {
	return r.client.DeleteEvent(ctx, "", providerID)
}

func composeEventDescription(record model.TaskRecord) string {
	url := ""
	if record.Context != nil {
		url = record.Context.URL
	}
	project := record.Project
	if project == "" {
		project = "General"
	}
	tags := "None"
	if len(record.Tags) > 0 {
		tags = strings.Join(record.Tags, ", ")
	}

	desc := fmt.Sprintf(
		"Captured from: %s\n\nOriginal text: %s\n\nPriority: %s\nProject: %s\nTags: %s",
		url, record.OriginalText, record.Priority, project, tags,
	)
	if record.Deadline != "" {
		desc += "\n\nDeadline: " + record.Deadline
	}
	return desc
}

// colorForPriority maps task priority to the Calendar color palette:
// red for high, yellow for medium, sage for low.
func colorForPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "11"
	case model.PriorityLow:
		return "2"
	default:
		return "5"
	}
}

// BusyLister adapts the Calendar client to the scheduling engine.
type BusyLister struct {
	client *gcalendar.Client
}

func NewBusyLister(client *gcalendar.Client) *BusyLister {
	return &BusyLister{client: client}
}

func (b *BusyLister) BusyIntervals(ctx context.Context, windowStart, windowEnd time.Time) ([]scheduling.Interval, error) {
	events, err := b.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    windowStart,
		TimeMax:    windowEnd,
		MaxResults: 100,
	})
	if err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(events))
	for _, ev := range events {
		intervals = append(intervals, scheduling.Interval{Start: ev.StartTime, End: ev.EndTime})
	}
	return intervals, nil
}
