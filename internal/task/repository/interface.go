package repository

import (
	"context"

	"taskhub/internal/model"
)

// TaskSyncer pushes task records to a remote task-list provider.
type TaskSyncer interface {
	// SyncTask creates the remote task and returns its provider id.
	SyncTask(ctx context.Context, record model.TaskRecord) (string, error)

	// DeleteRemote removes the remote task by provider id.
	DeleteRemote(ctx context.Context, providerID string) error
}

// CalendarScheduler books calendar time for a task record.
type CalendarScheduler interface {
	// ScheduleTask finds a slot, creates the event, and returns its
	// provider id.
	ScheduleTask(ctx context.Context, record model.TaskRecord, settings model.Settings) (string, error)

	// DeleteEvent removes the remote event by provider id.
	DeleteEvent(ctx context.Context, providerID string) error
}
