package google

import (
	"context"
	"fmt"
	"sync"
	"time"

	"taskhub/internal/model"
	"taskhub/pkg/datemath"
	"taskhub/pkg/gtasks"
	"taskhub/pkg/log"
)

// TasksRepository syncs task records to Google Tasks.
type TasksRepository struct {
	client *gtasks.Client
	dates  *datemath.Parser
	l      log.Logger

	mu     sync.Mutex
	listID string
}

func NewTasksRepository(client *gtasks.Client, dates *datemath.Parser, l log.Logger) *TasksRepository {
	return &TasksRepository{client: client, dates: dates, l: l}
}

// SyncTask creates the remote task and returns its provider id.
func (r *TasksRepository) SyncTask(ctx context.Context, record model.TaskRecord) (string, error) {
	listID, err := r.defaultList(ctx)
	if err != nil {
		return "", err
	}

	req := gtasks.CreateTaskRequest{
		Title: record.Task,
		Notes: composeNotes(record),
	}
	if record.Deadline != "" {
		due, err := r.dates.Parse(record.Deadline, time.Now())
		if err != nil {
			// A garbled deadline drops the due date, not the sync.
			r.l.Debugf(ctx, "google tasks: unparseable deadline %q, skipping due date", record.Deadline)
		} else {
			req.Due = due
		}
	}

	created, err := r.client.CreateTask(ctx, listID, req)
	if err != nil {
		return "", fmt.Errorf("sync to google tasks: %w", err)
	}
	return created.ID, nil
}

// DeleteRemote removes the remote task by provider id.
func (r *TasksRepository) DeleteRemote(ctx context.Context, providerID string) error {
	return r.client.DeleteTask(ctx, "", providerID)
}

// defaultList resolves the target list once and caches it.
func (r *TasksRepository) defaultList(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listID != "" {
		return r.listID, nil
	}
	list, err := r.client.GetOrCreateDefaultList(ctx)
	if err != nil {
		return "", err
	}
	r.listID = list.ID
	return r.listID, nil
}

func composeNotes(record model.TaskRecord) string {
	url := ""
	originalText := record.OriginalText
	if record.Context != nil {
		url = record.Context.URL
	}

	project := record.Project
	if project == "" {
		project = "General"
	}
	duration := record.EstimatedDuration
	if duration <= 0 {
		duration = 30
	}

	notes := fmt.Sprintf(
		"Captured from: %s\n\nOriginal text: %s\n\nPriority: %s\nEstimated duration: %d minutes\nProject: %s",
		url, originalText, record.Priority, duration, project,
	)
	if record.HasScreenshot {
		notes += "\n\n\U0001F4F8 Screenshot attached (view in extension)"
	}
	return notes
}
