package task

import (
	"context"

	"taskhub/internal/model"
)

// UseCase defines the business logic interface for the task domain:
// the capture pipeline, the sync fan-out, and the lifecycle mutations
// the UI performs on stored tasks.
type UseCase interface {
	// CaptureTask extracts a task from selected text and saves it.
	CaptureTask(ctx context.Context, input CaptureInput) (SaveResult, error)

	// ManualCreateTask validates and saves a hand-entered task.
	ManualCreateTask(ctx context.Context, input ManualCreateInput) (SaveResult, error)

	// AutoCapturePage extracts a task from the active page's text.
	AutoCapturePage(ctx context.Context) (SaveResult, error)

	// CaptureScreenshot grabs the visible page, extracts a task from
	// the image, and saves it with the screenshot attached.
	CaptureScreenshot(ctx context.Context) (SaveResult, error)

	// ProcessAudioRecording extracts drafts from a recording, trying
	// multimodal audio first and the transcript second. Drafts are
	// returned for review, not saved.
	ProcessAudioRecording(ctx context.Context, input AudioInput) (AudioOutput, error)

	// ProcessTranscript extracts drafts from a bare transcript.
	ProcessTranscript(ctx context.Context, input TranscriptInput) (AudioOutput, error)

	// SaveAudioTasks persists previously reviewed drafts, one save
	// (with sync fan-out) per draft.
	SaveAudioTasks(ctx context.Context, drafts []model.TaskDraft) ([]SaveResult, error)

	// GenerateSummary renders a daily report of today's tasks.
	GenerateSummary(ctx context.Context) (string, error)

	// ListTasks returns all stored tasks sorted by their order key.
	ListTasks(ctx context.Context) ([]model.TaskRecord, error)

	// UpdateTask applies a partial field edit.
	UpdateTask(ctx context.Context, id string, input UpdateInput) (model.TaskRecord, error)

	// CycleStatus advances todo -> in_progress -> done -> todo.
	CycleStatus(ctx context.Context, id string) (model.TaskRecord, error)

	// ReorderTask swaps the sort keys of two tasks.
	ReorderTask(ctx context.Context, id, targetID string) error

	// DeleteTask removes a task locally first, then best-effort
	// deletes its remote copies when it was synced.
	DeleteTask(ctx context.Context, id string) error

	// DeleteFromGoogle removes only the remote copies of a record.
	DeleteFromGoogle(ctx context.Context, record model.TaskRecord) error
}
