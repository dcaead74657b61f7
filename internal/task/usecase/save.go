package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/model"
	"taskhub/internal/task"
	"taskhub/pkg/settle"
)

// save runs the common persistence path: translate, promote to a
// record, persist locally, then fan out to Google. Remote failures
// never fail the save; they only leave the record unmarked.
func (uc *implUseCase) save(ctx context.Context, draft model.TaskDraft, settings model.Settings) (task.SaveResult, error) {
	if settings.TranslationEnabled && uc.translator != nil {
		draft = uc.translator.Translate(ctx, draft, settings.TranslationLanguage)
	}

	record := uc.promote(draft)
	// Local persistence comes strictly first. A crash mid-sync loses
	// remote copies, never the task itself.
	if err := uc.store.AppendTask(ctx, record); err != nil {
		uc.l.Errorf(ctx, "task.save AppendTask: %v", err)
		return task.SaveResult{}, err
	}

	result := task.SaveResult{Record: record}
	if !uc.syncEligible(ctx, settings) {
		result.SyncSkipped = true
		return result, nil
	}

	uc.syncRemote(ctx, &result, record, settings)
	return result, nil
}

func (uc *implUseCase) syncEligible(ctx context.Context, settings model.Settings) bool {
	if !settings.GoogleSyncEnabled || uc.tasks == nil || uc.calendar == nil {
		return false
	}
	return uc.auth != nil && uc.auth.IsAuthenticated(ctx)
}

// syncRemote fans out to Google Tasks and Calendar concurrently. The
// record is marked synced, with both provider ids, only when both
// branches succeed; a partial result leaves it unmarked for a future
// retry.
func (uc *implUseCase) syncRemote(ctx context.Context, result *task.SaveResult, record model.TaskRecord, settings model.Settings) {
	taskOut, eventOut := settle.Two(ctx,
		func(ctx context.Context) (string, error) {
			return uc.tasks.SyncTask(ctx, record)
		},
		func(ctx context.Context) (string, error) {
			return uc.calendar.ScheduleTask(ctx, record, settings)
		},
	)

	result.TasksSynced = taskOut.OK()
	result.EventSynced = eventOut.OK()
	if !taskOut.OK() {
		uc.l.Warnf(ctx, "task.save google tasks sync failed for %s: %v", record.ID, taskOut.Err)
	}
	if !eventOut.OK() {
		uc.l.Warnf(ctx, "task.save calendar sync failed for %s: %v", record.ID, eventOut.Err)
	}
	if !taskOut.OK() || !eventOut.OK() {
		return
	}

	updated, err := uc.store.UpdateTask(ctx, record.ID, func(r *model.TaskRecord) error {
		r.SyncedToGoogle = true
		r.GoogleTaskID = taskOut.Value
		r.GoogleEventID = eventOut.Value
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.save marking %s synced: %v", record.ID, err)
		return
	}
	result.Record = updated
}

// promote turns a reviewed draft into a persisted record.
func (uc *implUseCase) promote(draft model.TaskDraft) model.TaskRecord {
	now := uc.now()
	return model.TaskRecord{
		TaskDraft: draft,
		ID:        newTaskID(now),
		CreatedAt: now.Format(time.RFC3339),
		Status:    model.StatusTodo,
		Order:     now.UnixMilli(),
	}
}

// newTaskID builds the record id. The random suffix keeps ids unique
// when two captures land in the same millisecond.
func newTaskID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("task_%d_%s", now.UnixMilli(), suffix)
}
