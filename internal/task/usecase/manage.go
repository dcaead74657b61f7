package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"taskhub/internal/model"
	"taskhub/internal/store"
	"taskhub/internal/task"
	"taskhub/pkg/settle"
)

// ListTasks returns all stored tasks sorted by their order key.
func (uc *implUseCase) ListTasks(ctx context.Context) ([]model.TaskRecord, error) {
	tasks, err := uc.store.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Order != tasks[j].Order {
			return tasks[i].Order < tasks[j].Order
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// UpdateTask applies a partial field edit.
func (uc *implUseCase) UpdateTask(ctx context.Context, id string, input task.UpdateInput) (model.TaskRecord, error) {
	if err := uc.validate.Struct(input); err != nil {
		return model.TaskRecord{}, mapValidationError(err)
	}
	if input.Task != nil && strings.TrimSpace(*input.Task) == "" {
		return model.TaskRecord{}, task.ErrEmptyTask
	}

	return uc.store.UpdateTask(ctx, id, func(r *model.TaskRecord) error {
		if input.Task != nil {
			r.Task = strings.TrimSpace(*input.Task)
		}
		if input.Priority != nil {
			r.Priority = input.Priority.Normalize()
		}
		if input.EstimatedDuration != nil {
			r.EstimatedDuration = *input.EstimatedDuration
		}
		if input.Deadline != nil {
			r.Deadline = *input.Deadline
		}
		if input.Project != nil {
			r.Project = *input.Project
		}
		return nil
	})
}

// CycleStatus advances todo -> in_progress -> done -> todo. The
// completed flag tracks the done state.
func (uc *implUseCase) CycleStatus(ctx context.Context, id string) (model.TaskRecord, error) {
	return uc.store.UpdateTask(ctx, id, func(r *model.TaskRecord) error {
		r.Status = r.Status.Next()
		r.Completed = r.Status == model.StatusDone
		return nil
	})
}

// ReorderTask swaps the sort keys of two tasks.
func (uc *implUseCase) ReorderTask(ctx context.Context, id, targetID string) error {
	return uc.store.SwapOrder(ctx, id, targetID)
}

// DeleteTask removes a task locally first, then best-effort deletes
// its remote copies when it was synced. Remote failures are logged
// and swallowed; the local delete already happened.
func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	removed, err := uc.store.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if removed.SyncedToGoogle {
		uc.deleteRemote(ctx, removed)
	}
	return nil
}

// DeleteFromGoogle removes only the remote copies of a record, then
// clears its sync marks locally when it is still stored.
func (uc *implUseCase) DeleteFromGoogle(ctx context.Context, record model.TaskRecord) error {
	uc.deleteRemote(ctx, record)

	if _, err := uc.store.UpdateTask(ctx, record.ID, func(r *model.TaskRecord) error {
		r.SyncedToGoogle = false
		r.GoogleTaskID = ""
		r.GoogleEventID = ""
		return nil
	}); err != nil && !errors.Is(err, store.ErrTaskNotFound) {
		// The record may have been deleted locally already.
		uc.l.Debugf(ctx, "task.DeleteFromGoogle clearing sync marks for %s: %v", record.ID, err)
	}
	return nil
}

func (uc *implUseCase) deleteRemote(ctx context.Context, record model.TaskRecord) {
	taskOut, eventOut := settle.Two(ctx,
		func(ctx context.Context) (struct{}, error) {
			if record.GoogleTaskID == "" || uc.tasks == nil {
				return struct{}{}, nil
			}
			return struct{}{}, uc.tasks.DeleteRemote(ctx, record.GoogleTaskID)
		},
		func(ctx context.Context) (struct{}, error) {
			if record.GoogleEventID == "" || uc.calendar == nil {
				return struct{}{}, nil
			}
			return struct{}{}, uc.calendar.DeleteEvent(ctx, record.GoogleEventID)
		},
	)
	if !taskOut.OK() {
		uc.l.Warnf(ctx, "task: deleting google task for %s: %v", record.ID, taskOut.Err)
	}
	if !eventOut.OK() {
		uc.l.Warnf(ctx, "task: deleting calendar event for %s: %v", record.ID, eventOut.Err)
	}
}
