package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"taskhub/internal/capture"
	"taskhub/internal/extraction"
	"taskhub/internal/model"
	"taskhub/internal/task"
)

// CaptureTask extracts a task from selected text and saves it.
func (uc *implUseCase) CaptureTask(ctx context.Context, input task.CaptureInput) (task.SaveResult, error) {
	text := strings.TrimSpace(input.SelectedText)
	if text == "" {
		return task.SaveResult{}, task.ErrEmptyTask
	}

	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.SaveResult{}, err
	}

	drafts := uc.extractor.Extract(ctx, extraction.Input{
		Signal:   model.TextSignal(text),
		Context:  input.Context,
		Settings: settings,
	})
	return uc.save(ctx, drafts[0], settings)
}

// ManualCreateTask validates and saves a hand-entered task.
func (uc *implUseCase) ManualCreateTask(ctx context.Context, input task.ManualCreateInput) (task.SaveResult, error) {
	input.Task = strings.TrimSpace(input.Task)
	if err := uc.validate.Struct(input); err != nil {
		return task.SaveResult{}, mapValidationError(err)
	}

	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.SaveResult{}, err
	}

	duration := input.EstimatedDuration
	if duration == 0 {
		duration = settings.DefaultDuration
		if duration <= 0 {
			duration = 30
		}
	}
	project := input.Project
	if project == "" {
		project = "General"
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	captureCtx := input.Context
	if captureCtx == nil {
		captureCtx = &model.CaptureContext{
			URL:       "manual-entry",
			Title:     "Manual Entry",
			Timestamp: uc.now().Format(time.RFC3339),
		}
	}

	draft := model.TaskDraft{
		Task:              input.Task,
		Priority:          input.Priority.Normalize(),
		EstimatedDuration: duration,
		Deadline:          input.Deadline,
		Project:           project,
		Tags:              tags,
		Source:            model.SourceManual,
		OriginalText:      input.Task,
		Context:           captureCtx,
	}
	return uc.save(ctx, draft, settings)
}

// AutoCapturePage extracts a task from the active page's text.
func (uc *implUseCase) AutoCapturePage(ctx context.Context) (task.SaveResult, error) {
	text, err := uc.source.PageText(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "task.AutoCapturePage reading page: %v", err)
		return task.SaveResult{}, task.ErrNoPageContent
	}
	text = capture.BoundPageText(text)
	if text == "" {
		return task.SaveResult{}, task.ErrNoPageContent
	}

	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.SaveResult{}, err
	}
	pageCtx := uc.pageContext(ctx)

	drafts := uc.extractor.Extract(ctx, extraction.Input{
		Signal:   model.TextSignal(text),
		Context:  pageCtx,
		Settings: settings,
	})
	return uc.save(ctx, drafts[0], settings)
}

// CaptureScreenshot grabs the visible page, extracts a task from the
// image, and saves it with the screenshot attached.
func (uc *implUseCase) CaptureScreenshot(ctx context.Context) (task.SaveResult, error) {
	mime, data, err := uc.source.Screenshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.CaptureScreenshot: %v", err)
		return task.SaveResult{}, err
	}

	settings, err := uc.store.Settings(ctx)
	if err != nil {
		return task.SaveResult{}, err
	}
	pageCtx := uc.pageContext(ctx)

	drafts := uc.extractor.Extract(ctx, extraction.Input{
		Signal:   model.ImageSignal(mime, data),
		Context:  pageCtx,
		Settings: settings,
	})

	draft := drafts[0]
	draft.Screenshot = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	draft.HasScreenshot = true
	return uc.save(ctx, draft, settings)
}

// pageContext reads page metadata from the capture source, degrading
// to a timestamp-only context when the source cannot provide it.
func (uc *implUseCase) pageContext(ctx context.Context) model.CaptureContext {
	pageCtx, err := uc.source.Context(ctx)
	if err != nil {
		uc.l.Debugf(ctx, "task: page context unavailable: %v", err)
		pageCtx = model.CaptureContext{}
	}
	if pageCtx.Timestamp == "" {
		pageCtx.Timestamp = uc.now().Format(time.RFC3339)
	}
	return pageCtx
}

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Task":
				return task.ErrEmptyTask
			case "EstimatedDuration":
				return task.ErrDurationOutOfRange
			}
		}
	}
	return err
}
