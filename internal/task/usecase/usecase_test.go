package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"taskhub/internal/extraction"
	"taskhub/internal/model"
	"taskhub/internal/store"
	"taskhub/internal/task"
	"taskhub/internal/translation"
	"taskhub/pkg/aiprovider"
	"taskhub/pkg/log"
)

type promptFunc func(ctx context.Context, prompt string) (string, error)

func (f promptFunc) Prompt(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }

func (f promptFunc) Name() string { return "promptFunc" }

type fakeProviders struct {
	text aiprovider.TextPrompter
}

func (f *fakeProviders) Multimodal() (aiprovider.MultimodalPrompter, bool) { return nil, false }
func (f *fakeProviders) Text() (aiprovider.TextPrompter, bool)             { return f.text, f.text != nil }
func (f *fakeProviders) Summarizer() (aiprovider.Summarizer, bool)         { return nil, false }
func (f *fakeProviders) Translators() (aiprovider.TranslatorFactory, bool) { return nil, false }

type fakeSyncer struct {
	id      string
	err     error
	synced  []string
	deleted []string
}

func (f *fakeSyncer) SyncTask(ctx context.Context, record model.TaskRecord) (string, error) {
	f.synced = append(f.synced, record.ID)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func (f *fakeSyncer) DeleteRemote(ctx context.Context, providerID string) error {
	f.deleted = append(f.deleted, providerID)
	return f.err
}

type fakeScheduler struct {
	id      string
	err     error
	synced  []string
	deleted []string
}

func (f *fakeScheduler) ScheduleTask(ctx context.Context, record model.TaskRecord, settings model.Settings) (string, error) {
	f.synced = append(f.synced, record.ID)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func (f *fakeScheduler) DeleteEvent(ctx context.Context, providerID string) error {
	f.deleted = append(f.deleted, providerID)
	return f.err
}

type fakeAuth struct {
	authed bool
}

func (f *fakeAuth) IsAuthenticated(ctx context.Context) bool      { return f.authed }
func (f *fakeAuth) AccessToken(ctx context.Context) (string, error) { return "token", nil }
func (f *fakeAuth) InvalidateToken()                              {}
func (f *fakeAuth) Revoke(ctx context.Context) error              { return nil }

type fakeSource struct {
	pageCtx  model.CaptureContext
	selected string
	pageText string
	shotMIME string
	shot     []byte
	shotErr  error
}

func (f *fakeSource) Context(ctx context.Context) (model.CaptureContext, error) {
	return f.pageCtx, nil
}
func (f *fakeSource) Selection(ctx context.Context) (string, error) { return f.selected, nil }
func (f *fakeSource) PageText(ctx context.Context) (string, error)  { return f.pageText, nil }
func (f *fakeSource) Screenshot(ctx context.Context) (string, []byte, error) {
	return f.shotMIME, f.shot, f.shotErr
}

type fixture struct {
	uc        *implUseCase
	store     *store.Store
	providers *fakeProviders
	syncer    *fakeSyncer
	scheduler *fakeScheduler
	auth      *fakeAuth
	source    *fakeSource
}

var testNow = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := store.New(context.Background(), afero.NewMemMapFs(), "data/tasks.json", log.Discard())
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	providers := &fakeProviders{}
	f := &fixture{
		store:     st,
		providers: providers,
		syncer:    &fakeSyncer{id: "gt-1"},
		scheduler: &fakeScheduler{id: "ev-1"},
		auth:      &fakeAuth{},
		source: &fakeSource{
			pageCtx: model.CaptureContext{URL: "https://example.com/doc", Title: "Project Doc"},
		},
	}
	f.uc = New(Dependencies{
		Store:      st,
		Extractor:  extraction.NewEngine(providers, log.Discard()),
		Translator: translation.New(providers, log.Discard()),
		Source:     f.source,
		Auth:       f.auth,
		Tasks:      f.syncer,
		Calendar:   f.scheduler,
	}, log.Discard())
	f.uc.now = func() time.Time { return testNow }
	return f
}

func (f *fixture) settings(t *testing.T, mutate func(*model.Settings)) {
	t.Helper()
	s, err := f.store.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	mutate(&s)
	if err := f.store.SaveSettings(context.Background(), s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
}

func TestCaptureTaskEmptySelection(t *testing.T) {
	f := newFixture(t)
	if _, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "   "}); !errors.Is(err, task.ErrEmptyTask) {
		t.Fatalf("err = %v, want ErrEmptyTask", err)
	}
}

func TestCaptureTaskPersistsBeforeSyncDecision(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{
		SelectedText: "Review the budget draft",
		Context:      model.CaptureContext{URL: "https://example.com", Title: "Budget"},
	})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}

	if !res.SyncSkipped {
		t.Error("SyncSkipped = false, want true when not authenticated")
	}
	if !strings.HasPrefix(res.Record.ID, "task_") {
		t.Errorf("record id = %q, want task_ prefix", res.Record.ID)
	}
	if res.Record.Status != model.StatusTodo {
		t.Errorf("status = %q, want todo", res.Record.Status)
	}
	if res.Record.Order != testNow.UnixMilli() {
		t.Errorf("order = %d, want capture-time millis", res.Record.Order)
	}

	stored, err := f.store.Tasks(context.Background())
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d tasks, want 1", len(stored))
	}
	if len(f.syncer.synced) != 0 || len(f.scheduler.synced) != 0 {
		t.Error("remote sync attempted while unauthenticated")
	}
}

func TestCaptureTaskUsesTextProvider(t *testing.T) {
	f := newFixture(t)
	f.providers.text = promptFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"task":"Review budget draft","priority":"high","estimatedDuration":60,"project":"Finance","tags":["budget"]}`, nil
	})

	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "please review the budget draft"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}
	if res.Record.Task != "Review budget draft" {
		t.Errorf("task = %q", res.Record.Task)
	}
	if res.Record.Source != model.SourceAI {
		t.Errorf("source = %q, want ai", res.Record.Source)
	}
	if res.Record.Priority != model.PriorityHigh || res.Record.EstimatedDuration != 60 {
		t.Errorf("priority/duration = %s/%d", res.Record.Priority, res.Record.EstimatedDuration)
	}
}

func TestSaveMarksSyncedOnlyOnDualSuccess(t *testing.T) {
	f := newFixture(t)
	f.auth.authed = true

	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Ship the release notes"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}

	if !res.TasksSynced || !res.EventSynced {
		t.Fatalf("synced flags = %v/%v, want true/true", res.TasksSynced, res.EventSynced)
	}
	if !res.Record.SyncedToGoogle {
		t.Error("record not marked synced after dual success")
	}
	if res.Record.GoogleTaskID != "gt-1" || res.Record.GoogleEventID != "ev-1" {
		t.Errorf("provider ids = %q/%q", res.Record.GoogleTaskID, res.Record.GoogleEventID)
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 1 || !stored[0].SyncedToGoogle {
		t.Error("stored record not marked synced")
	}
}

func TestSavePartialSyncLeavesRecordUnmarked(t *testing.T) {
	f := newFixture(t)
	f.auth.authed = true
	f.scheduler.err = errors.New("calendar down")

	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Ship the release notes"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}

	if !res.TasksSynced || res.EventSynced {
		t.Fatalf("synced flags = %v/%v, want true/false", res.TasksSynced, res.EventSynced)
	}
	if res.Record.SyncedToGoogle {
		t.Error("record marked synced after partial failure")
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 1 {
		t.Fatalf("stored %d tasks, want 1", len(stored))
	}
	if stored[0].SyncedToGoogle || stored[0].GoogleTaskID != "" || stored[0].GoogleEventID != "" {
		t.Errorf("partial sync leaked marks: %+v", stored[0])
	}
}

func TestSaveSyncDisabledInSettings(t *testing.T) {
	f := newFixture(t)
	f.auth.authed = true
	f.settings(t, func(s *model.Settings) { s.GoogleSyncEnabled = false })

	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Water the plants"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}
	if !res.SyncSkipped {
		t.Error("SyncSkipped = false, want true when sync disabled")
	}
	if len(f.syncer.synced) != 0 {
		t.Error("sync attempted while disabled")
	}
}

func TestConsecutiveSavesGetDistinctIDs(t *testing.T) {
	f := newFixture(t)

	a, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "First"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}
	b, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Second"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}
	if a.Record.ID == b.Record.ID {
		t.Errorf("both saves got id %q", a.Record.ID)
	}
}

func TestManualCreateDefaults(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.ManualCreateTask(context.Background(), task.ManualCreateInput{
		Task:     "Call the dentist",
		Priority: "urgent!!",
	})
	if err != nil {
		t.Fatalf("ManualCreateTask: %v", err)
	}

	rec := res.Record
	if rec.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium for unknown input", rec.Priority)
	}
	if rec.EstimatedDuration != 30 {
		t.Errorf("duration = %d, want settings default 30", rec.EstimatedDuration)
	}
	if rec.Project != "General" {
		t.Errorf("project = %q, want General", rec.Project)
	}
	if rec.Source != model.SourceManual {
		t.Errorf("source = %q, want manual", rec.Source)
	}
	if rec.Context == nil || rec.Context.URL != "manual-entry" {
		t.Errorf("context = %+v, want manual-entry", rec.Context)
	}
	if rec.Tags == nil {
		t.Error("tags = nil, want empty slice")
	}
}

func TestManualCreateValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.uc.ManualCreateTask(context.Background(), task.ManualCreateInput{Task: "  "}); !errors.Is(err, task.ErrEmptyTask) {
		t.Errorf("blank task err = %v, want ErrEmptyTask", err)
	}
	if _, err := f.uc.ManualCreateTask(context.Background(), task.ManualCreateInput{
		Task:              "Quick ping",
		EstimatedDuration: 3,
	}); !errors.Is(err, task.ErrDurationOutOfRange) {
		t.Errorf("short duration err = %v, want ErrDurationOutOfRange", err)
	}
	if _, err := f.uc.ManualCreateTask(context.Background(), task.ManualCreateInput{
		Task:              "Marathon",
		EstimatedDuration: 481,
	}); !errors.Is(err, task.ErrDurationOutOfRange) {
		t.Errorf("long duration err = %v, want ErrDurationOutOfRange", err)
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 0 {
		t.Errorf("rejected inputs persisted %d tasks", len(stored))
	}
}

func TestAutoCapturePageNoContent(t *testing.T) {
	f := newFixture(t)
	f.source.pageText = "  \n  "

	if _, err := f.uc.AutoCapturePage(context.Background()); !errors.Is(err, task.ErrNoPageContent) {
		t.Fatalf("err = %v, want ErrNoPageContent", err)
	}
}

func TestAutoCapturePageUsesPageContext(t *testing.T) {
	f := newFixture(t)
	f.source.pageText = "Quarterly planning doc. Decide headcount by next week."

	res, err := f.uc.AutoCapturePage(context.Background())
	if err != nil {
		t.Fatalf("AutoCapturePage: %v", err)
	}
	if res.Record.Context == nil || res.Record.Context.URL != "https://example.com/doc" {
		t.Errorf("context = %+v, want page url", res.Record.Context)
	}
}

func TestCaptureScreenshotAttachesImage(t *testing.T) {
	f := newFixture(t)
	f.source.shotMIME = "image/png"
	f.source.shot = []byte{1, 2, 3}
	f.settings(t, func(s *model.Settings) { s.AIEnabled = false })

	res, err := f.uc.CaptureScreenshot(context.Background())
	if err != nil {
		t.Fatalf("CaptureScreenshot: %v", err)
	}
	if !res.Record.HasScreenshot {
		t.Error("HasScreenshot = false")
	}
	if !strings.HasPrefix(res.Record.Screenshot, "data:image/png;base64,") {
		t.Errorf("screenshot = %q, want data URL", res.Record.Screenshot)
	}
	if !strings.Contains(res.Record.Task, "Project Doc") {
		t.Errorf("fallback task = %q, want page title mention", res.Record.Task)
	}
}

func TestCaptureScreenshotSurfacesCaptureError(t *testing.T) {
	f := newFixture(t)
	f.source.shotErr = errors.New("no active tab")

	if _, err := f.uc.CaptureScreenshot(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 0 {
		t.Error("failed capture persisted a task")
	}
}

func TestProcessTranscriptEmpty(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.ProcessTranscript(context.Background(), task.TranscriptInput{Transcript: "  "})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Task != "No speech detected" {
		t.Fatalf("tasks = %+v, want single no-speech draft", out.Tasks)
	}
	if !out.FallbackUsed || out.UsedAudio {
		t.Errorf("flags = fallback %v, usedAudio %v", out.FallbackUsed, out.UsedAudio)
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 0 {
		t.Error("ProcessTranscript persisted drafts")
	}
}

func TestProcessAudioRecordingFallback(t *testing.T) {
	f := newFixture(t)
	f.settings(t, func(s *model.Settings) { s.AIEnabled = false })

	out, err := f.uc.ProcessAudioRecording(context.Background(), task.AudioInput{
		Audio:      []byte{1, 2},
		MIME:       "audio/webm",
		Transcript: "remind me to email the vendor",
	})
	if err != nil {
		t.Fatalf("ProcessAudioRecording: %v", err)
	}
	if !out.FallbackUsed || out.UsedAudio {
		t.Errorf("flags = fallback %v, usedAudio %v", out.FallbackUsed, out.UsedAudio)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("got %d drafts, want 1", len(out.Tasks))
	}
	if !strings.Contains(out.Tasks[0].Task, "email the vendor") {
		t.Errorf("fallback task = %q, want transcript text", out.Tasks[0].Task)
	}
}

func TestProcessTranscriptMeetingSummary(t *testing.T) {
	f := newFixture(t)
	f.providers.text = promptFunc(func(ctx context.Context, prompt string) (string, error) {
		return `[{"task":"Send minutes","priority":"high","estimatedDuration":15},{"task":"Book room","priority":"low","estimatedDuration":10}]`, nil
	})

	out, err := f.uc.ProcessTranscript(context.Background(), task.TranscriptInput{
		Transcript: "we agreed to send minutes and book a room",
		Mode:       extraction.ModeMeeting,
	})
	if err != nil {
		t.Fatalf("ProcessTranscript: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("got %d drafts, want 2", len(out.Tasks))
	}
	if !strings.Contains(out.Summary, "Action items (2)") {
		t.Errorf("summary missing action items:\n%s", out.Summary)
	}
	if !strings.Contains(out.Summary, "1. Send minutes (priority high, ~15 min)") {
		t.Errorf("summary missing numbered item:\n%s", out.Summary)
	}
	if !strings.Contains(out.Summary, "Total estimated time: 25 minutes") {
		t.Errorf("summary missing total:\n%s", out.Summary)
	}
}

func TestSaveAudioTasks(t *testing.T) {
	f := newFixture(t)

	drafts := []model.TaskDraft{
		{Task: "Send minutes", Priority: model.PriorityHigh, EstimatedDuration: 15, Tags: []string{}},
		{Task: "   "},
		{Task: "Book room", Priority: model.PriorityLow, EstimatedDuration: 10, Tags: []string{}},
	}
	results, err := f.uc.SaveAudioTasks(context.Background(), drafts)
	if err != nil {
		t.Fatalf("SaveAudioTasks: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (blank skipped)", len(results))
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 2 {
		t.Errorf("stored %d tasks, want 2", len(stored))
	}

	if _, err := f.uc.SaveAudioTasks(context.Background(), nil); !errors.Is(err, task.ErrNoDrafts) {
		t.Errorf("empty input err = %v, want ErrNoDrafts", err)
	}
}

func TestGenerateSummary(t *testing.T) {
	f := newFixture(t)

	got, err := f.uc.GenerateSummary(context.Background())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if got != "No tasks captured today." {
		t.Errorf("empty-day summary = %q", got)
	}

	seed := func(taskName, project string, minutes int, createdAt string) {
		rec := model.TaskRecord{
			TaskDraft: model.TaskDraft{Task: taskName, Priority: model.PriorityMedium, EstimatedDuration: minutes, Project: project},
			ID:        "task_" + taskName,
			CreatedAt: createdAt,
			Status:    model.StatusTodo,
		}
		if err := f.store.AppendTask(context.Background(), rec); err != nil {
			t.Fatalf("AppendTask: %v", err)
		}
	}
	seed("Write report", "Finance", 90, "2026-09-02T09:00:00Z")
	seed("Review PR", "", 30, "2026-09-02T09:30:00Z")
	seed("Old chore", "Home", 60, "2026-09-01T18:00:00Z")

	got, err = f.uc.GenerateSummary(context.Background())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	for _, want := range []string{
		"Tasks captured: 2",
		"Estimated time: 2.0 hours",
		"Finance (1 tasks, 1.5 hours)",
		"General (1 tasks, 0.5 hours)",
		"- Write report (medium, 90 min)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Old chore") {
		t.Errorf("summary includes yesterday's task:\n%s", got)
	}
}

func TestListTasksSortedByOrder(t *testing.T) {
	f := newFixture(t)

	for i, name := range []string{"c", "a", "b"} {
		rec := model.TaskRecord{
			TaskDraft: model.TaskDraft{Task: name},
			ID:        "task_" + name,
			Order:     int64(100 - i),
		}
		if err := f.store.AppendTask(context.Background(), rec); err != nil {
			t.Fatalf("AppendTask: %v", err)
		}
	}

	tasks, err := f.uc.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	var got []string
	for _, tk := range tasks {
		got = append(got, tk.Task)
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestUpdateTaskPartialEdit(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Initial task"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}

	high := model.PriorityHigh
	updated, err := f.uc.UpdateTask(context.Background(), res.Record.ID, task.UpdateInput{Priority: &high})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want high", updated.Priority)
	}
	if updated.Task != res.Record.Task {
		t.Errorf("task changed on priority-only edit: %q", updated.Task)
	}

	bad := 2
	if _, err := f.uc.UpdateTask(context.Background(), res.Record.ID, task.UpdateInput{EstimatedDuration: &bad}); !errors.Is(err, task.ErrDurationOutOfRange) {
		t.Errorf("err = %v, want ErrDurationOutOfRange", err)
	}
	blank := "  "
	if _, err := f.uc.UpdateTask(context.Background(), res.Record.ID, task.UpdateInput{Task: &blank}); !errors.Is(err, task.ErrEmptyTask) {
		t.Errorf("err = %v, want ErrEmptyTask", err)
	}
	if _, err := f.uc.UpdateTask(context.Background(), "missing", task.UpdateInput{Priority: &high}); !errors.Is(err, store.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestCycleStatus(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.CaptureTask(context.Background(), task.CaptureInput{SelectedText: "Cycle me"})
	if err != nil {
		t.Fatalf("CaptureTask: %v", err)
	}
	id := res.Record.ID

	steps := []struct {
		status    model.Status
		completed bool
	}{
		{model.StatusInProgress, false},
		{model.StatusDone, true},
		{model.StatusTodo, false},
	}
	for _, step := range steps {
		rec, err := f.uc.CycleStatus(context.Background(), id)
		if err != nil {
			t.Fatalf("CycleStatus: %v", err)
		}
		if rec.Status != step.status || rec.Completed != step.completed {
			t.Errorf("got %s/%v, want %s/%v", rec.Status, rec.Completed, step.status, step.completed)
		}
	}
}

func TestReorderTaskSwapsOrder(t *testing.T) {
	f := newFixture(t)
	for i, name := range []string{"a", "b"} {
		rec := model.TaskRecord{TaskDraft: model.TaskDraft{Task: name}, ID: "task_" + name, Order: int64(i)}
		if err := f.store.AppendTask(context.Background(), rec); err != nil {
			t.Fatalf("AppendTask: %v", err)
		}
	}

	if err := f.uc.ReorderTask(context.Background(), "task_a", "task_b"); err != nil {
		t.Fatalf("ReorderTask: %v", err)
	}
	tasks, _ := f.uc.ListTasks(context.Background())
	if tasks[0].Task != "b" || tasks[1].Task != "a" {
		t.Errorf("order after swap = %s, %s", tasks[0].Task, tasks[1].Task)
	}
}

func TestDeleteTaskRemovesRemoteCopies(t *testing.T) {
	f := newFixture(t)
	rec := model.TaskRecord{
		TaskDraft:      model.TaskDraft{Task: "Synced task"},
		ID:             "task_synced",
		SyncedToGoogle: true,
		GoogleTaskID:   "gt-9",
		GoogleEventID:  "ev-9",
	}
	if err := f.store.AppendTask(context.Background(), rec); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}

	if err := f.uc.DeleteTask(context.Background(), "task_synced"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 0 {
		t.Errorf("stored %d tasks after delete, want 0", len(stored))
	}
	if len(f.syncer.deleted) != 1 || f.syncer.deleted[0] != "gt-9" {
		t.Errorf("google task deletes = %v, want [gt-9]", f.syncer.deleted)
	}
	if len(f.scheduler.deleted) != 1 || f.scheduler.deleted[0] != "ev-9" {
		t.Errorf("calendar deletes = %v, want [ev-9]", f.scheduler.deleted)
	}
}

func TestDeleteTaskUnsyncedSkipsRemote(t *testing.T) {
	f := newFixture(t)
	rec := model.TaskRecord{TaskDraft: model.TaskDraft{Task: "Local only"}, ID: "task_local"}
	if err := f.store.AppendTask(context.Background(), rec); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}

	if err := f.uc.DeleteTask(context.Background(), "task_local"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(f.syncer.deleted) != 0 || len(f.scheduler.deleted) != 0 {
		t.Error("remote delete attempted for unsynced task")
	}
}

func TestDeleteTaskRemoteFailureStillSucceeds(t *testing.T) {
	f := newFixture(t)
	f.syncer.err = errors.New("gone already")
	rec := model.TaskRecord{
		TaskDraft:      model.TaskDraft{Task: "Synced task"},
		ID:             "task_synced",
		SyncedToGoogle: true,
		GoogleTaskID:   "gt-9",
	}
	if err := f.store.AppendTask(context.Background(), rec); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}

	if err := f.uc.DeleteTask(context.Background(), "task_synced"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 0 {
		t.Error("local record survived remote failure")
	}
}

func TestDeleteFromGoogleClearsSyncMarks(t *testing.T) {
	f := newFixture(t)
	rec := model.TaskRecord{
		TaskDraft:      model.TaskDraft{Task: "Synced task"},
		ID:             "task_synced",
		SyncedToGoogle: true,
		GoogleTaskID:   "gt-9",
		GoogleEventID:  "ev-9",
	}
	if err := f.store.AppendTask(context.Background(), rec); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}

	if err := f.uc.DeleteFromGoogle(context.Background(), rec); err != nil {
		t.Fatalf("DeleteFromGoogle: %v", err)
	}

	stored, _ := f.store.Tasks(context.Background())
	if len(stored) != 1 {
		t.Fatalf("stored %d tasks, want 1 (local copy kept)", len(stored))
	}
	if stored[0].SyncedToGoogle || stored[0].GoogleTaskID != "" || stored[0].GoogleEventID != "" {
		t.Errorf("sync marks not cleared: %+v", stored[0])
	}
	if len(f.syncer.deleted) != 1 || len(f.scheduler.deleted) != 1 {
		t.Error("remote copies not deleted")
	}
}
