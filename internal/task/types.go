package task

import (
	"taskhub/internal/extraction"
	"taskhub/internal/model"
)

// CaptureInput is a selected-text capture from a page.
type CaptureInput struct {
	SelectedText string
	Context      model.CaptureContext
}

// ManualCreateInput is a task typed in by hand. Duration outside
// [5, 480] minutes is rejected; zero means "use the default".
type ManualCreateInput struct {
	Task              string         `json:"task" validate:"required"`
	Priority          model.Priority `json:"priority"`
	EstimatedDuration int            `json:"estimatedDuration" validate:"omitempty,gte=5,lte=480"`
	Deadline          string         `json:"deadline"`
	Project           string         `json:"project"`
	Tags              []string       `json:"tags"`
	Context           *model.CaptureContext `json:"context"`
}

// AudioInput is a finished recording handed over for extraction.
type AudioInput struct {
	Audio      []byte
	MIME       string
	Transcript string
	Mode       extraction.Mode
}

// TranscriptInput is a speech transcript without audio bytes.
type TranscriptInput struct {
	Transcript string
	Mode       extraction.Mode
}

// AudioOutput carries extracted drafts back for user review before
// saving. Meeting mode adds a generated summary.
type AudioOutput struct {
	Tasks            []model.TaskDraft
	Summary          string
	UsedAudio        bool
	FallbackUsed     bool
	AudioUnsupported bool
}

// UpdateInput is a partial edit of a stored task. Nil fields are left
// untouched.
type UpdateInput struct {
	Task              *string         `json:"task"`
	Priority          *model.Priority `json:"priority"`
	EstimatedDuration *int            `json:"estimatedDuration" validate:"omitempty,gte=5,lte=480"`
	Deadline          *string         `json:"deadline"`
	Project           *string         `json:"project"`
}

// SaveResult reports how a save's remote fan-out went. The record is
// always persisted locally regardless.
type SaveResult struct {
	Record       model.TaskRecord
	TasksSynced  bool
	EventSynced  bool
	SyncSkipped  bool // sync disabled or not authenticated
}
