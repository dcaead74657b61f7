package model

// Priority buckets for tasks. Anything else coerces to medium.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Normalize maps unknown priorities to PriorityMedium.
func (p Priority) Normalize() Priority {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	default:
		return PriorityMedium
	}
}

// Status is the workflow state of a stored task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Next returns the status the task cycles into.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Source identifies how a task was captured.
const (
	SourceAI           = "ai"
	SourceFallback     = "fallback"
	SourceAudioQuick   = "audio-quick"
	SourceAudioMeeting = "audio-meeting"
	SourceScreenshotAI = "screenshot-ai"
	SourceManual       = "manual"
)

// CaptureContext is the page context active at capture time.
type CaptureContext struct {
	URL              string `json:"url,omitempty"`
	Title            string `json:"title,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
	SelectedText     string `json:"selectedText,omitempty"`
	FullEmailContext string `json:"fullEmailContext,omitempty"`
}

// TaskDraft is an extracted task before it is persisted. Drafts come
// out of the extraction engine or are supplied directly for manual
// creation.
type TaskDraft struct {
	Task              string          `json:"task"`
	Priority          Priority        `json:"priority"`
	EstimatedDuration int             `json:"estimatedDuration"` // minutes
	Deadline          string          `json:"deadline,omitempty"`
	Project           string          `json:"project,omitempty"`
	Tags              []string        `json:"tags"`
	Assignee          string          `json:"assignee,omitempty"`
	Source            string          `json:"source"`
	OriginalText      string          `json:"originalText,omitempty"`
	Context           *CaptureContext `json:"context,omitempty"`
	Screenshot        string          `json:"screenshot,omitempty"` // data URL
	HasScreenshot     bool            `json:"hasScreenshot,omitempty"`
}

// TaskRecord is a persisted task.
type TaskRecord struct {
	TaskDraft

	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"` // RFC3339
	Completed bool   `json:"completed"`
	Status    Status `json:"status"`
	Order     int64  `json:"order"`

	SyncedToGoogle bool   `json:"syncedToGoogle"`
	GoogleTaskID   string `json:"googleTaskId,omitempty"`
	GoogleEventID  string `json:"googleEventId,omitempty"`
}
