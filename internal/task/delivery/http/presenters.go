package http

import (
	"taskhub/internal/extraction"
	"taskhub/internal/model"
	"taskhub/internal/task"

	"github.com/gin-gonic/gin"
)

// --- Request DTOs ---

type captureReq struct {
	SelectedText string               `json:"selectedText" binding:"required"`
	Context      model.CaptureContext `json:"context"`
}

func (r captureReq) toInput() task.CaptureInput {
	return task.CaptureInput{
		SelectedText: r.SelectedText,
		Context:      r.Context,
	}
}

type manualCreateReq struct {
	Task              string                `json:"task" binding:"required"`
	Priority          string                `json:"priority"`
	EstimatedDuration int                   `json:"estimatedDuration"`
	Deadline          string                `json:"deadline"`
	Project           string                `json:"project"`
	Tags              []string              `json:"tags"`
	Context           *model.CaptureContext `json:"context"`
}

func (r manualCreateReq) toInput() task.ManualCreateInput {
	return task.ManualCreateInput{
		Task:              r.Task,
		Priority:          model.Priority(r.Priority),
		EstimatedDuration: r.EstimatedDuration,
		Deadline:          r.Deadline,
		Project:           r.Project,
		Tags:              r.Tags,
		Context:           r.Context,
	}
}

type updateReq struct {
	Task              *string `json:"task"`
	Priority          *string `json:"priority"`
	EstimatedDuration *int    `json:"estimatedDuration"`
	Deadline          *string `json:"deadline"`
	Project           *string `json:"project"`
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		Task:              r.Task,
		EstimatedDuration: r.EstimatedDuration,
		Deadline:          r.Deadline,
		Project:           r.Project,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	return input
}

type reorderReq struct {
	TargetID string `json:"targetId" binding:"required"`
}

type startRecordingReq struct {
	MimeType string `json:"mimeType"`
}

type audioChunkReq struct {
	// Chunk is the base64-encoded audio payload.
	Chunk string `json:"chunk" binding:"required"`
}

type transcriptPushReq struct {
	Text string `json:"text" binding:"required"`
}

type stopRecordingReq struct {
	Mode string `json:"mode"`
}

type processTranscriptReq struct {
	Transcript string `json:"transcript"`
	Mode       string `json:"mode"`
}

type saveAudioTasksReq struct {
	Tasks []model.TaskDraft `json:"tasks" binding:"required"`
}

type deleteFromGoogleReq struct {
	Task model.TaskRecord `json:"task" binding:"required"`
}

func extractionMode(s string) extraction.Mode {
	if s == string(extraction.ModeMeeting) {
		return extraction.ModeMeeting
	}
	return extraction.ModeQuick
}

// --- Response presenters ---

func newSaveResp(res task.SaveResult) gin.H {
	return gin.H{
		"task":        res.Record,
		"tasksSynced": res.TasksSynced,
		"eventSynced": res.EventSynced,
		"syncSkipped": res.SyncSkipped,
	}
}

func newSaveListResp(results []task.SaveResult) gin.H {
	items := make([]gin.H, 0, len(results))
	for _, res := range results {
		items = append(items, newSaveResp(res))
	}
	return gin.H{"results": items, "saved": len(items)}
}

func newAudioResp(out task.AudioOutput) gin.H {
	return gin.H{
		"tasks":            out.Tasks,
		"summary":          out.Summary,
		"usedAudio":        out.UsedAudio,
		"fallbackUsed":     out.FallbackUsed,
		"audioUnsupported": out.AudioUnsupported,
	}
}
