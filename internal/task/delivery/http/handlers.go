package http

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"taskhub/internal/task"
	"taskhub/pkg/response"
)

// Capture extracts a task from selected text and saves it.
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	var req captureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	res, err := h.uc.CaptureTask(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newSaveResp(res))
}

// ManualCreate validates and saves a hand-entered task.
func (h *handler) ManualCreate(c *gin.Context) {
	ctx := c.Request.Context()

	var req manualCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	res, err := h.uc.ManualCreateTask(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newSaveResp(res))
}

// AutoCapture extracts a task from the active page's text.
func (h *handler) AutoCapture(c *gin.Context) {
	res, err := h.uc.AutoCapturePage(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newSaveResp(res))
}

// CaptureScreenshot grabs the visible page and extracts a task from
// the image.
func (h *handler) CaptureScreenshot(c *gin.Context) {
	res, err := h.uc.CaptureScreenshot(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newSaveResp(res))
}

// List returns all stored tasks sorted by order.
func (h *handler) List(c *gin.Context) {
	tasks, err := h.uc.ListTasks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"tasks": tasks})
}

// Update applies a partial field edit to a stored task.
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	rec, err := h.uc.UpdateTask(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"task": rec})
}

// CycleStatus advances the task's workflow status.
func (h *handler) CycleStatus(c *gin.Context) {
	rec, err := h.uc.CycleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"task": rec})
}

// Reorder swaps the task's sort key with the target's.
func (h *handler) Reorder(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.ReorderTask(c.Request.Context(), c.Param("id"), req.TargetID); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// Delete removes a task locally and best-effort remotely.
func (h *handler) Delete(c *gin.Context) {
	if err := h.uc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// DeleteFromGoogle removes only the remote copies of a record.
func (h *handler) DeleteFromGoogle(c *gin.Context) {
	var req deleteFromGoogleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteFromGoogle(c.Request.Context(), req.Task); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// Summary renders the daily report.
func (h *handler) Summary(c *gin.Context) {
	summary, err := h.uc.GenerateSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"summary": summary})
}

// StartRecording opens the exclusive recording session.
func (h *handler) StartRecording(c *gin.Context) {
	var req startRecordingReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, err)
		return
	}

	if err := h.recorder.Start(req.MimeType); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"recording": true})
}

// AppendChunk adds one base64 audio chunk to the active session.
func (h *handler) AppendChunk(c *gin.Context) {
	var req audioChunkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Chunk)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.recorder.AppendChunk(data); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// AppendTranscript adds live speech-recognition text to the session.
func (h *handler) AppendTranscript(c *gin.Context) {
	var req transcriptPushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.recorder.AppendTranscript(req.Text); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// StopRecording closes the session and runs extraction on it. Drafts
// come back for review; nothing is persisted yet.
func (h *handler) StopRecording(c *gin.Context) {
	ctx := c.Request.Context()

	var req stopRecordingReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, err)
		return
	}

	signal, err := h.recorder.Stop()
	if err != nil {
		h.respondError(c, err)
		return
	}

	out, err := h.uc.ProcessAudioRecording(ctx, task.AudioInput{
		Audio:      signal.Audio,
		MIME:       signal.AudioMIME,
		Transcript: signal.LiveTranscript,
		Mode:       extractionMode(req.Mode),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newAudioResp(out))
}

// CancelRecording abandons the in-flight session.
func (h *handler) CancelRecording(c *gin.Context) {
	h.recorder.Cancel()
	response.OK(c, gin.H{})
}

// ProcessTranscript extracts drafts from a bare transcript.
func (h *handler) ProcessTranscript(c *gin.Context) {
	var req processTranscriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.ProcessTranscript(c.Request.Context(), task.TranscriptInput{
		Transcript: req.Transcript,
		Mode:       extractionMode(req.Mode),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newAudioResp(out))
}

// SaveAudioTasks persists previously reviewed drafts.
func (h *handler) SaveAudioTasks(c *gin.Context) {
	var req saveAudioTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	results, err := h.uc.SaveAudioTasks(c.Request.Context(), req.Tasks)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, newSaveListResp(results))
}
