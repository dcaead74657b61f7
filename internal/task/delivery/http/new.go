package http

import (
	"github.com/gin-gonic/gin"

	"taskhub/internal/capture"
	"taskhub/internal/task"
	"taskhub/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Capture(c *gin.Context)
	ManualCreate(c *gin.Context)
	AutoCapture(c *gin.Context)
	CaptureScreenshot(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	CycleStatus(c *gin.Context)
	Reorder(c *gin.Context)
	Delete(c *gin.Context)
	DeleteFromGoogle(c *gin.Context)
	Summary(c *gin.Context)

	StartRecording(c *gin.Context)
	AppendChunk(c *gin.Context)
	AppendTranscript(c *gin.Context)
	StopRecording(c *gin.Context)
	CancelRecording(c *gin.Context)
	ProcessTranscript(c *gin.Context)
	SaveAudioTasks(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       task.UseCase
	recorder *capture.Recorder
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, recorder *capture.Recorder) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		recorder: recorder,
	}
}
