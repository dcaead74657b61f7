package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.List)
	rg.POST("/capture", h.Capture)
	rg.POST("/manual", h.ManualCreate)
	rg.POST("/auto-capture", h.AutoCapture)
	rg.POST("/screenshot", h.CaptureScreenshot)
	rg.GET("/summary", h.Summary)
	rg.POST("/google-delete", h.DeleteFromGoogle)

	rg.PATCH("/:id", h.Update)
	rg.POST("/:id/cycle-status", h.CycleStatus)
	rg.POST("/:id/reorder", h.Reorder)
	rg.DELETE("/:id", h.Delete)

	audio := rg.Group("/audio")
	{
		audio.POST("/start", h.StartRecording)
		audio.POST("/chunk", h.AppendChunk)
		audio.POST("/transcript", h.AppendTranscript)
		audio.POST("/stop", h.StopRecording)
		audio.POST("/cancel", h.CancelRecording)
		audio.POST("/process-transcript", h.ProcessTranscript)
		audio.POST("/save", h.SaveAudioTasks)
	}
}
