package httpserver

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"taskhub/internal/capture"
	"taskhub/internal/model"
	"taskhub/pkg/response"
)

type pageStateReq struct {
	Context        model.CaptureContext `json:"context"`
	Selection      string               `json:"selection"`
	PageText       string               `json:"pageText"`
	Screenshot     string               `json:"screenshot"` // base64
	ScreenshotMime string               `json:"screenshotMime"`
}

// updatePageState stores the latest page snapshot pushed by the
// browser side. Capture operations read from it.
func (srv *HTTPServer) updatePageState(c *gin.Context) {
	var req pageStateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	var shot []byte
	if req.Screenshot != "" {
		data, err := base64.StdEncoding.DecodeString(req.Screenshot)
		if err != nil {
			response.BadRequest(c, err)
			return
		}
		shot = data
	}

	srv.pageState.Update(capture.Snapshot{
		Context:        req.Context,
		Selection:      req.Selection,
		PageText:       req.PageText,
		ScreenshotMIME: req.ScreenshotMime,
		Screenshot:     shot,
	})
	response.OK(c, gin.H{})
}
