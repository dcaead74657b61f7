package httpserver

import (
	"github.com/gin-gonic/gin"

	"taskhub/internal/model"
	"taskhub/pkg/response"
)

func (srv *HTTPServer) getSettings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := srv.store.Settings(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.getSettings: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

func (srv *HTTPServer) saveSettings(c *gin.Context) {
	ctx := c.Request.Context()

	// Bind over the current values so a partial body only changes the
	// keys it names.
	settings, err := srv.store.Settings(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.saveSettings: %v", err)
		response.InternalError(c)
		return
	}
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := validateSettings(settings); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := srv.store.SaveSettings(ctx, settings); err != nil {
		srv.l.Errorf(ctx, "httpserver.saveSettings: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

func validateSettings(s model.Settings) error {
	if s.DefaultDuration < 0 || s.DefaultDuration > 480 {
		return errDefaultDuration
	}
	if s.ProductiveHours < 1 || s.ProductiveHours > 24 {
		return errProductiveHours
	}
	return nil
}
