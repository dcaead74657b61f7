package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskhub/pkg/response"
)

var (
	errDefaultDuration = errors.New("defaultDuration must be between 0 and 480 minutes")
	errProductiveHours = errors.New("productiveHours must be between 1 and 24")
	errAuthUnavailable = errors.New("google authentication is not configured")
)

func (srv *HTTPServer) authStatus(c *gin.Context) {
	authenticated := srv.auth != nil && srv.auth.IsAuthenticated(c.Request.Context())
	response.OK(c, gin.H{"authenticated": authenticated})
}

func (srv *HTTPServer) authURL(c *gin.Context) {
	if srv.auth == nil {
		response.BadRequest(c, errAuthUnavailable)
		return
	}
	state := uuid.NewString()
	response.OK(c, gin.H{
		"url":   srv.auth.AuthURL(state),
		"state": state,
	})
}

func (srv *HTTPServer) authCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.auth == nil {
		response.BadRequest(c, errAuthUnavailable)
		return
	}
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, errors.New("missing authorization code"))
		return
	}

	if err := srv.auth.Exchange(ctx, code); err != nil {
		srv.l.Errorf(ctx, "httpserver.authCallback: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"authenticated": true})
}

func (srv *HTTPServer) authRevoke(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.auth == nil {
		response.BadRequest(c, errAuthUnavailable)
		return
	}
	if err := srv.auth.Revoke(ctx); err != nil {
		// Local state is already cleared; the remote revoke is best
		// effort.
		srv.l.Warnf(ctx, "httpserver.authRevoke: %v", err)
	}
	response.OK(c, gin.H{"authenticated": false})
}
