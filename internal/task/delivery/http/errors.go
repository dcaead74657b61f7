package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/capture"
	"taskhub/internal/store"
	"taskhub/internal/task"
	"taskhub/pkg/response"
)

// respondError translates domain errors into the `{success:false}`
// envelope. Unknown errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyTask),
		errors.Is(err, task.ErrDurationOutOfRange),
		errors.Is(err, task.ErrNoPageContent),
		errors.Is(err, task.ErrNoDrafts),
		errors.Is(err, capture.ErrAlreadyRecording),
		errors.Is(err, capture.ErrNotRecording),
		errors.Is(err, capture.ErrNoContent):
		response.Fail(c, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "task.http: %v", err)
		response.InternalError(c)
	}
}
