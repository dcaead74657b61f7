package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with success=true merged into the payload.
// Payload keys are flattened into the body, matching the command surface
// contract `{success: bool, ...payload}`.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail sends `{success:false, error:...}` with the given status code.
func Fail(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// BadRequest sends a 400 failure.
func BadRequest(c *gin.Context, err error) {
	Fail(c, http.StatusBadRequest, err)
}

// NotFound sends a 404 failure.
func NotFound(c *gin.Context, err error) {
	Fail(c, http.StatusNotFound, err)
}

// InternalError sends a 500 failure with a generic message so internal
// details never leak to the UI layer.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   DefaultErrorMessage,
	})
}

// Unauthorized sends a 401 failure.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "not authenticated"})
}
