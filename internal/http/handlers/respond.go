package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geocoder89/userhub/internal/http/middlewares"
)

// APIError is the wire shape for every failed request:
// {"statusCode": 404, "message": "...", ...}
type APIError struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	RequestID  string      `json:"requestId,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get(middlewares.CtxRequestID)

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.JSON(status, APIError{
		StatusCode: status,
		Message:    message,
		RequestID:  requestIDFrom(ctx),
		Details:    details,
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, message, nil)
}
