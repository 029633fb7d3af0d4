package middleware

import (
	"errors"
	"net/http"

	"zentherasoft-backend/internal/delivery/http/response"
	"zentherasoft-backend/pkg/apperror"
	"zentherasoft-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the context into the public error
// payload. AppErrors carry their own status and user-facing message; anything
// else is opaque to the caller and only logged server-side with full detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"error", err,
					"cause", appErr.Err,
					"request_id", requestID,
					"path", c.FullPath(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Unexpected error",
			"error", err,
			"request_id", requestID,
			"path", c.FullPath(),
		)
		response.Error(c, http.StatusInternalServerError, "Error al enviar el mensaje")
	}
}
