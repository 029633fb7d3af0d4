package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public wire contract of the API is deliberately tiny: success is
// {"success":true}, failure is {"error":"<message>"}. No per-field detail,
// request ids or internal context ever travels in the body; the request id
// goes out as the X-Request-ID header instead.

// SuccessBody is the success payload shape
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody is the failure payload shape
type ErrorBody struct {
	Error string `json:"error"`
}

// Success sends the public success payload
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// Error sends the public error payload. Message is the only detail exposed.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
