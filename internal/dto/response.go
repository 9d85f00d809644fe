package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
}

// ErrorData is the error payload: a single message or a field-level map.
type ErrorData struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Respond writes the envelope with the HTTP status text as the status field.
func Respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		Message: message,
		Status:  http.StatusText(code),
		Data:    data,
	})
}
