// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success payload: {success, data, message?}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorBody is the uniform failure payload: {success:false, error:{...}}.
type ErrorBody struct {
	Success bool          `json:"success"`
	Error   *apperr.Error `json:"error"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Error writes the failure envelope with the error's own HTTP status and
// aborts the handler chain.
func Error(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Success: false, Error: appErr})
}
