package dto

import "github.com/gin-gonic/gin"

// Every endpoint wraps its payload in this envelope.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

type ApiResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a SUCCESS envelope with the given HTTP code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, ApiResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error writes an ERROR envelope with a nil data field.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ApiResponse{
		Status:  StatusError,
		Message: message,
		Data:    nil,
	})
}
