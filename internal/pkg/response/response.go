package response

import "github.com/gin-gonic/gin"

// Envelope is the shape every endpoint answers with (rate-limit rejections
// excepted): {"success": bool, "message": string, "data": ...}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetails carries field-level detail alongside the message,
// used for validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Data:    details,
	})
}
