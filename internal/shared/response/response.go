package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope returned by every failing endpoint:
// {"error": "...", "details": "...", "code": "..."}.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func ErrorWithCode(c *gin.Context, statusCode int, message, code string) {
	c.JSON(statusCode, ErrorBody{Error: message, Code: code})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message, details, code string) {
	c.JSON(statusCode, ErrorBody{Error: message, Details: details, Code: code})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, message, "VALIDATION_ERROR")
}

func NotFound(c *gin.Context, message string) {
	ErrorWithCode(c, 404, message, "NOT_FOUND")
}

func Conflict(c *gin.Context, message string) {
	ErrorWithCode(c, 409, message, "UNIQUE_VIOLATION")
}

func InternalServerError(c *gin.Context, message string) {
	ErrorWithCode(c, 500, message, "UNKNOWN_ERROR")
}
