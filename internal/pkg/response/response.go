// Package response renders the JSON envelope every endpoint speaks:
// {"success": true, "data": ...} on the happy path, {"success": false,
// "error": {"code", "message", "details"?}} otherwise.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure envelope. code is a stable machine-readable
// identifier; message is for humans.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, nil),
	})
}

// ErrorWithDetails is Error with a per-field details payload, used for
// validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, details),
	})
}

func errorBody(code string, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	return body
}
