package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// LogApi writes one access-log line per request, tagged with the id
// minted by RequestID so log lines and error responses correlate.
func LogApi() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys["request_id"].(string)
		return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s | %s%s\n",
			param.TimeStamp.Format(time.RFC3339),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			requestID,
			param.ErrorMessage,
		)
	})
}
