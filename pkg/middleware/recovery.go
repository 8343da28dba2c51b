package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-server-go/pkg/response"
)

// Recovery converts panics into 500 responses. The panic value and
// stack stay in the logs; the client only sees the request ID.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			requestID := GetRequestID(c)
			logger.Error(
				"panic recovered",
				slog.String("request_id", requestID),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("client_ip", c.ClientIP()),
				slog.Any("error", recovered),
				slog.String("stack", string(debug.Stack())),
			)

			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred.", gin.H{
				"request_id": requestID,
			})
			c.Abort()
		}()

		c.Next()
	}
}
