package middleware

import (
	"Pulseboard/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceMiddleware 沿用上游传入的 trace id，没有时生成一个，并回写到响应头
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))

		c.Header(traceHeader, traceID)
		c.Next()
	}
}
