package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// 审计日志最多保留的响应体字节数
const auditBodyLimit = 4096

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if remain := auditBodyLimit - r.body.Len(); remain > 0 {
		if len(b) > remain {
			r.body.Write(b[:remain])
		} else {
			r.body.Write(b)
		}
	}
	return r.ResponseWriter.Write(b)
}

// AuditMiddleware 记录请求与响应；健康检查不记录，失败响应升级为 warn
func AuditMiddleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil && c.Request.Method != http.MethodGet {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", string(reqBody)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		level := log.LevelInfo
		if c.Writer.Status() >= http.StatusBadRequest {
			level = log.LevelWarn
		}
		log.Log(ctx, level, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", w.body.String()),
		)
	}
}
