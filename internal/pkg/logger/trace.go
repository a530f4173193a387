package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 定义 Context 中的 Key
const TraceIDKey = "trace_id"

// WithTraceID 把 trace_id 放入 ctx，HTTP 请求与定时任务共用
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// TraceID 取出 ctx 中的 trace_id，没有时为空串
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// ContextHandler 包装器，用于从 ctx 中提取 trace_id
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID := TraceID(ctx); traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}
