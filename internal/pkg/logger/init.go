package logger

import (
	"Pulseboard/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 安装默认 slog：stdout JSON，配置了 Logstash 时把带 trace_id 的日志同时上报
func InitLogger(cfg config.LogstashConfig) {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.Address != "" {
		conn, err := net.Dial("tcp", cfg.Address)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})

			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, &RemoteFilterHandler{next: hRemote}},
			}
			LogWriter = conn
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
