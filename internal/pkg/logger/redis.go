package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultSlowRedis = 100 * time.Millisecond
	// 缓存值是整段 JSON，日志中只保留前缀
	maxLoggedArgs = 256
)

type RedisLoggerHook struct {
	slowThreshold time.Duration
}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{slowThreshold: defaultSlowRedis}
}

// DialHook 记录建立连接失败
func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

// ProcessHook 记录单条命令的错误与慢查询，redis.Nil 视为正常未命中
func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if err == nil && elapsed <= s.slowThreshold {
			return nil
		}
		if err != nil && (errors.Is(err, redis.Nil) || ignorableRedisError(cmd.Name(), err)) {
			return err
		}

		fields := []any{
			log.String("command", cmd.Name()),
			log.String("args", redisArgs(cmd)),
			log.Duration("latency", elapsed),
		}
		if err != nil {
			log.ErrorContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		} else {
			log.WarnContext(ctx, "Redis Slow", fields...)
		}
		return err
	}
}

// ProcessPipelineHook 记录管道命令的错误与慢查询
func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		fields := []any{
			log.Int("cmd_count", len(cmds)),
			log.Duration("latency", elapsed),
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			log.ErrorContext(ctx, "Redis Pipeline Error", append(fields, log.Any("err", err))...)
		} else if elapsed > s.slowThreshold {
			log.WarnContext(ctx, "Redis Pipeline Slow", fields...)
		}
		return err
	}
}

func redisArgs(cmd redis.Cmder) string {
	name := cmd.Name()
	if name == "auth" || name == "hello" {
		return "[PROTECTED]"
	}
	args := fmt.Sprint(cmd.Args())
	if len(args) > maxLoggedArgs {
		args = args[:maxLoggedArgs] + "..."
	}
	return args
}

// ignorableRedisError 旧版本服务端不支持 CLIENT SETINFO，握手时的报错可以忽略
func ignorableRedisError(name string, err error) bool {
	msg := err.Error()
	return msg == "ERR no such key" || (name == "client" && strings.Contains(msg, "setinfo"))
}
