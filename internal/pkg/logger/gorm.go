package logger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

const defaultSlowSQL = 200 * time.Millisecond

// SlogGormLogger 把 gorm 的 SQL 日志转到 slog；成功语句只在 Debug 级别输出
type SlogGormLogger struct {
	LogLevel      logger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger() *SlogGormLogger {
	return &SlogGormLogger{LogLevel: logger.Warn, SlowThreshold: defaultSlowSQL}
}

func (l *SlogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		slog.InfoContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		slog.WarnContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		slog.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	msg := "SQL " + sqlOperation(sql)

	fields := []any{
		slog.String("sql", sql),
		slog.Duration("latency", elapsed),
		slog.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, logger.ErrRecordNotFound) && l.LogLevel >= logger.Error:
		slog.ErrorContext(ctx, msg+" Error", append(fields, slog.Any("err", err))...)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= logger.Warn:
		slog.WarnContext(ctx, msg+" Slow", fields...)
	case l.LogLevel >= logger.Info:
		slog.DebugContext(ctx, msg, fields...)
	}
}

// sqlOperation 取语句的第一个关键字，如 SELECT / UPDATE
func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "Query"
	}
	return strings.ToUpper(fields[0])
}
