package redis

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/pkg/logger"
	"context"
	log "log/slog"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端连接，未配置地址时跳过，统计缓存随之关闭
func InitRedis(cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		log.Warn("Redis address not configured, stats cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool {
	return Rdb != nil
}

// NewLocker 基于当前客户端的分布式锁，Redis 未配置时返回 nil
func NewLocker() *redislock.Client {
	if Rdb == nil {
		return nil
	}
	return redislock.New(Rdb)
}
