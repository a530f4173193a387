package redis

import (
	"Pulseboard/internal/pkg/consts"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// StatsCache 统计接口结果缓存。键中带有代数，平台增删时自增代数使旧结果全部失效
type StatsCache struct {
	maxTTL time.Duration
	now    func() time.Time
}

func NewStatsCache(maxTTL time.Duration) *StatsCache {
	return &StatsCache{maxTTL: maxTTL, now: time.Now}
}

// WithClock 替换计算过期时间所用的时钟
func (s *StatsCache) WithClock(now func() time.Time) *StatsCache {
	return &StatsCache{maxTTL: s.maxTTL, now: now}
}

func (s *StatsCache) enabled() bool {
	return s != nil && Enabled()
}

func (s *StatsCache) key(ctx context.Context, endpoint string, params []string) (string, error) {
	gen, err := GetValue(ctx, consts.StatsGenerationKey)
	if err != nil {
		return "", err
	}
	if gen == "" {
		gen = "0"
	}
	return consts.StatsCacheKey + endpoint + ":" + gen + ":" + strings.Join(params, "|"), nil
}

// Load 先按当前代数读缓存，未命中时调用 load，并把结果写回读取时的同一个键。
// 键在 load 之前确定：load 期间发生的失效会把代数推到新值，旧结果只会落在旧代数下。
// Redis 不可用或出错时直接调用 load。
func Load[T any](ctx context.Context, s *StatsCache, endpoint string, params []string, load func() (T, error)) (T, error) {
	if !s.enabled() {
		return load()
	}
	key, err := s.key(ctx, endpoint, params)
	if err != nil {
		return load()
	}

	var cached T
	if s.get(ctx, key, &cached) {
		return cached, nil
	}

	result, err := load()
	if err != nil {
		return result, err
	}
	s.set(ctx, key, result)
	return result, nil
}

func (s *StatsCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := GetValue(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err = json.Unmarshal([]byte(raw), dest); err != nil {
		log.WarnContext(ctx, "stats cache decode failed", "key", key, "err", err)
		return false
	}
	return true
}

// set 过期时间为距午夜提前5分钟且不超过 maxTTL
func (s *StatsCache) set(ctx context.Context, key string, value any) {
	expiration := s.expiration()
	if expiration <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = SetWithExpiration(ctx, key, string(data), expiration)
}

// Invalidate 自增代数，之前写入的缓存不再被读取，随 TTL 自然过期
func (s *StatsCache) Invalidate(ctx context.Context) {
	if !s.enabled() {
		return
	}
	if _, err := Incr(ctx, consts.StatsGenerationKey); err != nil {
		log.ErrorContext(ctx, "stats cache invalidate failed", "err", err)
	}
}

func (s *StatsCache) expiration() time.Duration {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := midnight.Sub(now) - time.Minute*5
	if s.maxTTL > 0 && expiration > s.maxTTL {
		expiration = s.maxTTL
	}
	return expiration
}
