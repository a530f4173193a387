package repository

import (
	"Pulseboard/internal/pkg/database"
	"context"
	"strings"
	"time"
)

// StatsFilter 统计查询条件，PlatformID 为空时不过滤平台
type StatsFilter struct {
	PlatformID *uint64
	StartDate  time.Time
	EndDate    time.Time
}

type AudienceReachRow struct {
	PlatformID    uint64
	PlatformName  string
	PlatformColor string
	Date          time.Time
	Reach         int64
}

type EngagementRow struct {
	PlatformID      uint64
	PlatformName    string
	PlatformColor   string
	Date            time.Time
	Likes           int64
	Comments        int64
	Shares          int64
	Clicks          int64
	Impressions     int64
	TotalEngagement int64
}

type PerformanceRow struct {
	PlatformID     uint64
	PlatformName   string
	PlatformColor  string
	Date           time.Time
	EngagementRate float64
	GrowthRate     float64
}

type TrendRow struct {
	Date            time.Time
	TotalEngagement int64
	TotalFollowers  int64
	TotalPosts      int64
}

type PlatformStatRow struct {
	ID                uint64
	Name              string
	Icon              string
	Color             string
	Followers         int64
	PreviousFollowers int64
}

type StatsRepo interface {
	ListAudienceReach(ctx context.Context, filter StatsFilter) ([]*AudienceReachRow, error)
	ListEngagement(ctx context.Context, filter StatsFilter) ([]*EngagementRow, error)
	ListPerformance(ctx context.Context, filter StatsFilter) ([]*PerformanceRow, error)
	ListTrends(ctx context.Context, startDate, endDate time.Time) ([]*TrendRow, error)
	ListPlatformStats(ctx context.Context, platformID *uint64) ([]*PlatformStatRow, error)
}

type statsRepoImpl struct {
	gw *database.Gateway
}

func NewStatsRepo(gw *database.Gateway) StatsRepo {
	return &statsRepoImpl{gw: gw}
}

// joinedQuery 拼接日期区间与可选平台过滤，按 (日期, 平台名) 排序
func joinedQuery(base, alias string, filter StatsFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString(" WHERE " + alias + ".date BETWEEN ? AND ?")
	params := []any{filter.StartDate, filter.EndDate}
	if filter.PlatformID != nil {
		sb.WriteString(" AND " + alias + ".platform_id = ?")
		params = append(params, *filter.PlatformID)
	}
	sb.WriteString(" ORDER BY " + alias + ".date, p.name")
	return sb.String(), params
}

func (s *statsRepoImpl) ListAudienceReach(ctx context.Context, filter StatsFilter) ([]*AudienceReachRow, error) {
	query, params := joinedQuery(`
		SELECT ar.platform_id, p.name AS platform_name, p.color AS platform_color, ar.date, ar.reach
		FROM audience_reach ar
		JOIN platforms p ON ar.platform_id = p.id`, "ar", filter)
	return database.Query[*AudienceReachRow](ctx, s.gw, query, params...)
}

func (s *statsRepoImpl) ListEngagement(ctx context.Context, filter StatsFilter) ([]*EngagementRow, error) {
	query, params := joinedQuery(`
		SELECT em.platform_id, p.name AS platform_name, p.color AS platform_color, em.date,
		       em.likes, em.comments, em.shares, em.clicks, em.impressions,
		       (em.likes + em.comments + em.shares) AS total_engagement
		FROM engagement_metrics em
		JOIN platforms p ON em.platform_id = p.id`, "em", filter)
	return database.Query[*EngagementRow](ctx, s.gw, query, params...)
}

func (s *statsRepoImpl) ListPerformance(ctx context.Context, filter StatsFilter) ([]*PerformanceRow, error) {
	query, params := joinedQuery(`
		SELECT pp.platform_id, p.name AS platform_name, p.color AS platform_color, pp.date,
		       pp.engagement_rate, pp.growth_rate
		FROM platform_performance pp
		JOIN platforms p ON pp.platform_id = p.id`, "pp", filter)
	return database.Query[*PerformanceRow](ctx, s.gw, query, params...)
}

func (s *statsRepoImpl) ListTrends(ctx context.Context, startDate, endDate time.Time) ([]*TrendRow, error) {
	return database.Query[*TrendRow](ctx, s.gw, `
		SELECT date, total_engagement, total_followers, total_posts
		FROM overall_trends
		WHERE date BETWEEN ? AND ?
		ORDER BY date`, startDate, endDate)
}

// ListPlatformStats 每个平台最新一条粉丝快照及其前一条，缺失时为 0
func (s *statsRepoImpl) ListPlatformStats(ctx context.Context, platformID *uint64) ([]*PlatformStatRow, error) {
	query := `
		SELECT p.id, p.name, p.icon, p.color,
		       COALESCE((SELECT pf.count FROM platform_followers pf
		                 WHERE pf.platform_id = p.id
		                 ORDER BY pf.date DESC, pf.id DESC LIMIT 1), 0) AS followers,
		       COALESCE((SELECT pf2.count FROM platform_followers pf2
		                 WHERE pf2.platform_id = p.id
		                   AND pf2.date < (SELECT MAX(pf3.date) FROM platform_followers pf3 WHERE pf3.platform_id = p.id)
		                 ORDER BY pf2.date DESC, pf2.id DESC LIMIT 1), 0) AS previous_followers
		FROM platforms p`
	params := make([]any, 0, 1)
	if platformID != nil {
		query += " WHERE p.id = ?"
		params = append(params, *platformID)
	}
	query += " ORDER BY p.name"
	return database.Query[*PlatformStatRow](ctx, s.gw, query, params...)
}
