package dto

import "time"

// StatsQuery 统计查询条件，日期已补全默认窗口
type StatsQuery struct {
	PlatformID *uint64
	StartDate  time.Time
	EndDate    time.Time
}

// AudienceReachDTO 受众覆盖
type AudienceReachDTO struct {
	PlatformID    uint64 `json:"platform_id"`
	PlatformName  string `json:"platform_name"`
	PlatformColor string `json:"platform_color"`
	Date          string `json:"date"`
	Reach         int64  `json:"reach"`
}

// EngagementDTO 互动数据
type EngagementDTO struct {
	PlatformID      uint64 `json:"platform_id"`
	PlatformName    string `json:"platform_name"`
	PlatformColor   string `json:"platform_color"`
	Date            string `json:"date"`
	Likes           int64  `json:"likes"`
	Comments        int64  `json:"comments"`
	Shares          int64  `json:"shares"`
	Clicks          int64  `json:"clicks"`
	Impressions     int64  `json:"impressions"`
	TotalEngagement int64  `json:"total_engagement"`
}

// PerformanceDTO 平台表现
type PerformanceDTO struct {
	PlatformID     uint64  `json:"platform_id"`
	PlatformName   string  `json:"platform_name"`
	PlatformColor  string  `json:"platform_color"`
	Date           string  `json:"date"`
	EngagementRate float64 `json:"engagement_rate"`
	GrowthRate     float64 `json:"growth_rate"`
}

// TrendDTO 全平台趋势
type TrendDTO struct {
	Date            string `json:"date"`
	TotalEngagement int64  `json:"total_engagement"`
	TotalFollowers  int64  `json:"total_followers"`
	TotalPosts      int64  `json:"total_posts"`
}

// KpiDTO 看板 KPI，growth_percentage 读取时计算
type KpiDTO struct {
	ID               uint64  `json:"id"`
	Name             string  `json:"name"`
	Value            float64 `json:"value"`
	PreviousValue    float64 `json:"previous_value"`
	Date             string  `json:"date"`
	GrowthPercentage float64 `json:"growth_percentage"`
}

// SeriesDTO 按日期分组、每个平台一列的图表数据
type SeriesDTO struct {
	Platforms []string          `json:"platforms"`
	Points    []*SeriesPointDTO `json:"points"`
}

type SeriesPointDTO struct {
	Date   string           `json:"date"`
	Values map[string]int64 `json:"values"`
}
